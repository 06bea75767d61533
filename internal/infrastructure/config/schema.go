// Package config loads, validates and watches the rpmview configuration.
package config

import "time"

// Config represents the complete configuration for rpmview.
type Config struct {
	Avatar   AvatarConfig   `mapstructure:"avatar" toml:"avatar" json:"avatar"`
	Browser  BrowserConfig  `mapstructure:"browser" toml:"browser" json:"browser"`
	Headless HeadlessConfig `mapstructure:"headless" toml:"headless" json:"headless"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	History  HistoryConfig  `mapstructure:"history" toml:"history" json:"history"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
}

// AvatarConfig drives the avatar creator URL.
type AvatarConfig struct {
	// PartnerDomain is the Ready Player Me subdomain, e.g. "demo" for demo.readyplayer.me
	PartnerDomain string `mapstructure:"partner_domain" toml:"partner_domain" json:"partner_domain" jsonschema:"description=Ready Player Me partner subdomain"`
	// Language is a language code (en, en-IE, de, fr, es, es-MX, pt, pt-BR, it, tr, jp, kr, ch) or "default"
	Language   string `mapstructure:"language" toml:"language" json:"language" jsonschema:"enum=default,enum=en,enum=en-IE,enum=de,enum=fr,enum=es,enum=es-MX,enum=pt,enum=pt-BR,enum=it,enum=tr,enum=jp,enum=kr,enum=ch"`
	LoginToken string `mapstructure:"login_token" toml:"login_token" json:"login_token,omitempty"`
	ClearCache bool   `mapstructure:"clear_cache" toml:"clear_cache" json:"clear_cache"`
	QuickStart bool   `mapstructure:"quick_start" toml:"quick_start" json:"quick_start"`
	BodyType   string `mapstructure:"body_type" toml:"body_type" json:"body_type" jsonschema:"enum=none,enum=fullbody,enum=halfbody,enum=select"`
	Gender     string `mapstructure:"gender" toml:"gender" json:"gender" jsonschema:"enum=none,enum=male,enum=female"`
}

// BrowserConfig holds settings of the embedded WebKit view.
type BrowserConfig struct {
	// PluginsDir contains RpmWebBrowser/Scripts/RpmFrameSetup.js. Empty means $XDG_DATA_HOME/rpmview/plugins.
	PluginsDir string `mapstructure:"plugins_dir" toml:"plugins_dir" json:"plugins_dir"`
	// ValidateScript compiles the setup script before injecting it.
	ValidateScript        bool `mapstructure:"validate_script" toml:"validate_script" json:"validate_script"`
	Width                 int  `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height                int  `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	EnableDeveloperExtras bool `mapstructure:"enable_developer_extras" toml:"enable_developer_extras" json:"enable_developer_extras"`
}

// HeadlessConfig holds settings of the Chromium backend.
type HeadlessConfig struct {
	// RemoteURL connects to an existing Chrome DevTools endpoint instead of launching one.
	RemoteURL string `mapstructure:"remote_url" toml:"remote_url" json:"remote_url"`
	Show      bool   `mapstructure:"show" toml:"show" json:"show"`
	// Stealth opens the page through go-rod/stealth evasions.
	Stealth           bool          `mapstructure:"stealth" toml:"stealth" json:"stealth"`
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout" toml:"navigation_timeout" json:"navigation_timeout"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// HistoryConfig controls the avatar export history.
type HistoryConfig struct {
	Enabled       bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	RetentionDays int  `mapstructure:"retention_days" toml:"retention_days" json:"retention_days" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}
