package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// RPMVIEW_AVATAR_PARTNER_DOMAIN, RPMVIEW_LOGGING_LEVEL, ...
	v.SetEnvPrefix("RPMVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "RPMVIEW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind RPMVIEW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "RPMVIEW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind RPMVIEW_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFilePath(), err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf("failed to create default config: %w", createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

// reload unmarshals viper state into a fresh Config. Must be called with m.mu held.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", m.configFilePath(), err)
	}
	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Browser.PluginsDir == "" {
		pluginsDir, err := GetPluginsDir()
		if err != nil {
			return fmt.Errorf("failed to get plugins dir: %w", err)
		}
		config.Browser.PluginsDir = pluginsDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Avatar.PartnerDomain = strings.ToLower(strings.TrimSpace(config.Avatar.PartnerDomain))
	config.Avatar.LoginToken = strings.TrimSpace(config.Avatar.LoginToken)

	if strings.TrimSpace(config.Avatar.Language) == "" {
		config.Avatar.Language = "default"
	}
	if strings.TrimSpace(config.Avatar.BodyType) == "" {
		config.Avatar.BodyType = "none"
	}
	if strings.TrimSpace(config.Avatar.Gender) == "" {
		config.Avatar.Gender = "none"
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// SaveAvatar writes the avatar section back to the config file.
func (m *Manager) SaveAvatar(avatarCfg AvatarConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidate := DefaultConfig()
	if m.config != nil {
		*candidate = *m.config
	}
	candidate.Avatar = avatarCfg
	normalizeConfig(candidate)
	if err := validateConfig(candidate); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.viper.Set("avatar.partner_domain", candidate.Avatar.PartnerDomain)
	m.viper.Set("avatar.language", candidate.Avatar.Language)
	m.viper.Set("avatar.login_token", candidate.Avatar.LoginToken)
	m.viper.Set("avatar.clear_cache", candidate.Avatar.ClearCache)
	m.viper.Set("avatar.quick_start", candidate.Avatar.QuickStart)
	m.viper.Set("avatar.body_type", candidate.Avatar.BodyType)
	m.viper.Set("avatar.gender", candidate.Avatar.Gender)

	if err := m.viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// With Watch() active the fsnotify callback reloads for us.
	if !m.watching {
		return m.reload(false)
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) configFilePath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	dir, _ := GetConfigDir()
	return filepath.Join(dir, configName)
}

// createDefaultConfig writes DefaultConfig to the config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("avatar.partner_domain", defaults.Avatar.PartnerDomain)
	m.viper.SetDefault("avatar.language", defaults.Avatar.Language)
	m.viper.SetDefault("avatar.login_token", defaults.Avatar.LoginToken)
	m.viper.SetDefault("avatar.clear_cache", defaults.Avatar.ClearCache)
	m.viper.SetDefault("avatar.quick_start", defaults.Avatar.QuickStart)
	m.viper.SetDefault("avatar.body_type", defaults.Avatar.BodyType)
	m.viper.SetDefault("avatar.gender", defaults.Avatar.Gender)

	m.viper.SetDefault("browser.plugins_dir", defaults.Browser.PluginsDir)
	m.viper.SetDefault("browser.validate_script", defaults.Browser.ValidateScript)
	m.viper.SetDefault("browser.width", defaults.Browser.Width)
	m.viper.SetDefault("browser.height", defaults.Browser.Height)
	m.viper.SetDefault("browser.enable_developer_extras", defaults.Browser.EnableDeveloperExtras)

	m.viper.SetDefault("headless.remote_url", defaults.Headless.RemoteURL)
	m.viper.SetDefault("headless.show", defaults.Headless.Show)
	m.viper.SetDefault("headless.stealth", defaults.Headless.Stealth)
	m.viper.SetDefault("headless.navigation_timeout", defaults.Headless.NavigationTimeout)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("history.enabled", defaults.History.Enabled)
	m.viper.SetDefault("history.retention_days", defaults.History.RetentionDays)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
