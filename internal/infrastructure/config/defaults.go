package config

import "time"

const (
	defaultPartnerDomain     = "demo"
	defaultWidth             = 1280
	defaultHeight            = 800
	defaultNavigationTimeout = 30 * time.Second
	defaultRetentionDays     = 90
)

// DefaultConfig returns the default configuration values for rpmview.
func DefaultConfig() *Config {
	return &Config{
		Avatar: AvatarConfig{
			PartnerDomain: defaultPartnerDomain,
			Language:      "default",
			BodyType:      "none",
			Gender:        "none",
		},
		Browser: BrowserConfig{
			ValidateScript: true,
			Width:          defaultWidth,
			Height:         defaultHeight,
		},
		Headless: HeadlessConfig{
			Stealth:           true,
			NavigationTimeout: defaultNavigationTimeout,
		},
		History: HistoryConfig{
			Enabled:       true,
			RetentionDays: defaultRetentionDays,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
