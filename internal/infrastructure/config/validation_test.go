package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(cfg *Config)
		errorField string
	}{
		{
			name:       "partner domain must not be empty",
			mutate:     func(cfg *Config) { cfg.Avatar.PartnerDomain = "" },
			errorField: "avatar.partner_domain",
		},
		{
			name:       "partner domain must be a single label",
			mutate:     func(cfg *Config) { cfg.Avatar.PartnerDomain = "a.b" },
			errorField: "avatar.partner_domain",
		},
		{
			name:       "partner domain must not start with a dash",
			mutate:     func(cfg *Config) { cfg.Avatar.PartnerDomain = "-acme" },
			errorField: "avatar.partner_domain",
		},
		{
			name:       "unknown language",
			mutate:     func(cfg *Config) { cfg.Avatar.Language = "klingon" },
			errorField: "avatar.language",
		},
		{
			name:       "unknown body type",
			mutate:     func(cfg *Config) { cfg.Avatar.BodyType = "torso" },
			errorField: "avatar.body_type",
		},
		{
			name:       "unknown gender",
			mutate:     func(cfg *Config) { cfg.Avatar.Gender = "robot" },
			errorField: "avatar.gender",
		},
		{
			name:       "token with delimiter",
			mutate:     func(cfg *Config) { cfg.Avatar.LoginToken = "abc&def" },
			errorField: "avatar.login_token",
		},
		{
			name:       "width must be positive",
			mutate:     func(cfg *Config) { cfg.Browser.Width = 0 },
			errorField: "browser.width",
		},
		{
			name:       "height must be positive",
			mutate:     func(cfg *Config) { cfg.Browser.Height = -1 },
			errorField: "browser.height",
		},
		{
			name:       "retention must be non-negative",
			mutate:     func(cfg *Config) { cfg.History.RetentionDays = -3 },
			errorField: "history.retention_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorField)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Avatar.Gender = "x"
	cfg.Browser.Width = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avatar.gender")
	assert.Contains(t, err.Error(), "browser.width")
}

func TestAvatarConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Avatar = AvatarConfig{
		PartnerDomain: "acme",
		Language:      "es-MX",
		LoginToken:    "tok",
		QuickStart:    true,
		BodyType:      "fullbody",
		Gender:        "male",
	}

	domainCfg, err := cfg.AvatarConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.Avatar, FromAvatar(domainCfg))
}

func TestAvatarConfigRejectsMalformedDomain(t *testing.T) {
	for _, domain := range []string{"a.b/c", "acme.example", "", "-acme"} {
		t.Run(domain, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Avatar.PartnerDomain = domain

			_, err := cfg.AvatarConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "partner domain")
		})
	}
}
