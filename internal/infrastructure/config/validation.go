package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/rpmview/internal/domain/avatar"
)

// partnerDomainPattern is a single DNS label.
var partnerDomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// validateConfig collects every problem into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	if err := ValidatePartnerDomain(config.Avatar.PartnerDomain); err != nil {
		validationErrors = append(validationErrors, "avatar.partner_domain "+err.Error())
	}
	if _, err := avatar.ParseLanguage(config.Avatar.Language); err != nil {
		validationErrors = append(validationErrors, "avatar.language: "+err.Error())
	}
	if _, err := avatar.ParseBodyType(config.Avatar.BodyType); err != nil {
		validationErrors = append(validationErrors, "avatar.body_type: "+err.Error())
	}
	if _, err := avatar.ParseGender(config.Avatar.Gender); err != nil {
		validationErrors = append(validationErrors, "avatar.gender: "+err.Error())
	}
	if err := ValidateLoginToken(config.Avatar.LoginToken); err != nil {
		validationErrors = append(validationErrors, "avatar.login_token "+err.Error())
	}

	if config.Browser.Width <= 0 {
		validationErrors = append(validationErrors, "browser.width must be positive")
	}
	if config.Browser.Height <= 0 {
		validationErrors = append(validationErrors, "browser.height must be positive")
	}
	if config.Headless.NavigationTimeout < 0 {
		validationErrors = append(validationErrors, "headless.navigation_timeout must be non-negative")
	}
	if config.History.RetentionDays < 0 {
		validationErrors = append(validationErrors, "history.retention_days must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// ValidatePartnerDomain checks that domain is a single lowercase DNS label.
func ValidatePartnerDomain(domain string) error {
	if !partnerDomainPattern.MatchString(domain) {
		return fmt.Errorf("must be a single DNS label (got: %q)", domain)
	}
	return nil
}

// ValidateLoginToken rejects tokens that would break the URL query.
func ValidateLoginToken(token string) error {
	if strings.ContainsAny(token, "&?# ") {
		return fmt.Errorf("must not contain URL delimiters")
	}
	return nil
}

// AvatarConfig converts the avatar section into the domain configuration.
func (c *Config) AvatarConfig() (avatar.Config, error) {
	if err := ValidatePartnerDomain(c.Avatar.PartnerDomain); err != nil {
		return avatar.Config{}, fmt.Errorf("partner domain %w", err)
	}
	if err := ValidateLoginToken(c.Avatar.LoginToken); err != nil {
		return avatar.Config{}, fmt.Errorf("login token %w", err)
	}
	lang, err := avatar.ParseLanguage(c.Avatar.Language)
	if err != nil {
		return avatar.Config{}, err
	}
	bodyType, err := avatar.ParseBodyType(c.Avatar.BodyType)
	if err != nil {
		return avatar.Config{}, err
	}
	gender, err := avatar.ParseGender(c.Avatar.Gender)
	if err != nil {
		return avatar.Config{}, err
	}

	return avatar.Config{
		PartnerDomain: c.Avatar.PartnerDomain,
		Language:      lang,
		LoginToken:    c.Avatar.LoginToken,
		ClearCache:    c.Avatar.ClearCache,
		QuickStart:    c.Avatar.QuickStart,
		BodyType:      bodyType,
		Gender:        gender,
	}, nil
}

// FromAvatar is the inverse of (*Config).AvatarConfig.
func FromAvatar(a avatar.Config) AvatarConfig {
	return AvatarConfig{
		PartnerDomain: a.PartnerDomain,
		Language:      a.Language.String(),
		LoginToken:    a.LoginToken,
		ClearCache:    a.ClearCache,
		QuickStart:    a.QuickStart,
		BodyType:      a.BodyType.String(),
		Gender:        a.Gender.String(),
	}
}
