package cmd

import (
	"fmt"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/domain/avatar"
	"github.com/bnema/rpmview/internal/infrastructure/config"
)

type urlFlags struct {
	token    string
	plain    bool
	domain   string
	language string
	bodyType string
	gender   string
}

var urlOpts urlFlags

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the avatar creator URL",
	Long: `Print the avatar creator URL built from the configuration.

Flags override the configured values for this invocation only.

Examples:
  rpmview url
  rpmview url --language de --body-type fullbody
  rpmview url --token "$RPM_TOKEN" --plain`,
	RunE: runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)

	urlCmd.Flags().StringVar(&urlOpts.token, "token", "", "login token (overrides avatar.login_token)")
	urlCmd.Flags().BoolVar(&urlOpts.plain, "plain", false, "print only the URL")
	urlCmd.Flags().StringVar(&urlOpts.domain, "domain", "", "partner subdomain")
	urlCmd.Flags().StringVar(&urlOpts.language, "language", "", "language code or 'default'")
	urlCmd.Flags().StringVar(&urlOpts.bodyType, "body-type", "", "none, fullbody, halfbody or select")
	urlCmd.Flags().StringVar(&urlOpts.gender, "gender", "", "none, male or female")
}

func runURL(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	cfg, err := resolveAvatarConfig(app.Config, urlOpts)
	if err != nil {
		return err
	}
	url := cfg.URL(urlOpts.token)

	out := cmd.OutOrStdout()
	if urlOpts.plain || !isatty.IsTerminal(fileDescriptor(out)) {
		_, err = fmt.Fprintln(out, url)
		return err
	}
	_, err = fmt.Fprintln(out, app.Theme.RenderURL(url, cfg))
	return err
}

// resolveAvatarConfig applies command line overrides on top of cfg. The
// overrides go through the same checks as the config file.
func resolveAvatarConfig(cfg *config.Config, f urlFlags) (avatar.Config, error) {
	if err := config.ValidateLoginToken(f.token); err != nil {
		return avatar.Config{}, fmt.Errorf("--token %w", err)
	}

	section := cfg.Avatar
	if f.domain != "" {
		section.PartnerDomain = f.domain
	}
	if f.language != "" {
		section.Language = f.language
	}
	if f.bodyType != "" {
		section.BodyType = f.bodyType
	}
	if f.gender != "" {
		section.Gender = f.gender
	}

	merged := *cfg
	merged.Avatar = section
	return merged.AvatarConfig()
}
