// Package cmd provides Cobra CLI commands for rpmview.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/cli"
	"github.com/bnema/rpmview/internal/cli/styles"
	"github.com/bnema/rpmview/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "rpmview",
		Short: "Host the Ready Player Me avatar creator",
		Long: `rpmview - embed the Ready Player Me avatar creator and relay its events.

It builds the avatar creator URL from your configuration, opens it in a
WebKitGTK window (or a headless Chromium), injects the frame setup script and
reports user, export and asset events as they happen.

Use 'rpmview open' for the window, 'rpmview headless' for automation, or
'rpmview url' to just print the address.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "decode", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		theme := styles.NewTheme()
		if app != nil {
			theme = app.Theme
		}
		fmt.Fprintln(os.Stderr, theme.RenderError(err))
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
