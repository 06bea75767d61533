package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/bootstrap"
)

var openToken string

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the avatar creator in a WebKitGTK window",
	Long: `Open the avatar creator in a GTK4 window hosting a WebKitGTK view.

The window follows edits of the config file. Exported avatars are recorded in
the history database unless history.enabled is false.

Requires a binary built with -tags webkit_cgo.`,
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringVar(&openToken, "token", "", "login token (overrides avatar.login_token)")
}

func runOpen(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	recorder, err := app.Recorder()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(app.Ctx())
	defer stop()

	return bootstrap.RunGUI(ctx, app.Config, app.ConfigManager, bootstrap.SessionOptions{
		LoginToken: openToken,
		Recorder:   recorder,
	})
}
