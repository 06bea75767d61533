package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/bootstrap"
)

var (
	headlessToken  string
	headlessRemote string
	headlessShow   bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Drive the avatar creator in Chromium",
	Long: `Drive the avatar creator in Chromium through the DevTools protocol.

Events are logged until interrupted (Ctrl+C). Use --remote to attach to an
already running Chrome instead of launching one.

Examples:
  rpmview headless
  rpmview headless --show
  rpmview headless --remote ws://127.0.0.1:9222/devtools/browser/...`,
	RunE: runHeadless,
}

func init() {
	rootCmd.AddCommand(headlessCmd)

	headlessCmd.Flags().StringVar(&headlessToken, "token", "", "login token (overrides avatar.login_token)")
	headlessCmd.Flags().StringVar(&headlessRemote, "remote", "", "DevTools WebSocket URL (overrides headless.remote_url)")
	headlessCmd.Flags().BoolVar(&headlessShow, "show", false, "show the browser window")
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	cfg := *app.Config
	if headlessRemote != "" {
		cfg.Headless.RemoteURL = headlessRemote
	}
	if cmd.Flags().Changed("show") {
		cfg.Headless.Show = headlessShow
	}

	recorder, err := app.Recorder()
	if err != nil {
		return err
	}

	ctx, stop := signalContext(app.Ctx())
	defer stop()

	return bootstrap.RunHeadless(ctx, &cfg, bootstrap.SessionOptions{
		LoginToken: headlessToken,
		Recorder:   recorder,
	})
}
