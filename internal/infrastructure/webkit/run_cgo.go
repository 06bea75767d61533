//go:build webkit_cgo

package webkit

import (
	"context"
	"fmt"
	"os"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/rpmview/internal/logging"
)

// Available reports whether the native backend was compiled in.
func Available() bool { return true }

// Run opens a window with a web view, calls ready and blocks in the GTK main
// loop until the window closes or ctx is cancelled.
func Run(ctx context.Context, opts Options, ready ReadyFunc) error {
	opts = opts.withDefaults()
	ctx = logging.WithComponent(ctx, "webkit")
	log := logging.FromContext(ctx)

	app := gtk.NewApplication(applicationID, gio.ApplicationFlagsNone)

	var readyErr error
	app.ConnectActivate(func() {
		win := gtk.NewApplicationWindow(app)
		win.SetTitle(opts.Title)
		win.SetDefaultSize(opts.Width, opts.Height)

		bridge := newBridge(ctx, opts)
		win.SetChild(bridge.view)
		win.SetVisible(true)

		if err := ready(ctx, bridge); err != nil {
			readyErr = err
			app.Quit()
		}
	})

	stop := context.AfterFunc(ctx, func() {
		glib.IdleAdd(func() {
			log.Debug().Msg("context cancelled, quitting")
			app.Quit()
		})
	})
	defer stop()

	if code := app.Run(os.Args[:1]); code != 0 {
		return fmt.Errorf("gtk application exited with code %d", code)
	}
	return readyErr
}
