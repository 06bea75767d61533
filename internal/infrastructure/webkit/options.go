// Package webkit hosts the avatar creator in a GTK4 window with WebKitGTK.
//
// The native implementation requires the webkit_cgo build tag. Without it Run
// returns ErrNativeUnavailable.
package webkit

import (
	"context"
	"errors"

	"github.com/bnema/rpmview/internal/application/port"
)

// ErrNativeUnavailable is returned when the binary was built without WebKitGTK.
var ErrNativeUnavailable = errors.New("webkit: native backend unavailable (build with -tags webkit_cgo)")

const applicationID = "io.github.bnema.rpmview"

// Options configures the window and the web view.
type Options struct {
	Title                 string
	Width                 int
	Height                int
	EnableDeveloperExtras bool
}

// ReadyFunc is called on the GTK main thread once the view exists.
// Returning an error quits the application.
type ReadyFunc func(ctx context.Context, bridge port.ScriptBridge) error

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Ready Player Me"
	}
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	return o
}
