//go:build !webkit_cgo

package webkit

import "context"

// Available reports whether the native backend was compiled in.
func Available() bool { return false }

// Run always fails in non-CGO builds.
func Run(_ context.Context, _ Options, _ ReadyFunc) error {
	return ErrNativeUnavailable
}
