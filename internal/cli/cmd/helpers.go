package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// fileDescriptor returns the descriptor of w, or an invalid one if w is not a file.
func fileDescriptor(w io.Writer) uintptr {
	if f, ok := w.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
