//go:build !webkit_cgo

package webkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/rpmview/internal/application/port"
)

func TestRun_StubReportsUnavailable(t *testing.T) {
	called := false
	err := Run(context.Background(), Options{}, func(context.Context, port.ScriptBridge) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrNativeUnavailable)
	assert.False(t, called)
	assert.False(t, Available())
}

func TestOptions_WithDefaults(t *testing.T) {
	opts := Options{Width: 640}.withDefaults()

	assert.Equal(t, 640, opts.Width)
	assert.Equal(t, 800, opts.Height)
	assert.NotEmpty(t, opts.Title)
}
