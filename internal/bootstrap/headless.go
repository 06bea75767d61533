package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/rpmview/internal/application/port"
	"github.com/bnema/rpmview/internal/infrastructure/config"
	"github.com/bnema/rpmview/internal/infrastructure/headless"
	"github.com/bnema/rpmview/internal/logging"
)

// listeningBridge is a ScriptBridge whose messages are pumped by Listen.
// Listen subscribes before it returns; the wait function pumps until ctx ends.
type listeningBridge interface {
	port.ScriptBridge
	Listen(ctx context.Context) (func() error, error)
}

// RunHeadless drives the avatar creator in Chromium until ctx is cancelled.
func RunHeadless(ctx context.Context, cfg *config.Config, opts SessionOptions) error {
	ctx = logging.WithComponent(ctx, "headless")

	browser, err := headless.Launch(ctx, headless.Options{
		RemoteURL:         cfg.Headless.RemoteURL,
		Show:              cfg.Headless.Show,
		Stealth:           cfg.Headless.Stealth,
		NavigationTimeout: cfg.Headless.NavigationTimeout,
		Width:             cfg.Browser.Width,
		Height:            cfg.Browser.Height,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := browser.Close(); cerr != nil {
			logging.FromContext(ctx).Warn().Err(cerr).Msg("failed to close browser")
		}
	}()

	session, err := NewSession(ctx, cfg, browser, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	return runLoop(ctx, browser, session)
}

// runLoop subscribes to bridge messages, then starts the session while they
// are pumped. Cancellation is a clean exit.
func runLoop(ctx context.Context, bridge listeningBridge, session *Session) error {
	g, gctx := errgroup.WithContext(ctx)

	wait, err := bridge.Listen(gctx)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	g.Go(wait)
	g.Go(func() error {
		if err := session.Start(gctx); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		logging.FromContext(ctx).Info().Str("url", session.Widget.InitialURL()).Msg("avatar creator ready")
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}
	return err
}
