// Package bootstrap wires a BrowserWidget to a backend and runs it.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/rpmview/internal/application/port"
	"github.com/bnema/rpmview/internal/application/usecase"
	"github.com/bnema/rpmview/internal/domain/avatar"
	"github.com/bnema/rpmview/internal/infrastructure/config"
	"github.com/bnema/rpmview/internal/infrastructure/jsruntime"
	"github.com/bnema/rpmview/internal/logging"
)

// Session owns one BrowserWidget and the listeners attached to it.
type Session struct {
	Widget *usecase.BrowserWidget

	loginToken string
	detach     []func()
}

// SessionOptions configures NewSession.
type SessionOptions struct {
	// LoginToken overrides avatar.login_token for the first navigation.
	LoginToken string
	// Recorder persists exports. Nil disables history.
	Recorder *usecase.RecordExportUseCase
}

// NewSession builds a widget from cfg on top of bridge.
func NewSession(ctx context.Context, cfg *config.Config, bridge port.ScriptBridge, opts SessionOptions) (*Session, error) {
	avatarCfg, err := cfg.AvatarConfig()
	if err != nil {
		return nil, fmt.Errorf("avatar config: %w", err)
	}

	widgetCfg := usecase.BrowserWidgetConfig{
		Avatar:     avatarCfg,
		PluginsDir: cfg.Browser.PluginsDir,
	}
	if cfg.Browser.ValidateScript {
		widgetCfg.Validator = jsruntime.NewValidator(false)
	}

	s := &Session{
		Widget:     usecase.NewBrowserWidget(bridge, widgetCfg),
		loginToken: opts.LoginToken,
	}
	s.detach = append(s.detach, logEvents(ctx, &s.Widget.Events))
	if opts.Recorder != nil {
		s.detach = append(s.detach, opts.Recorder.Attach(ctx, &s.Widget.Events))
	}
	return s, nil
}

// Start navigates to the avatar creator and injects the setup script.
func (s *Session) Start(ctx context.Context) error {
	if err := s.Widget.RebuildWithToken(ctx, s.loginToken); err != nil {
		return err
	}
	return s.Widget.SetupBrowser(ctx)
}

// Close unsubscribes every listener added by NewSession.
func (s *Session) Close() {
	for _, fn := range s.detach {
		fn()
	}
	s.detach = nil
}

// logEvents reports every dispatched event at info level.
func logEvents(ctx context.Context, events *avatar.Events) func() {
	log := logging.FromContext(logging.WithComponent(ctx, "events"))

	unsubs := []func(){
		events.OnUserSet.Subscribe(func(id string) {
			log.Info().Str("user_id", id).Msg("user set")
		}),
		events.OnUserAuthorized.Subscribe(func(id string) {
			log.Info().Str("user_id", id).Msg("user authorized")
		}),
		events.OnAvatarExported.Subscribe(func(url string) {
			log.Info().Str("avatar_url", url).Msg("avatar exported")
		}),
		events.OnAssetUnlock.Subscribe(func(rec avatar.AssetRecord) {
			log.Info().Str("asset_id", rec.AssetID).Str("user_id", rec.UserID).Msg("asset unlocked")
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
