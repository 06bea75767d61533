package bootstrap

import (
	"context"

	"github.com/bnema/rpmview/internal/application/port"
	"github.com/bnema/rpmview/internal/infrastructure/config"
	"github.com/bnema/rpmview/internal/infrastructure/webkit"
	"github.com/bnema/rpmview/internal/logging"
)

// RunGUI opens the native window and blocks until it closes. When mgr is not
// nil the widget follows edits of the config file.
func RunGUI(ctx context.Context, cfg *config.Config, mgr *config.Manager, opts SessionOptions) error {
	var session *Session
	defer func() {
		if session != nil {
			session.Close()
		}
	}()

	winOpts := webkit.Options{
		Width:                 cfg.Browser.Width,
		Height:                cfg.Browser.Height,
		EnableDeveloperExtras: cfg.Browser.EnableDeveloperExtras,
	}

	return webkit.Run(ctx, winOpts, func(ctx context.Context, bridge port.ScriptBridge) error {
		s, err := NewSession(ctx, cfg, bridge, opts)
		if err != nil {
			return err
		}
		session = s

		if mgr != nil {
			followConfig(ctx, mgr, s)
		}
		return s.Start(ctx)
	})
}

func followConfig(ctx context.Context, mgr *config.Manager, s *Session) {
	log := logging.FromContext(ctx)

	mgr.OnConfigChange(func(cfg *config.Config) {
		avatarCfg, err := cfg.AvatarConfig()
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid avatar config")
			return
		}
		if avatarCfg == s.Widget.Config() {
			return
		}
		if err := s.Widget.Reconfigure(ctx, avatarCfg); err != nil {
			log.Warn().Err(err).Msg("failed to apply config change")
		}
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watcher unavailable")
	}
}
