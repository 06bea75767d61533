// Package cli holds the dependencies shared by the rpmview commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/rpmview/internal/application/usecase"
	"github.com/bnema/rpmview/internal/cli/styles"
	"github.com/bnema/rpmview/internal/domain/build"
	"github.com/bnema/rpmview/internal/domain/repository"
	"github.com/bnema/rpmview/internal/infrastructure/config"
	"github.com/bnema/rpmview/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/rpmview/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	ctx context.Context

	dbOnce  sync.Once
	db      *sql.DB
	dbErr   error
	exports repository.AvatarExportRepository
}

// NewApp loads the configuration and sets up logging.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Msg("configuration loaded")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Exports opens the history database on first use.
func (a *App) Exports() (repository.AvatarExportRepository, error) {
	a.dbOnce.Do(func() {
		a.db, a.dbErr = sqlite.NewConnection(a.ctx, a.Config.Database.Path)
		if a.dbErr != nil {
			a.dbErr = fmt.Errorf("open database: %w", a.dbErr)
			return
		}
		a.exports = sqlite.NewAvatarExportRepository(a.db)
	})
	return a.exports, a.dbErr
}

// Recorder returns the export recorder, or nil when history is disabled.
// Old rows are pruned per history.retention_days first.
func (a *App) Recorder() (*usecase.RecordExportUseCase, error) {
	if !a.Config.History.Enabled {
		return nil, nil
	}
	repo, err := a.Exports()
	if err != nil {
		return nil, err
	}

	if _, err := usecase.NewPruneExportsUseCase(repo).Execute(a.ctx, a.Config.History.RetentionDays); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("failed to prune export history")
	}

	return usecase.NewRecordExportUseCase(repo), nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}
