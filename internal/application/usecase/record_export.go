package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/rpmview/internal/domain/avatar"
	"github.com/bnema/rpmview/internal/domain/entity"
	"github.com/bnema/rpmview/internal/domain/repository"
	"github.com/bnema/rpmview/internal/logging"
)

// RecordExportUseCase persists exported avatars, tagged with the last
// authorized user.
type RecordExportUseCase struct {
	repo repository.AvatarExportRepository

	mu     sync.Mutex
	userID string
}

// NewRecordExportUseCase creates a new RecordExportUseCase.
func NewRecordExportUseCase(repo repository.AvatarExportRepository) *RecordExportUseCase {
	return &RecordExportUseCase{repo: repo}
}

// Attach subscribes to the widget events. The returned function detaches.
func (uc *RecordExportUseCase) Attach(ctx context.Context, events *avatar.Events) (detach func()) {
	unsubUser := events.OnUserAuthorized.Subscribe(uc.SetUser)
	unsubExport := events.OnAvatarExported.Subscribe(func(url string) {
		if _, err := uc.Record(ctx, url); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to record avatar export")
		}
	})
	return func() {
		unsubUser()
		unsubExport()
	}
}

// SetUser remembers the user the next exports belong to.
func (uc *RecordExportUseCase) SetUser(userID string) {
	uc.mu.Lock()
	uc.userID = userID
	uc.mu.Unlock()
}

// Record saves one export.
func (uc *RecordExportUseCase) Record(ctx context.Context, url string) (*entity.AvatarExport, error) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	userID := uc.userID
	uc.mu.Unlock()

	export := entity.NewAvatarExport(url, userID)
	if err := export.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, export); err != nil {
		return nil, fmt.Errorf("save avatar export: %w", err)
	}

	log.Info().Str("url", url).Str("user_id", userID).Msg("avatar export recorded")
	return export, nil
}

// PruneExportsUseCase removes exports older than a retention period.
type PruneExportsUseCase struct {
	repo repository.AvatarExportRepository
	now  func() time.Time
}

// NewPruneExportsUseCase creates a new PruneExportsUseCase.
func NewPruneExportsUseCase(repo repository.AvatarExportRepository) *PruneExportsUseCase {
	return &PruneExportsUseCase{repo: repo, now: time.Now}
}

// Execute deletes exports older than retentionDays. Zero keeps everything.
func (uc *PruneExportsUseCase) Execute(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := uc.now().AddDate(0, 0, -retentionDays)

	deleted, err := uc.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune avatar exports: %w", err)
	}

	logging.FromContext(ctx).Debug().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("pruned avatar exports")
	return deleted, nil
}

// ListExportsUseCase reads the export history.
type ListExportsUseCase struct {
	repo repository.AvatarExportRepository
}

// NewListExportsUseCase creates a new ListExportsUseCase.
func NewListExportsUseCase(repo repository.AvatarExportRepository) *ListExportsUseCase {
	return &ListExportsUseCase{repo: repo}
}

// Execute returns up to limit exports, newest first.
func (uc *ListExportsUseCase) Execute(ctx context.Context, limit int) ([]*entity.AvatarExport, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.repo.ListRecent(ctx, limit)
}
