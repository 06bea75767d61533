package repository

import (
	"context"
	"time"

	"github.com/bnema/rpmview/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_avatar_export.go -package=mocks . AvatarExportRepository

// AvatarExportRepository persists the history of exported avatars.
type AvatarExportRepository interface {
	// Save stores an export and fills in its ID.
	Save(ctx context.Context, export *entity.AvatarExport) error

	// ListRecent returns up to limit exports, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.AvatarExport, error)

	// DeleteOlderThan removes exports made before cutoff and returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
