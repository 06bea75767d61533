package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/rpmview/internal/domain/entity"
	"github.com/bnema/rpmview/internal/domain/repository"
	"github.com/bnema/rpmview/internal/logging"
)

type avatarExportRepo struct {
	db *sql.DB
}

// NewAvatarExportRepository creates a new SQLite-backed export repository.
func NewAvatarExportRepository(db *sql.DB) repository.AvatarExportRepository {
	return &avatarExportRepo{db: db}
}

// Timestamps are stored as unix milliseconds.
func (r *avatarExportRepo) Save(ctx context.Context, export *entity.AvatarExport) error {
	log := logging.FromContext(ctx)

	if err := export.Validate(); err != nil {
		return err
	}
	if export.ExportedAt.IsZero() {
		export.ExportedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO avatar_exports (url, user_id, exported_at) VALUES (?, ?, ?)`,
		export.URL, export.UserID, export.ExportedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert avatar export: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("avatar export id: %w", err)
	}
	export.ID = id

	log.Debug().Int64("id", id).Str("url", export.URL).Msg("saved avatar export")
	return nil
}

func (r *avatarExportRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AvatarExport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, user_id, exported_at FROM avatar_exports ORDER BY exported_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list avatar exports: %w", err)
	}
	defer rows.Close()

	var exports []*entity.AvatarExport
	for rows.Next() {
		var (
			e  entity.AvatarExport
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.URL, &e.UserID, &ms); err != nil {
			return nil, fmt.Errorf("scan avatar export: %w", err)
		}
		e.ExportedAt = time.UnixMilli(ms)
		exports = append(exports, &e)
	}
	return exports, rows.Err()
}

func (r *avatarExportRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM avatar_exports WHERE exported_at < ?`,
		cutoff.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("delete avatar exports: %w", err)
	}
	return res.RowsAffected()
}
