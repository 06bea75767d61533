package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rpmview/internal/domain/entity"
	"github.com/bnema/rpmview/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/rpmview/internal/logging"
)

func exportTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestAvatarExportRepository_SaveAndListRecent(t *testing.T) {
	ctx := exportTestCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "rpmview.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewAvatarExportRepository(db)
	base := time.Now().Add(-time.Hour)

	for i, url := range []string{"https://m/1.glb", "https://m/2.glb", "https://m/3.glb"} {
		e := &entity.AvatarExport{URL: url, UserID: "u", ExportedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Save(ctx, e))
		assert.NotZero(t, e.ID)
	}

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://m/3.glb", got[0].URL)
	assert.Equal(t, "https://m/2.glb", got[1].URL)
	assert.Equal(t, "u", got[0].UserID)
	assert.WithinDuration(t, base.Add(2*time.Minute), got[0].ExportedAt, time.Millisecond)
}

func TestAvatarExportRepository_SaveRejectsEmptyURL(t *testing.T) {
	ctx := exportTestCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "rpmview.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	err = sqlite.NewAvatarExportRepository(db).Save(ctx, &entity.AvatarExport{})
	assert.ErrorIs(t, err, entity.ErrEmptyExportURL)
}

func TestAvatarExportRepository_DeleteOlderThan(t *testing.T) {
	ctx := exportTestCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "rpmview.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewAvatarExportRepository(db)
	now := time.Now()
	require.NoError(t, repo.Save(ctx, &entity.AvatarExport{URL: "https://m/old.glb", ExportedAt: now.AddDate(0, 0, -40)}))
	require.NoError(t, repo.Save(ctx, &entity.AvatarExport{URL: "https://m/new.glb", ExportedAt: now}))

	deleted, err := repo.DeleteOlderThan(ctx, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	left, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "https://m/new.glb", left[0].URL)
}

func TestNewConnection_ReopenKeepsSchema(t *testing.T) {
	ctx := exportTestCtx()
	path := filepath.Join(t.TempDir(), "nested", "rpmview.db")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewAvatarExportRepository(db).Save(ctx, entity.NewAvatarExport("https://m/a.glb", "")))
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := sqlite.NewAvatarExportRepository(db).ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(exportTestCtx(), "")
	assert.Error(t, err)
}
