package entity

import (
	"errors"
	"time"
)

// AvatarExport records one avatar exported by the avatar creator.
type AvatarExport struct {
	ID         int64     `json:"id"`
	URL        string    `json:"url"`               // .glb model URL sent with v1.avatar.exported
	UserID     string    `json:"user_id,omitempty"` // last authorized user, empty for anonymous sessions
	ExportedAt time.Time `json:"exported_at"`
}

// ErrEmptyExportURL is returned when an export has no model URL.
var ErrEmptyExportURL = errors.New("avatar export URL is empty")

// NewAvatarExport creates an export stamped with the current time.
func NewAvatarExport(url, userID string) *AvatarExport {
	return &AvatarExport{
		URL:        url,
		UserID:     userID,
		ExportedAt: time.Now(),
	}
}

// Validate checks that the export can be persisted.
func (e *AvatarExport) Validate() error {
	if e.URL == "" {
		return ErrEmptyExportURL
	}
	return nil
}
