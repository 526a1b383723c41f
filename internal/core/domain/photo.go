package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pagination bounds for photo listing
const (
	DefaultPhotoPageSize = 20
	MaxPhotoPageSize     = 100
)

// Photo represents an uploaded photo
type Photo struct {
	ID          uuid.UUID
	URL         string
	PublicID    string
	TakenAt     time.Time
	Description *string
	UploadedAt  time.Time
}

// NewPhoto is the payload confirming an upload done on the media host
type NewPhoto struct {
	PublicID    string
	URL         string
	TakenAt     time.Time
	Description *string
}

// PhotoPatch is a partial photo update.
// SetDescription distinguishes an absent description from an explicit null.
type PhotoPatch struct {
	TakenAt        *time.Time
	SetDescription bool
	Description    *string
}

// IsEmpty reports whether the patch changes nothing
func (p PhotoPatch) IsEmpty() bool {
	return p.TakenAt == nil && !p.SetDescription
}

// ClampPageSize maps a requested page size into [1, MaxPhotoPageSize], non-positive meaning default
func ClampPageSize(limit int) int {
	if limit <= 0 {
		return DefaultPhotoPageSize
	}
	if limit > MaxPhotoPageSize {
		return MaxPhotoPageSize
	}
	return limit
}
