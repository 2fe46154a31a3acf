package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is an originally uploaded raster artifact. It is never mutated after
// creation; the only lifecycle event is deletion.
type Image struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	StorageKey   string
	OriginalName string
	URL          string
	ContentType  string
	FileSize     int64
	CreatedAt    time.Time
}

func NewImage(ownerID uuid.UUID, storageKey, originalName, url, contentType string, fileSize int64) *Image {
	return &Image{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		StorageKey:   storageKey,
		OriginalName: originalName,
		URL:          url,
		ContentType:  contentType,
		FileSize:     fileSize,
		CreatedAt:    time.Now().UTC(),
	}
}

func (i *Image) IsOwnedBy(userID uuid.UUID) bool {
	return i.OwnerID == userID
}
