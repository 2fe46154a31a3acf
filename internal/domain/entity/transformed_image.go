package entity

import (
	"path"
	"time"

	"github.com/google/uuid"
)

// TransformedImage is a derived artifact produced by exactly one
// transformation request against one parent Image.
type TransformedImage struct {
	ID             uuid.UUID
	ParentImageID  uuid.UUID
	OwnerID        uuid.UUID
	StorageKey     string
	URL            string
	ContentType    string
	FileSize       int64
	AppliedOptions []byte
	CreatedAt      time.Time
}

// NewTransformedImage derives ownership from the parent so the two can never
// diverge at creation time.
func NewTransformedImage(parent *Image, storageKey, url, contentType string, fileSize int64, appliedOptions []byte) *TransformedImage {
	return &TransformedImage{
		ID:             uuid.New(),
		ParentImageID:  parent.ID,
		OwnerID:        parent.OwnerID,
		StorageKey:     storageKey,
		URL:            url,
		ContentType:    contentType,
		FileSize:       fileSize,
		AppliedOptions: appliedOptions,
		CreatedAt:      time.Now().UTC(),
	}
}

// Filename is the last segment of the storage key.
func (t *TransformedImage) Filename() string {
	return path.Base(t.StorageKey)
}

func (t *TransformedImage) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID == userID
}
