package image

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/image_mocks.go -package=mocks

// DerivativeCleaner removes every transformed image derived from an original.
type DerivativeCleaner interface {
	DeleteAllForImage(ctx context.Context, imageID uuid.UUID) (int, error)
}
