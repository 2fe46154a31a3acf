package storage

import (
	"context"
	"time"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// BlobStorage is the gateway to the object store. Implementations own their
// timeouts and retry policy.
type BlobStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	PresignUpload(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, error)
	GetURL(key string) string
}

type TransformOutput struct {
	Data        []byte
	Format      valueobject.Format
	ContentType string
	Width       int
	Height      int
}

// ImageTransformer is pure computation: no I/O.
type ImageTransformer interface {
	Apply(src []byte, opts valueobject.TransformationOptions, sourceContentType string) (*TransformOutput, error)
}
