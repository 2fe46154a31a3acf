package access

import (
	"context"
	"fmt"
	"time"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
)

// Fixed lifetimes for presigned URLs. Callers cannot override them.
const (
	UploadURLTTL   = 15 * time.Minute
	DownloadURLTTL = time.Hour
)

type PresignedURL struct {
	URL       string
	ExpiresIn time.Duration
}

// URLIssuer hands out presigned URLs for single storage keys. Upload URLs
// are bound to bucket and key only; ownership and the declared content type
// are checked when the upload is registered, not by the object store.
type URLIssuer struct {
	storage storage.BlobStorage
}

func NewURLIssuer(blobStorage storage.BlobStorage) *URLIssuer {
	return &URLIssuer{storage: blobStorage}
}

func (i *URLIssuer) IssueUpload(ctx context.Context, key, contentType string) (*PresignedURL, error) {
	url, err := i.storage.PresignUpload(ctx, key, contentType, UploadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: presigning upload: %w", domain.ErrStorageFailure, err)
	}
	return &PresignedURL{URL: url, ExpiresIn: UploadURLTTL}, nil
}

func (i *URLIssuer) IssueDownload(ctx context.Context, key string) (*PresignedURL, error) {
	url, err := i.storage.PresignDownload(ctx, key, DownloadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: presigning download: %w", domain.ErrStorageFailure, err)
	}
	return &PresignedURL{URL: url, ExpiresIn: DownloadURLTTL}, nil
}
