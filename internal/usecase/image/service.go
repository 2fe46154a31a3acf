package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

const (
	keyPrefix           = "images"
	maxFilenameLength   = 255
	maxStorageKeyLength = 1024
)

type Config struct {
	MaxUploadSize int64
	CascadeDelete bool
}

type Service struct {
	imageRepo       repository.ImageRepository
	transformedRepo repository.TransformedImageRepository
	storage         storage.BlobStorage
	issuer          *access.URLIssuer
	derivatives     DerivativeCleaner
	cfg             Config
	logger          *zap.Logger
}

func NewService(
	imageRepo repository.ImageRepository,
	transformedRepo repository.TransformedImageRepository,
	blobStorage storage.BlobStorage,
	issuer *access.URLIssuer,
	derivatives DerivativeCleaner,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		imageRepo:       imageRepo,
		transformedRepo: transformedRepo,
		storage:         blobStorage,
		issuer:          issuer,
		derivatives:     derivatives,
		cfg:             cfg,
		logger:          logger,
	}
}

type UploadInput struct {
	UserID      uuid.UUID
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*entity.Image, error) {
	contentType, err := s.checkContent(input.ContentType, input.Size)
	if err != nil {
		return nil, err
	}
	if err := checkName(input.Filename); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(input.File, s.limit()+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 || int64(len(data)) > s.limit() {
		return nil, domain.ErrInvalidFileSize
	}

	key := UploadKey(input.UserID, uuid.New(), input.Filename)
	url, err := s.storage.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: uploading original: %w", domain.ErrStorageFailure, err)
	}

	image := entity.NewImage(input.UserID, key, originalName(input.Filename), url, contentType, int64(len(data)))
	if err := s.imageRepo.Create(ctx, image); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload", zap.String("storage_key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("creating image record: %w", err)
	}

	return image, nil
}

type UploadURLResult struct {
	StorageKey   string
	PresignedURL *access.PresignedURL
}

// RequestUploadURL reserves a key under the requester's prefix and signs a
// PUT for it. The image row is created later by RegisterUpload.
func (s *Service) RequestUploadURL(ctx context.Context, userID uuid.UUID, filename, contentType string) (*UploadURLResult, error) {
	contentType, err := s.checkContent(contentType, 1)
	if err != nil {
		return nil, err
	}
	if err := checkName(filename); err != nil {
		return nil, err
	}

	key := UploadKey(userID, uuid.New(), filename)
	url, err := s.issuer.IssueUpload(ctx, key, contentType)
	if err != nil {
		return nil, err
	}

	return &UploadURLResult{StorageKey: key, PresignedURL: url}, nil
}

type RegisterInput struct {
	UserID       uuid.UUID
	StorageKey   string
	OriginalName string
	ContentType  string
	FileSize     int64
}

// RegisterUpload records an object uploaded directly to storage. The key must
// sit under the requester's own prefix.
func (s *Service) RegisterUpload(ctx context.Context, input RegisterInput) (*entity.Image, error) {
	if !strings.HasPrefix(input.StorageKey, ownerPrefix(input.UserID)) || strings.Contains(input.StorageKey, "..") ||
		len(input.StorageKey) > maxStorageKeyLength {
		return nil, domain.ErrInvalidStorageKey
	}

	contentType, err := s.checkContent(input.ContentType, input.FileSize)
	if err != nil {
		return nil, err
	}

	name := input.OriginalName
	if name == "" {
		name = strings.TrimPrefix(input.StorageKey, ownerPrefix(input.UserID))
	}
	if err := checkName(name); err != nil {
		return nil, err
	}

	image := entity.NewImage(input.UserID, input.StorageKey, originalName(name), s.storage.GetURL(input.StorageKey), contentType, input.FileSize)
	if err := s.imageRepo.Create(ctx, image); err != nil {
		if errors.Is(err, domain.ErrInvalidStorageKey) {
			return nil, err
		}
		return nil, fmt.Errorf("creating image record: %w", err)
	}

	return image, nil
}

type ListInput struct {
	UserID  uuid.UUID
	Page    int
	PerPage int
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Image, *pagination.Info, error) {
	params := pagination.NewParams(input.Page, input.PerPage)
	images, info, err := s.imageRepo.ListByOwner(ctx, input.UserID, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing images: %w", err)
	}
	return images, info, nil
}

func (s *Service) Get(ctx context.Context, userID, imageID uuid.UUID) (*entity.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting image: %w", err)
	}
	if !image.IsOwnedBy(userID) {
		return nil, domain.ErrImageNotFound
	}
	return image, nil
}

func (s *Service) DownloadURL(ctx context.Context, userID, imageID uuid.UUID) (*access.PresignedURL, error) {
	image, err := s.Get(ctx, userID, imageID)
	if err != nil {
		return nil, err
	}
	return s.issuer.IssueDownload(ctx, image.StorageKey)
}

// Delete removes an original. Its derivatives are removed first when cascade
// is enabled; otherwise an image with derivatives is refused.
func (s *Service) Delete(ctx context.Context, userID, imageID uuid.UUID) error {
	image, err := s.Get(ctx, userID, imageID)
	if err != nil {
		return err
	}

	if s.cfg.CascadeDelete {
		removed, err := s.derivatives.DeleteAllForImage(ctx, image.ID)
		if err != nil {
			return fmt.Errorf("deleting derivatives: %w", err)
		}
		if removed > 0 {
			s.logger.Info("deleted derivatives with original",
				zap.String("image_id", image.ID.String()),
				zap.Int("count", removed),
			)
		}
	} else {
		count, err := s.transformedRepo.CountByParent(ctx, image.ID)
		if err != nil {
			return fmt.Errorf("counting derivatives: %w", err)
		}
		if count > 0 {
			return domain.ErrImageHasTransformations
		}
	}

	if err := s.imageRepo.Delete(ctx, image.ID); err != nil {
		return fmt.Errorf("deleting image record: %w", err)
	}

	if err := s.storage.Delete(ctx, image.StorageKey); err != nil {
		s.logger.Warn("failed to delete original blob",
			zap.String("storage_key", image.StorageKey),
			zap.String("image_id", image.ID.String()),
			zap.Error(err),
		)
	}
	return nil
}

func (s *Service) checkContent(contentType string, size int64) (string, error) {
	format, ok := valueobject.FormatFromContentType(contentType)
	if !ok {
		return "", domain.ErrUnsupportedContentType
	}
	if size <= 0 || size > s.limit() {
		return "", domain.ErrInvalidFileSize
	}
	return format.ContentType(), nil
}

// checkName bounds the stored original name by the images.original_name
// column, so oversized names fail before any blob is written.
func checkName(filename string) error {
	if utf8.RuneCountInString(originalName(filename)) > maxFilenameLength {
		return fmt.Errorf("%w: name longer than %d characters", domain.ErrInvalidFilename, maxFilenameLength)
	}
	return nil
}

func (s *Service) limit() int64 {
	if s.cfg.MaxUploadSize <= 0 {
		return 10 << 20
	}
	return s.cfg.MaxUploadSize
}

// UploadKey is images/{owner}/{token}_{name}.
func UploadKey(ownerID, token uuid.UUID, filename string) string {
	return ownerPrefix(ownerID) + token.String() + "_" + transform.BaseName(filename) + extension(filename)
}

func ownerPrefix(ownerID uuid.UUID) string {
	return keyPrefix + "/" + ownerID.String() + "/"
}

func extension(filename string) string {
	name := originalName(filename)
	if i := strings.LastIndex(name, "."); i > 0 {
		ext := strings.ToLower(name[i:])
		if _, ok := valueobject.ParseFormat(strings.TrimPrefix(ext, ".")); ok {
			return ext
		}
	}
	return ""
}

func originalName(filename string) string {
	name := filename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "image"
	}
	return name
}
