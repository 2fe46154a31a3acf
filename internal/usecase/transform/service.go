package transform

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
)

type Service struct {
	imageRepo       repository.ImageRepository
	transformedRepo repository.TransformedImageRepository
	storage         storage.BlobStorage
	transformer     storage.ImageTransformer
	issuer          *access.URLIssuer
	logger          *zap.Logger
}

func NewService(
	imageRepo repository.ImageRepository,
	transformedRepo repository.TransformedImageRepository,
	blobStorage storage.BlobStorage,
	transformer storage.ImageTransformer,
	issuer *access.URLIssuer,
	logger *zap.Logger,
) *Service {
	return &Service{
		imageRepo:       imageRepo,
		transformedRepo: transformedRepo,
		storage:         blobStorage,
		transformer:     transformer,
		issuer:          issuer,
		logger:          logger,
	}
}

type TransformInput struct {
	UserID  uuid.UUID
	ImageID uuid.UUID
	Options valueobject.TransformationOptions
}

type TransformResult struct {
	OriginalImageID  uuid.UUID
	TransformedImage *entity.TransformedImage
	Options          valueobject.TransformationOptions
}

// Transform derives a new artifact from image. The requester must own the
// image; nothing is read or written otherwise. On success exactly one blob
// and one metadata row exist for the result.
func (s *Service) Transform(ctx context.Context, image *entity.Image, opts valueobject.TransformationOptions, requester uuid.UUID) (*entity.TransformedImage, error) {
	if !image.IsOwnedBy(requester) {
		return nil, domain.ErrAccessDenied
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidOptions, err)
	}

	appliedOptions, err := opts.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidOptions, err)
	}

	src, err := s.storage.Get(ctx, image.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: reading original: %w", domain.ErrTransformationFailed, domain.ErrStorageFailure, err)
	}

	output, err := s.transformer.Apply(src, opts, image.ContentType)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOptions) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrTransformationFailed, err)
	}

	filename := Filename(uuid.New(), image.OriginalName, opts, output.Format)
	key := StorageKey(image.OwnerID, filename)

	url, err := s.storage.Put(ctx, key, output.Data, output.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: writing result: %w", domain.ErrTransformationFailed, domain.ErrStorageFailure, err)
	}

	transformed := entity.NewTransformedImage(image, key, url, output.ContentType, int64(len(output.Data)), appliedOptions)
	if err := s.transformedRepo.Create(ctx, transformed); err != nil {
		s.logger.Error("transformed blob written without metadata",
			zap.String("storage_key", key),
			zap.String("image_id", image.ID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w: recording result: %w", domain.ErrTransformationFailed, domain.ErrRepositoryFailure, err)
	}

	s.logger.Info("image transformed",
		zap.String("image_id", image.ID.String()),
		zap.String("transformed_image_id", transformed.ID.String()),
		zap.String("content_type", transformed.ContentType),
		zap.Int64("file_size", transformed.FileSize),
		zap.Int("width", output.Width),
		zap.Int("height", output.Height),
	)

	return transformed, nil
}

// TransformByID loads the parent image and runs Transform. Images that do not
// exist and images owned by someone else are indistinguishable to the caller.
func (s *Service) TransformByID(ctx context.Context, input TransformInput) (*TransformResult, error) {
	image, err := s.ownedImage(ctx, input.UserID, input.ImageID)
	if err != nil {
		return nil, err
	}

	transformed, err := s.Transform(ctx, image, input.Options, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}

	return &TransformResult{
		OriginalImageID:  image.ID,
		TransformedImage: transformed,
		Options:          input.Options,
	}, nil
}

func (s *Service) ListForImage(ctx context.Context, userID, imageID uuid.UUID) ([]entity.TransformedImage, error) {
	if _, err := s.ownedImage(ctx, userID, imageID); err != nil {
		return nil, err
	}

	images, err := s.transformedRepo.ListByParent(ctx, imageID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transformed images: %w", err)
	}
	return images, nil
}

func (s *Service) ListForOwner(ctx context.Context, userID uuid.UUID) ([]entity.TransformedImage, error) {
	images, err := s.transformedRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transformed images: %w", err)
	}
	return images, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*entity.TransformedImage, error) {
	transformed, err := s.transformedRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTransformedImageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting transformed image: %w", err)
	}
	if !transformed.IsOwnedBy(userID) {
		return nil, domain.ErrTransformedImageNotFound
	}
	return transformed, nil
}

func (s *Service) DownloadURL(ctx context.Context, userID, id uuid.UUID) (*access.PresignedURL, error) {
	transformed, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.issuer.IssueDownload(ctx, transformed.StorageKey)
}

// Delete removes the metadata row first so a failed blob delete leaves only
// an unreferenced object behind.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	transformed, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.transformedRepo.Delete(ctx, transformed.ID); err != nil {
		return fmt.Errorf("deleting transformed image: %w", err)
	}

	if err := s.storage.Delete(ctx, transformed.StorageKey); err != nil {
		s.logger.Warn("failed to delete transformed blob",
			zap.String("storage_key", transformed.StorageKey),
			zap.String("transformed_image_id", transformed.ID.String()),
			zap.Error(err),
		)
	}
	return nil
}

// DeleteAllForImage removes every derivative of imageID. Rows go in one
// statement; blob deletes are best effort. Ownership is the caller's concern.
func (s *Service) DeleteAllForImage(ctx context.Context, imageID uuid.UUID) (int, error) {
	removed, err := s.transformedRepo.DeleteByParentID(ctx, imageID)
	if err != nil {
		return 0, fmt.Errorf("deleting transformed images: %w", err)
	}

	for _, t := range removed {
		if err := s.storage.Delete(ctx, t.StorageKey); err != nil {
			s.logger.Warn("failed to delete transformed blob",
				zap.String("storage_key", t.StorageKey),
				zap.String("image_id", imageID.String()),
				zap.Error(err),
			)
		}
	}
	return len(removed), nil
}

func (s *Service) ownedImage(ctx context.Context, userID, imageID uuid.UUID) (*entity.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: loading image: %w", domain.ErrRepositoryFailure, err)
	}
	if !image.IsOwnedBy(userID) {
		return nil, domain.ErrImageNotFound
	}
	return image, nil
}
