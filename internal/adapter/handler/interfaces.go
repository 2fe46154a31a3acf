package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/image"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.TokenPair, *entity.User, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type ImageService interface {
	Upload(ctx context.Context, input image.UploadInput) (*entity.Image, error)
	RequestUploadURL(ctx context.Context, userID uuid.UUID, filename, contentType string) (*image.UploadURLResult, error)
	RegisterUpload(ctx context.Context, input image.RegisterInput) (*entity.Image, error)
	List(ctx context.Context, input image.ListInput) ([]entity.Image, *pagination.Info, error)
	Get(ctx context.Context, userID, imageID uuid.UUID) (*entity.Image, error)
	DownloadURL(ctx context.Context, userID, imageID uuid.UUID) (*access.PresignedURL, error)
	Delete(ctx context.Context, userID, imageID uuid.UUID) error
}

type TransformService interface {
	TransformByID(ctx context.Context, input transform.TransformInput) (*transform.TransformResult, error)
	ListForImage(ctx context.Context, userID, imageID uuid.UUID) ([]entity.TransformedImage, error)
	ListForOwner(ctx context.Context, userID uuid.UUID) ([]entity.TransformedImage, error)
	DownloadURL(ctx context.Context, userID, id uuid.UUID) (*access.PresignedURL, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
