package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	RevokeByUserID(ctx context.Context, userID uuid.UUID) error
	Revoke(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, params pagination.Params) ([]entity.Image, *pagination.Info, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransformedImageRepository interface {
	Create(ctx context.Context, image *entity.TransformedImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TransformedImage, error)
	ListByParent(ctx context.Context, parentID, ownerID uuid.UUID) ([]entity.TransformedImage, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.TransformedImage, error)
	CountByParent(ctx context.Context, parentID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByParentID removes every derivative of parentID and returns the
	// removed rows so their blobs can be cleaned up.
	DeleteByParentID(ctx context.Context, parentID uuid.UUID) ([]entity.TransformedImage, error)
}
