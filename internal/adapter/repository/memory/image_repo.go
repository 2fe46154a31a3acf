// Package memory holds map-backed repositories used by local runs and tests
// that do not need PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/pagination"
)

type ImageRepo struct {
	mu     sync.RWMutex
	images map[uuid.UUID]entity.Image
}

func NewImageRepo() *ImageRepo {
	return &ImageRepo{images: make(map[uuid.UUID]entity.Image)}
}

func (r *ImageRepo) Create(_ context.Context, image *entity.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.images {
		if existing.StorageKey == image.StorageKey {
			return fmt.Errorf("%w: storage key already registered", domain.ErrInvalidStorageKey)
		}
	}
	r.images[image.ID] = *image
	return nil
}

func (r *ImageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	image, ok := r.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	return &image, nil
}

func (r *ImageRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, params pagination.Params) ([]entity.Image, *pagination.Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := []entity.Image{}
	for _, image := range r.images {
		if image.OwnerID == ownerID {
			owned = append(owned, image)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := len(owned)
	start := min(params.Offset(), total)
	end := min(start+params.Limit(), total)

	return owned[start:end], pagination.NewInfo(params.Page, params.PerPage, total), nil
}

func (r *ImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.images[id]; !ok {
		return domain.ErrImageNotFound
	}
	delete(r.images, id)
	return nil
}
