package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
)

type TransformedImageRepo struct {
	mu     sync.RWMutex
	images map[uuid.UUID]entity.TransformedImage
}

func NewTransformedImageRepo() *TransformedImageRepo {
	return &TransformedImageRepo{images: make(map[uuid.UUID]entity.TransformedImage)}
}

func (r *TransformedImageRepo) Create(_ context.Context, image *entity.TransformedImage) error {
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

func (r *TransformedImageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TransformedImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	image, ok := r.images[id]
	if !ok {
		return nil, domain.ErrTransformedImageNotFound
	}
	return &image, nil
}

func (r *TransformedImageRepo) ListByParent(_ context.Context, parentID, ownerID uuid.UUID) ([]entity.TransformedImage, error) {
	return r.filter(func(t entity.TransformedImage) bool {
		return t.ParentImageID == parentID && t.OwnerID == ownerID
	}), nil
}

func (r *TransformedImageRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]entity.TransformedImage, error) {
	return r.filter(func(t entity.TransformedImage) bool {
		return t.OwnerID == ownerID
	}), nil
}

func (r *TransformedImageRepo) CountByParent(_ context.Context, parentID uuid.UUID) (int, error) {
	return len(r.filter(func(t entity.TransformedImage) bool {
		return t.ParentImageID == parentID
	})), nil
}

func (r *TransformedImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.images[id]; !ok {
		return domain.ErrTransformedImageNotFound
	}
	delete(r.images, id)
	return nil
}

func (r *TransformedImageRepo) DeleteByParentID(_ context.Context, parentID uuid.UUID) ([]entity.TransformedImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := []entity.TransformedImage{}
	for id, image := range r.images {
		if image.ParentImageID == parentID {
			removed = append(removed, image)
			delete(r.images, id)
		}
	}
	return removed, nil
}

func (r *TransformedImageRepo) filter(keep func(entity.TransformedImage) bool) []entity.TransformedImage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []entity.TransformedImage{}
	for _, image := range r.images {
		if keep(image) {
			matched = append(matched, image)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}
