package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
)

const transformedImageColumns = `id, parent_image_id, owner_id, storage_key, url, content_type, file_size, applied_options, created_at`

type TransformedImageRepo struct {
	pool *pgxpool.Pool
}

func NewTransformedImageRepo(pool *pgxpool.Pool) *TransformedImageRepo {
	return &TransformedImageRepo{pool: pool}
}

func (r *TransformedImageRepo) Create(ctx context.Context, image *entity.TransformedImage) error {
	query := `
		INSERT INTO transformed_images (` + transformedImageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	options := image.AppliedOptions
	if len(options) == 0 {
		options = []byte("{}")
	}
	_, err := r.pool.Exec(ctx, query,
		image.ID, image.ParentImageID, image.OwnerID, image.StorageKey,
		image.URL, image.ContentType, image.FileSize, options, image.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: storage key already registered", domain.ErrInvalidStorageKey)
		}
		return fmt.Errorf("inserting transformed image: %w", err)
	}
	return nil
}

func (r *TransformedImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TransformedImage, error) {
	query := `SELECT ` + transformedImageColumns + ` FROM transformed_images WHERE id = $1`

	image, err := scanTransformedImage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransformedImageNotFound
		}
		return nil, fmt.Errorf("querying transformed image by id: %w", err)
	}
	return image, nil
}

func (r *TransformedImageRepo) ListByParent(ctx context.Context, parentID, ownerID uuid.UUID) ([]entity.TransformedImage, error) {
	query := `
		SELECT ` + transformedImageColumns + `
		FROM transformed_images
		WHERE parent_image_id = $1 AND owner_id = $2
		ORDER BY created_at DESC, id
	`
	return r.list(ctx, query, parentID, ownerID)
}

func (r *TransformedImageRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.TransformedImage, error) {
	query := `
		SELECT ` + transformedImageColumns + `
		FROM transformed_images
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
	`
	return r.list(ctx, query, ownerID)
}

func (r *TransformedImageRepo) CountByParent(ctx context.Context, parentID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transformed_images WHERE parent_image_id = $1`, parentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting transformed images: %w", err)
	}
	return count, nil
}

func (r *TransformedImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM transformed_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transformed image: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTransformedImageNotFound
	}
	return nil
}

func (r *TransformedImageRepo) DeleteByParentID(ctx context.Context, parentID uuid.UUID) ([]entity.TransformedImage, error) {
	query := `
		DELETE FROM transformed_images
		WHERE parent_image_id = $1
		RETURNING ` + transformedImageColumns
	return r.list(ctx, query, parentID)
}

func (r *TransformedImageRepo) list(ctx context.Context, query string, args ...any) ([]entity.TransformedImage, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transformed images: %w", err)
	}
	defer rows.Close()

	images := []entity.TransformedImage{}
	for rows.Next() {
		image, err := scanTransformedImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transformed image: %w", err)
		}
		images = append(images, *image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transformed images: %w", err)
	}
	return images, nil
}

func scanTransformedImage(row pgx.Row) (*entity.TransformedImage, error) {
	var image entity.TransformedImage
	err := row.Scan(
		&image.ID, &image.ParentImageID, &image.OwnerID, &image.StorageKey,
		&image.URL, &image.ContentType, &image.FileSize, &image.AppliedOptions, &image.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &image, nil
}
