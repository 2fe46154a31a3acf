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
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/pagination"
)

const imageColumns = `id, owner_id, storage_key, original_name, url, content_type, file_size, created_at`

type ImageRepo struct {
	pool *pgxpool.Pool
}

func NewImageRepo(pool *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{pool: pool}
}

func (r *ImageRepo) Create(ctx context.Context, image *entity.Image) error {
	query := `
		INSERT INTO images (` + imageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		image.ID, image.OwnerID, image.StorageKey, image.OriginalName,
		image.URL, image.ContentType, image.FileSize, image.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: storage key already registered", domain.ErrInvalidStorageKey)
		}
		return fmt.Errorf("inserting image: %w", err)
	}
	return nil
}

func (r *ImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`

	image, err := scanImage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("querying image by id: %w", err)
	}
	return image, nil
}

func (r *ImageRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, params pagination.Params) ([]entity.Image, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM images WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting images: %w", err)
	}

	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, ownerID, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	images := []entity.Image{}
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, *image)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating images: %w", err)
	}

	return images, pagination.NewInfo(params.Page, params.PerPage, total), nil
}

func (r *ImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func scanImage(row pgx.Row) (*entity.Image, error) {
	var image entity.Image
	err := row.Scan(
		&image.ID, &image.OwnerID, &image.StorageKey, &image.OriginalName,
		&image.URL, &image.ContentType, &image.FileSize, &image.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &image, nil
}
