package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
)

type ImageResponse struct {
	ID           uuid.UUID `json:"id"`
	OriginalName string    `json:"originalName"`
	StorageKey   string    `json:"storageKey"`
	URL          string    `json:"url"`
	ContentType  string    `json:"contentType"`
	FileSize     int64     `json:"fileSize"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type ImagesListResponse struct {
	Images     []ImageResponse    `json:"images"`
	Pagination PaginationResponse `json:"pagination"`
}

type UploadURLResponse struct {
	StorageKey string `json:"storageKey"`
	UploadURL  string `json:"uploadUrl"`
	ExpiresIn  int    `json:"expiresIn"`
}

type DownloadURLResponse struct {
	DownloadURL string `json:"downloadUrl"`
	ExpiresIn   int    `json:"expiresIn"`
}

func ImageFromEntity(i *entity.Image) ImageResponse {
	return ImageResponse{
		ID:           i.ID,
		OriginalName: i.OriginalName,
		StorageKey:   i.StorageKey,
		URL:          i.URL,
		ContentType:  i.ContentType,
		FileSize:     i.FileSize,
		CreatedAt:    i.CreatedAt,
	}
}

func ImagesFromEntities(images []entity.Image) []ImageResponse {
	result := make([]ImageResponse, 0, len(images))
	for _, i := range images {
		result = append(result, ImageFromEntity(&i))
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}

func DownloadURLFromPresigned(u *access.PresignedURL) DownloadURLResponse {
	return DownloadURLResponse{
		DownloadURL: u.URL,
		ExpiresIn:   int(u.ExpiresIn.Seconds()),
	}
}
