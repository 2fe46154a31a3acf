package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

type TransformResponse struct {
	OriginalImageID     uuid.UUID                         `json:"originalImageId"`
	TransformedImageID  uuid.UUID                         `json:"transformedImageId"`
	TransformedURL      string                            `json:"transformedUrl"`
	TransformedFilename string                            `json:"transformedFilename"`
	FileSize            int64                             `json:"fileSize"`
	ContentType         string                            `json:"contentType"`
	Transformations     valueobject.TransformationOptions `json:"transformations"`
}

type TransformedImageResponse struct {
	ID              uuid.UUID       `json:"id"`
	OriginalImageID uuid.UUID       `json:"originalImageId"`
	Filename        string          `json:"filename"`
	URL             string          `json:"url"`
	ContentType     string          `json:"contentType"`
	FileSize        int64           `json:"fileSize"`
	Transformations json.RawMessage `json:"transformations" swaggertype:"object"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type TransformedImagesListResponse struct {
	TransformedImages []TransformedImageResponse `json:"transformedImages"`
}

func TransformResultToResponse(result *transform.TransformResult) TransformResponse {
	t := result.TransformedImage
	return TransformResponse{
		OriginalImageID:     result.OriginalImageID,
		TransformedImageID:  t.ID,
		TransformedURL:      t.URL,
		TransformedFilename: t.Filename(),
		FileSize:            t.FileSize,
		ContentType:         t.ContentType,
		Transformations:     result.Options,
	}
}

func TransformedImageFromEntity(t *entity.TransformedImage) TransformedImageResponse {
	options := json.RawMessage(t.AppliedOptions)
	if len(options) == 0 {
		options = json.RawMessage("{}")
	}
	return TransformedImageResponse{
		ID:              t.ID,
		OriginalImageID: t.ParentImageID,
		Filename:        t.Filename(),
		URL:             t.URL,
		ContentType:     t.ContentType,
		FileSize:        t.FileSize,
		Transformations: options,
		CreatedAt:       t.CreatedAt,
	}
}

func TransformedImagesFromEntities(images []entity.TransformedImage) TransformedImagesListResponse {
	result := make([]TransformedImageResponse, 0, len(images))
	for _, t := range images {
		result = append(result, TransformedImageFromEntity(&t))
	}
	return TransformedImagesListResponse{TransformedImages: result}
}
