package request

import "github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"

type TransformRequest struct {
	Transformations *valueobject.TransformationOptions `json:"transformations" binding:"required"`
}
