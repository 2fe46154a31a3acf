package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/httputil"
)

// toAppError maps domain failures onto client responses. Messages never carry
// storage or database detail.
func toAppError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrImageNotFound), errors.Is(err, domain.ErrAccessDenied):
		return apperror.NotFound("image")
	case errors.Is(err, domain.ErrTransformedImageNotFound):
		return apperror.NotFound("transformed image")
	case errors.Is(err, domain.ErrInvalidOptions):
		return apperror.BadRequest("INVALID_OPTIONS", err.Error())
	case errors.Is(err, domain.ErrTransformationFailed):
		return apperror.BadRequest("TRANSFORMATION_FAILED", "image transformation failed")
	case errors.Is(err, domain.ErrImageHasTransformations):
		return apperror.Conflict("image has transformations; delete them first")
	case errors.Is(err, domain.ErrInvalidStorageKey):
		return apperror.BadRequest("INVALID_STORAGE_KEY", "invalid storage key")
	case errors.Is(err, domain.ErrUnsupportedContentType):
		return apperror.BadRequest("INVALID_TYPE", "only jpeg, png and webp images are allowed")
	case errors.Is(err, domain.ErrInvalidFilename):
		return apperror.BadRequest("INVALID_FILENAME", "filename must be at most 255 characters")
	case errors.Is(err, domain.ErrInvalidFileSize):
		return apperror.BadRequest("INVALID_FILE_SIZE", "file size is out of range")
	default:
		return apperror.Internal(err)
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error, fields ...zap.Field) {
	appErr := toAppError(err)
	if appErr.StatusCode >= http.StatusInternalServerError || errors.Is(err, domain.ErrTransformationFailed) {
		fields = append(fields,
			zap.String("request_id", httputil.GetRequestID(c)),
			zap.String("user_id", httputil.GetUserID(c).String()),
			zap.Error(err),
		)
		logger.Error("request failed", fields...)
	}
	httputil.HandleError(c, appErr)
}

func parseID(c *gin.Context, param, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid "+resource+" id")
		return uuid.Nil, false
	}
	return id, true
}
