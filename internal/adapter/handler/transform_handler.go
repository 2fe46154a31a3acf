package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

type TransformHandler struct {
	transformSvc TransformService
	logger       *zap.Logger
}

func NewTransformHandler(transformSvc TransformService, logger *zap.Logger) *TransformHandler {
	return &TransformHandler{transformSvc: transformSvc, logger: logger}
}

// Transform godoc
//
//	@Summary		Transform an image
//	@Description	Apply resize, crop, rotate, filters and format conversion to an image and store the result
//	@Tags			transformations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Image ID"
//	@Param			request	body		request.TransformRequest	true	"Transformations"
//	@Success		201		{object}	response.TransformResponse
//	@Failure		400		{object}	httputil.ErrorResponse	"Invalid options or transformation failure"
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Failure		429		{object}	httputil.ErrorResponse
//	@Router			/images/{id}/transform [post]
func (h *TransformHandler) Transform(c *gin.Context) {
	imageID, ok := parseID(c, "id", "image")
	if !ok {
		return
	}

	var req request.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.transformSvc.TransformByID(c.Request.Context(), transform.TransformInput{
		UserID:  httputil.GetUserID(c),
		ImageID: imageID,
		Options: *req.Transformations,
	})
	if err != nil {
		respondError(c, h.logger, err, zap.String("image_id", imageID.String()))
		return
	}

	httputil.Created(c, response.TransformResultToResponse(result))
}

// ListForImage godoc
//
//	@Summary		List transformations of an image
//	@Tags			transformations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Image ID"
//	@Success		200	{object}	response.TransformedImagesListResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/images/{id}/transformations [get]
func (h *TransformHandler) ListForImage(c *gin.Context) {
	imageID, ok := parseID(c, "id", "image")
	if !ok {
		return
	}

	images, err := h.transformSvc.ListForImage(c.Request.Context(), httputil.GetUserID(c), imageID)
	if err != nil {
		respondError(c, h.logger, err, zap.String("image_id", imageID.String()))
		return
	}

	httputil.OK(c, response.TransformedImagesFromEntities(images))
}

// ListForOwner godoc
//
//	@Summary		List all transformed images
//	@Tags			transformations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	response.TransformedImagesListResponse
//	@Failure		401	{object}	httputil.ErrorResponse
//	@Router			/images/transformed-images [get]
func (h *TransformHandler) ListForOwner(c *gin.Context) {
	images, err := h.transformSvc.ListForOwner(c.Request.Context(), httputil.GetUserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httputil.OK(c, response.TransformedImagesFromEntities(images))
}

// DownloadURL godoc
//
//	@Summary		Presigned download URL for a transformed image
//	@Tags			transformations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Transformed image ID"
//	@Success		200	{object}	response.DownloadURLResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/images/transformed-images/{id}/download-url [get]
func (h *TransformHandler) DownloadURL(c *gin.Context) {
	id, ok := parseID(c, "id", "transformed image")
	if !ok {
		return
	}

	url, err := h.transformSvc.DownloadURL(c.Request.Context(), httputil.GetUserID(c), id)
	if err != nil {
		respondError(c, h.logger, err, zap.String("transformed_image_id", id.String()))
		return
	}

	httputil.OK(c, response.DownloadURLFromPresigned(url))
}

// Delete godoc
//
//	@Summary		Delete a transformed image
//	@Tags			transformations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Transformed image ID"
//	@Success		204	"No content"
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/images/transformed-images/{id} [delete]
func (h *TransformHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "transformed image")
	if !ok {
		return
	}

	if err := h.transformSvc.Delete(c.Request.Context(), httputil.GetUserID(c), id); err != nil {
		respondError(c, h.logger, err, zap.String("transformed_image_id", id.String()))
		return
	}

	httputil.NoContent(c)
}
