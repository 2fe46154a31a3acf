package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-processing-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/image"
)

// multipartOverhead covers form boundaries and headers around the file part.
const multipartOverhead = 1 << 20

type ImageHandler struct {
	imageSvc      ImageService
	maxUploadSize int64
	logger        *zap.Logger
}

func NewImageHandler(imageSvc ImageService, maxUploadSize int64, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		imageSvc:      imageSvc,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Upload an original image through the API
//	@Tags			images
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file (jpeg, png or webp)"
//	@Success		201		{object}	response.ImageResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Router			/images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	img, err := h.imageSvc.Upload(c.Request.Context(), image.UploadInput{
		UserID:      httputil.GetUserID(c),
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httputil.Created(c, response.ImageFromEntity(img))
}

// RequestUploadURL godoc
//
//	@Summary		Request a presigned upload URL
//	@Description	Reserve a storage key and return a URL the client can PUT the image to
//	@Tags			images
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.UploadURLRequest	true	"File description"
//	@Success		200		{object}	response.UploadURLResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Router			/images/upload-url [post]
func (h *ImageHandler) RequestUploadURL(c *gin.Context) {
	var req request.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.imageSvc.RequestUploadURL(c.Request.Context(), httputil.GetUserID(c), req.Filename, req.ContentType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httputil.OK(c, response.UploadURLResponse{
		StorageKey: result.StorageKey,
		UploadURL:  result.PresignedURL.URL,
		ExpiresIn:  int(result.PresignedURL.ExpiresIn.Seconds()),
	})
}

// RegisterMetadata godoc
//
//	@Summary		Register a directly uploaded image
//	@Description	Record an object the client uploaded with a presigned URL
//	@Tags			images
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.RegisterImageRequest	true	"Uploaded object"
//	@Success		201		{object}	response.ImageResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Router			/images/metadata [post]
func (h *ImageHandler) RegisterMetadata(c *gin.Context) {
	var req request.RegisterImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	img, err := h.imageSvc.RegisterUpload(c.Request.Context(), image.RegisterInput{
		UserID:       httputil.GetUserID(c),
		StorageKey:   req.StorageKey,
		OriginalName: req.OriginalName,
		ContentType:  req.ContentType,
		FileSize:     req.FileSize,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httputil.Created(c, response.ImageFromEntity(img))
}

// List godoc
//
//	@Summary		List images
//	@Description	List the caller's original images, newest first
//	@Tags			images
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page		query		int	false	"Page number"
//	@Param			per_page	query		int	false	"Items per page"
//	@Success		200			{object}	response.ImagesListResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Failure		401			{object}	httputil.ErrorResponse
//	@Router			/images [get]
func (h *ImageHandler) List(c *gin.Context) {
	var req request.ListImagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	images, pageInfo, err := h.imageSvc.List(c.Request.Context(), image.ListInput{
		UserID:  httputil.GetUserID(c),
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httputil.OK(c, response.ImagesListResponse{
		Images:     response.ImagesFromEntities(images),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

// Get godoc
//
//	@Summary		Get an image
//	@Tags			images
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Image ID"
//	@Success		200	{object}	response.ImageResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/images/{id} [get]
func (h *ImageHandler) Get(c *gin.Context) {
	imageID, ok := parseID(c, "id", "image")
	if !ok {
		return
	}

	img, err := h.imageSvc.Get(c.Request.Context(), httputil.GetUserID(c), imageID)
	if err != nil {
		respondError(c, h.logger, err, zap.String("image_id", imageID.String()))
		return
	}

	httputil.OK(c, response.ImageFromEntity(img))
}

// DownloadURL godoc
//
//	@Summary		Presigned download URL for an image
//	@Tags			images
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Image ID"
//	@Success		200	{object}	response.DownloadURLResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/images/{id}/download-url [get]
func (h *ImageHandler) DownloadURL(c *gin.Context) {
	imageID, ok := parseID(c, "id", "image")
	if !ok {
		return
	}

	url, err := h.imageSvc.DownloadURL(c.Request.Context(), httputil.GetUserID(c), imageID)
	if err != nil {
		respondError(c, h.logger, err, zap.String("image_id", imageID.String()))
		return
	}

	httputil.OK(c, response.DownloadURLFromPresigned(url))
}

// Delete godoc
//
//	@Summary		Delete an image
//	@Description	Delete an original image; its transformations are removed first when cascade is enabled
//	@Tags			images
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Image ID"
//	@Success		204	"No content"
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Failure		409	{object}	httputil.ErrorResponse	"Image has transformations"
//	@Router			/images/{id} [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	imageID, ok := parseID(c, "id", "image")
	if !ok {
		return
	}

	if err := h.imageSvc.Delete(c.Request.Context(), httputil.GetUserID(c), imageID); err != nil {
		respondError(c, h.logger, err, zap.String("image_id", imageID.String()))
		return
	}

	httputil.NoContent(c)
}
