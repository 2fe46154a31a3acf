package handler_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-processing-backend/internal/mocks"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

func TestTransformHandler_Transform(t *testing.T) {
	t.Run("transforms image successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, zap.NewNop())

		userID := uuid.New()
		imageID := uuid.New()
		router := setupRouter()
		router.POST("/images/:id/transform", withUser(userID, h.Transform))

		opts := valueobject.TransformationOptions{
			Resize: &valueobject.ResizeOptions{Width: valueobject.IntPtr(50)},
			Format: "png",
		}
		parent := &entity.Image{ID: imageID, OwnerID: userID}
		transformed := entity.NewTransformedImage(parent,
			"transformed/"+userID.String()+"/tok_cat_transformed_resizew50.png",
			"https://example.com/t.png", "image/png", 2048, []byte(`{"resize":{"width":50},"format":"png"}`))

		transformSvc.EXPECT().TransformByID(gomock.Any(), transform.TransformInput{
			UserID:  userID,
			ImageID: imageID,
			Options: opts,
		}).Return(&transform.TransformResult{
			OriginalImageID:  imageID,
			TransformedImage: transformed,
			Options:          opts,
		}, nil)

		body := `{"transformations":{"resize":{"width":50},"format":"png"}}`
		req := httptest.NewRequest(http.MethodPost, "/images/"+imageID.String()+"/transform", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, imageID.String(), resp["originalImageId"])
		assert.Equal(t, transformed.ID.String(), resp["transformedImageId"])
		assert.Equal(t, "https://example.com/t.png", resp["transformedUrl"])
		assert.Equal(t, "tok_cat_transformed_resizew50.png", resp["transformedFilename"])
		assert.Equal(t, float64(2048), resp["fileSize"])
		assert.Equal(t, "image/png", resp["contentType"])
		transformations := resp["transformations"].(map[string]any)
		assert.Equal(t, "png", transformations["format"])
	})

	t.Run("requires transformations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, zap.NewNop())

		router := setupRouter()
		router.POST("/images/:id/transform", withUser(uuid.New(), h.Transform))

		req := httptest.NewRequest(http.MethodPost, "/images/"+uuid.NewString()+"/transform", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"image not found", domain.ErrImageNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid options", fmt.Errorf("%w: crop exceeds bounds", domain.ErrInvalidOptions), http.StatusBadRequest, "INVALID_OPTIONS"},
		{"decode failure", fmt.Errorf("%w: %w: bad header", domain.ErrTransformationFailed, domain.ErrDecodeFailed), http.StatusBadRequest, "TRANSFORMATION_FAILED"},
		{"storage failure", fmt.Errorf("%w: %w: timeout", domain.ErrTransformationFailed, domain.ErrStorageFailure), http.StatusBadRequest, "TRANSFORMATION_FAILED"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transformSvc := mocks.NewMockTransformService(ctrl)
			h := handler.NewTransformHandler(transformSvc, zap.NewNop())

			router := setupRouter()
			router.POST("/images/:id/transform", withUser(uuid.New(), h.Transform))

			transformSvc.EXPECT().TransformByID(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			body := `{"transformations":{"rotate":90}}`
			req := httptest.NewRequest(http.MethodPost, "/images/"+uuid.NewString()+"/transform", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeBody(t, w)
			assert.Equal(t, tt.wantCode, resp["code"])
			assert.NotContains(t, resp["error"], "timeout")
			assert.NotContains(t, resp["error"], "bad header")
		})
	}
}

func TestTransformHandler_ListForImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transformSvc := mocks.NewMockTransformService(ctrl)
	h := handler.NewTransformHandler(transformSvc, zap.NewNop())

	userID := uuid.New()
	imageID := uuid.New()
	router := setupRouter()
	router.GET("/images/:id/transformations", withUser(userID, h.ListForImage))

	parent := &entity.Image{ID: imageID, OwnerID: userID}
	items := []entity.TransformedImage{
		*entity.NewTransformedImage(parent, "transformed/u/a.png", "u/a", "image/png", 1, []byte(`{"rotate":90}`)),
		*entity.NewTransformedImage(parent, "transformed/u/b.jpg", "u/b", "image/jpeg", 1, nil),
	}
	transformSvc.EXPECT().ListForImage(gomock.Any(), userID, imageID).Return(items, nil)

	req := httptest.NewRequest(http.MethodGet, "/images/"+imageID.String()+"/transformations", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeBody(t, w)["transformedImages"].([]any)
	assert.Len(t, list, 2)
	first := list[0].(map[string]any)
	assert.Equal(t, "a.png", first["filename"])
	assert.Equal(t, float64(90), first["transformations"].(map[string]any)["rotate"])
	assert.Empty(t, list[1].(map[string]any)["transformations"])
}

func TestTransformHandler_ListForOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transformSvc := mocks.NewMockTransformService(ctrl)
	h := handler.NewTransformHandler(transformSvc, zap.NewNop())

	userID := uuid.New()
	router := setupRouter()
	router.GET("/images/transformed-images", withUser(userID, h.ListForOwner))

	transformSvc.EXPECT().ListForOwner(gomock.Any(), userID).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/images/transformed-images", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["transformedImages"])
}

func TestTransformHandler_DownloadURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transformSvc := mocks.NewMockTransformService(ctrl)
	h := handler.NewTransformHandler(transformSvc, zap.NewNop())

	userID := uuid.New()
	id := uuid.New()
	router := setupRouter()
	router.GET("/images/transformed-images/:id/download-url", withUser(userID, h.DownloadURL))

	transformSvc.EXPECT().DownloadURL(gomock.Any(), userID, id).
		Return(&access.PresignedURL{URL: "https://s3/t", ExpiresIn: access.DownloadURLTTL}, nil)

	req := httptest.NewRequest(http.MethodGet, "/images/transformed-images/"+id.String()+"/download-url", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "https://s3/t", resp["downloadUrl"])
	assert.Equal(t, float64(3600), resp["expiresIn"])
}

func TestTransformHandler_Delete(t *testing.T) {
	t.Run("deletes transformed image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, zap.NewNop())

		userID := uuid.New()
		id := uuid.New()
		router := setupRouter()
		router.DELETE("/images/transformed-images/:id", withUser(userID, h.Delete))

		transformSvc.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/images/transformed-images/"+id.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns not found for foreign id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, zap.NewNop())

		router := setupRouter()
		router.DELETE("/images/transformed-images/:id", withUser(uuid.New(), h.Delete))

		transformSvc.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrTransformedImageNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/images/transformed-images/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
