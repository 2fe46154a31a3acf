package transform_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/imageproc"
	blob "github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/mocks"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

type mockDeps struct {
	imageRepo       *mocks.MockImageRepository
	transformedRepo *mocks.MockTransformedImageRepository
	storage         *mocks.MockBlobStorage
	transformer     *mocks.MockImageTransformer
}

func newMockService(ctrl *gomock.Controller) (*transform.Service, mockDeps) {
	deps := mockDeps{
		imageRepo:       mocks.NewMockImageRepository(ctrl),
		transformedRepo: mocks.NewMockTransformedImageRepository(ctrl),
		storage:         mocks.NewMockBlobStorage(ctrl),
		transformer:     mocks.NewMockImageTransformer(ctrl),
	}
	svc := transform.NewService(deps.imageRepo, deps.transformedRepo, deps.storage, deps.transformer,
		access.NewURLIssuer(deps.storage), zap.NewNop())
	return svc, deps
}

func grayscaleOptions() valueobject.TransformationOptions {
	return valueobject.TransformationOptions{
		Format:  "png",
		Filters: &valueobject.FilterOptions{Grayscale: true},
	}
}

func TestService_Transform(t *testing.T) {
	ownerID := uuid.New()
	source := entity.NewImage(ownerID, "images/owner/cat.jpg", "cat.jpg", "http://s3/cat.jpg", "image/jpeg", 100)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()
		opts := grayscaleOptions()

		var storedKey string
		deps.storage.EXPECT().Get(ctx, source.StorageKey).Return([]byte("jpeg-bytes"), nil)
		deps.transformer.EXPECT().Apply([]byte("jpeg-bytes"), opts, "image/jpeg").Return(&storage.TransformOutput{
			Data:        []byte("png-bytes"),
			Format:      valueobject.FormatPNG,
			ContentType: "image/png",
			Width:       10,
			Height:      10,
		}, nil)
		deps.storage.EXPECT().Put(ctx, gomock.Any(), []byte("png-bytes"), "image/png").
			DoAndReturn(func(_ context.Context, key string, _ []byte, _ string) (string, error) {
				storedKey = key
				return "http://s3/" + key, nil
			})
		deps.transformedRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		result, err := svc.Transform(ctx, source, opts, ownerID)

		require.NoError(t, err)
		assert.Equal(t, source.ID, result.ParentImageID)
		assert.Equal(t, ownerID, result.OwnerID)
		assert.Equal(t, storedKey, result.StorageKey)
		assert.Equal(t, "http://s3/"+storedKey, result.URL)
		assert.Equal(t, "image/png", result.ContentType)
		assert.Equal(t, int64(len("png-bytes")), result.FileSize)
		assert.True(t, strings.HasPrefix(storedKey, "transformed/"+ownerID.String()+"/"))
		assert.True(t, strings.HasSuffix(result.Filename(), "_cat_transformed_gray.png"))
		assert.JSONEq(t, `{"format":"png","filters":{"grayscale":true}}`, string(result.AppliedOptions))
	})

	t.Run("non owner performs no io", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newMockService(ctrl)

		result, err := svc.Transform(context.Background(), source, grayscaleOptions(), uuid.New())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("structurally invalid options perform no io", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newMockService(ctrl)
		opts := valueobject.TransformationOptions{Resize: &valueobject.ResizeOptions{}}

		result, err := svc.Transform(context.Background(), source, opts, ownerID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
		assert.NotErrorIs(t, err, domain.ErrTransformationFailed)
	})

	t.Run("crop out of bounds writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()
		opts := valueobject.TransformationOptions{Crop: &valueobject.CropOptions{X: 90, Y: 0, Width: 20, Height: 10}}

		deps.storage.EXPECT().Get(ctx, source.StorageKey).Return([]byte("src"), nil)
		deps.transformer.EXPECT().Apply([]byte("src"), opts, "image/jpeg").
			Return(nil, errors.Join(domain.ErrInvalidOptions, errors.New("crop exceeds bounds")))

		result, err := svc.Transform(ctx, source, opts, ownerID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	})

	t.Run("source read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.storage.EXPECT().Get(ctx, source.StorageKey).Return(nil, errors.New("connection reset"))

		_, err := svc.Transform(ctx, source, grayscaleOptions(), ownerID)

		assert.ErrorIs(t, err, domain.ErrTransformationFailed)
		assert.ErrorIs(t, err, domain.ErrStorageFailure)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("decode failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.storage.EXPECT().Get(ctx, gomock.Any()).Return([]byte("garbage"), nil)
		deps.transformer.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(domain.ErrDecodeFailed, errors.New("unknown format")))

		_, err := svc.Transform(ctx, source, grayscaleOptions(), ownerID)

		assert.ErrorIs(t, err, domain.ErrTransformationFailed)
		assert.ErrorIs(t, err, domain.ErrDecodeFailed)
	})

	t.Run("result write failure records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.storage.EXPECT().Get(ctx, gomock.Any()).Return([]byte("src"), nil)
		deps.transformer.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&storage.TransformOutput{Data: []byte("out"), Format: valueobject.FormatPNG, ContentType: "image/png"}, nil)
		deps.storage.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket gone"))

		_, err := svc.Transform(ctx, source, grayscaleOptions(), ownerID)

		assert.ErrorIs(t, err, domain.ErrTransformationFailed)
		assert.ErrorIs(t, err, domain.ErrStorageFailure)
	})

	t.Run("metadata insert failure leaves blob without delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.storage.EXPECT().Get(ctx, gomock.Any()).Return([]byte("src"), nil)
		deps.transformer.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&storage.TransformOutput{Data: []byte("out"), Format: valueobject.FormatPNG, ContentType: "image/png"}, nil)
		deps.storage.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("http://s3/x", nil)
		deps.transformedRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Transform(ctx, source, grayscaleOptions(), ownerID)

		assert.ErrorIs(t, err, domain.ErrTransformationFailed)
		assert.ErrorIs(t, err, domain.ErrRepositoryFailure)
	})
}

func TestService_TransformByID(t *testing.T) {
	ownerID := uuid.New()
	source := entity.NewImage(ownerID, "images/owner/cat.jpg", "cat.jpg", "u", "image/jpeg", 100)

	t.Run("image not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.imageRepo.EXPECT().GetByID(ctx, source.ID).Return(nil, domain.ErrImageNotFound)

		result, err := svc.TransformByID(ctx, transform.TransformInput{UserID: ownerID, ImageID: source.ID})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrImageNotFound)
	})

	t.Run("foreign image reported as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.imageRepo.EXPECT().GetByID(ctx, source.ID).Return(source, nil)

		result, err := svc.TransformByID(ctx, transform.TransformInput{
			UserID:  uuid.New(),
			ImageID: source.ID,
			Options: grayscaleOptions(),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrImageNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.imageRepo.EXPECT().GetByID(ctx, source.ID).Return(nil, errors.New("timeout"))

		_, err := svc.TransformByID(ctx, transform.TransformInput{UserID: ownerID, ImageID: source.ID})

		assert.ErrorIs(t, err, domain.ErrRepositoryFailure)
		assert.NotErrorIs(t, err, domain.ErrImageNotFound)
	})
}

func TestService_Get(t *testing.T) {
	ownerID := uuid.New()
	parent := entity.NewImage(ownerID, "images/p.png", "p.png", "u", "image/png", 1)
	derived := entity.NewTransformedImage(parent, "transformed/x.png", "u", "image/png", 1, nil)

	t.Run("owner gets derivative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.transformedRepo.EXPECT().GetByID(ctx, derived.ID).Return(derived, nil)

		found, err := svc.Get(ctx, ownerID, derived.ID)

		require.NoError(t, err)
		assert.Equal(t, derived.ID, found.ID)
	})

	t.Run("foreign derivative is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.transformedRepo.EXPECT().GetByID(ctx, derived.ID).Return(derived, nil)

		found, err := svc.Get(ctx, uuid.New(), derived.ID)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrTransformedImageNotFound)
	})
}

func TestService_DownloadURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newMockService(ctrl)
	ctx := context.Background()

	ownerID := uuid.New()
	parent := entity.NewImage(ownerID, "images/p.png", "p.png", "u", "image/png", 1)
	derived := entity.NewTransformedImage(parent, "transformed/x.png", "u", "image/png", 1, nil)

	deps.transformedRepo.EXPECT().GetByID(ctx, derived.ID).Return(derived, nil)
	deps.storage.EXPECT().PresignDownload(ctx, "transformed/x.png", access.DownloadURLTTL).Return("https://signed", nil)

	url, err := svc.DownloadURL(ctx, ownerID, derived.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://signed", url.URL)
	assert.Equal(t, access.DownloadURLTTL, url.ExpiresIn)
}

func TestService_Delete(t *testing.T) {
	ownerID := uuid.New()
	parent := entity.NewImage(ownerID, "images/p.png", "p.png", "u", "image/png", 1)
	derived := entity.NewTransformedImage(parent, "transformed/x.png", "u", "image/png", 1, nil)

	t.Run("removes row then blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		gomock.InOrder(
			deps.transformedRepo.EXPECT().GetByID(ctx, derived.ID).Return(derived, nil),
			deps.transformedRepo.EXPECT().Delete(ctx, derived.ID).Return(nil),
			deps.storage.EXPECT().Delete(ctx, "transformed/x.png").Return(nil),
		)

		require.NoError(t, svc.Delete(ctx, ownerID, derived.ID))
	})

	t.Run("blob failure is not reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.transformedRepo.EXPECT().GetByID(ctx, derived.ID).Return(derived, nil)
		deps.transformedRepo.EXPECT().Delete(ctx, derived.ID).Return(nil)
		deps.storage.EXPECT().Delete(ctx, gomock.Any()).Return(errors.New("s3 down"))

		assert.NoError(t, svc.Delete(ctx, ownerID, derived.ID))
	})

	t.Run("foreign owner deletes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deps := newMockService(ctrl)
		ctx := context.Background()

		deps.transformedRepo.EXPECT().GetByID(ctx, derived.ID).Return(derived, nil)

		err := svc.Delete(ctx, uuid.New(), derived.ID)

		assert.ErrorIs(t, err, domain.ErrTransformedImageNotFound)
	})
}

func TestService_DeleteAllForImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newMockService(ctrl)
	ctx := context.Background()

	ownerID := uuid.New()
	parent := entity.NewImage(ownerID, "images/p.png", "p.png", "u", "image/png", 1)
	first := entity.NewTransformedImage(parent, "transformed/1.png", "u", "image/png", 1, nil)
	second := entity.NewTransformedImage(parent, "transformed/2.png", "u", "image/png", 1, nil)

	deps.transformedRepo.EXPECT().DeleteByParentID(ctx, parent.ID).
		Return([]entity.TransformedImage{*first, *second}, nil)
	deps.storage.EXPECT().Delete(ctx, "transformed/1.png").Return(errors.New("transient"))
	deps.storage.EXPECT().Delete(ctx, "transformed/2.png").Return(nil)

	removed, err := svc.DeleteAllForImage(ctx, parent.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

// The tests below run the real engine against in-memory adapters.

type pipeline struct {
	svc         *transform.Service
	images      *memory.ImageRepo
	transformed *memory.TransformedImageRepo
	blobs       *blob.MemoryStorage
}

func newPipeline() *pipeline {
	images := memory.NewImageRepo()
	transformed := memory.NewTransformedImageRepo()
	blobs := blob.NewMemoryStorage("http://blobs.local")
	svc := transform.NewService(images, transformed, blobs, imageproc.NewProcessor(imageproc.DefaultJPEGQuality, 0),
		access.NewURLIssuer(blobs), zap.NewNop())
	return &pipeline{svc: svc, images: images, transformed: transformed, blobs: blobs}
}

func (p *pipeline) upload(t *testing.T, ownerID uuid.UUID, name string, w, h int) *entity.Image {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))

	ctx := context.Background()
	key := "images/" + ownerID.String() + "/" + name
	url, err := p.blobs.Put(ctx, key, buf.Bytes(), "image/jpeg")
	require.NoError(t, err)

	source := entity.NewImage(ownerID, key, name, url, "image/jpeg", int64(buf.Len()))
	require.NoError(t, p.images.Create(ctx, source))
	return source
}

func decodeBlob(t *testing.T, p *pipeline, key string) (image.Image, string) {
	t.Helper()
	data, err := p.blobs.Get(context.Background(), key)
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img, format
}

func TestPipeline_ResizeToPNG(t *testing.T) {
	p := newPipeline()
	ctx := context.Background()
	ownerID := uuid.New()
	source := p.upload(t, ownerID, "red.jpg", 100, 100)

	result, err := p.svc.TransformByID(ctx, transform.TransformInput{
		UserID:  ownerID,
		ImageID: source.ID,
		Options: valueobject.TransformationOptions{
			Resize: &valueobject.ResizeOptions{Width: valueobject.IntPtr(50), Height: valueobject.IntPtr(50)},
			Format: "png",
		},
	})

	require.NoError(t, err)
	derived := result.TransformedImage
	assert.Equal(t, source.ID, result.OriginalImageID)
	assert.Equal(t, "image/png", derived.ContentType)
	assert.True(t, strings.HasSuffix(derived.Filename(), "_red_transformed_resizew50h50.png"))

	img, format := decodeBlob(t, p, derived.StorageKey)
	assert.Equal(t, "png", format)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	stored, err := p.transformed.GetByID(ctx, derived.ID)
	require.NoError(t, err)
	assert.Equal(t, derived.StorageKey, stored.StorageKey)
}

func TestPipeline_Rotate90(t *testing.T) {
	p := newPipeline()
	ownerID := uuid.New()
	source := p.upload(t, ownerID, "wide.jpg", 200, 100)

	result, err := p.svc.TransformByID(context.Background(), transform.TransformInput{
		UserID:  ownerID,
		ImageID: source.ID,
		Options: valueobject.TransformationOptions{Rotate: valueobject.IntPtr(90)},
	})

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", result.TransformedImage.ContentType)
	assert.True(t, strings.HasSuffix(result.TransformedImage.Filename(), "_wide_transformed_rot90.jpg"))

	img, format := decodeBlob(t, p, result.TransformedImage.StorageKey)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestPipeline_RepeatedRequestsYieldDistinctArtifacts(t *testing.T) {
	p := newPipeline()
	ownerID := uuid.New()
	source := p.upload(t, ownerID, "cat.jpg", 20, 20)
	input := transform.TransformInput{UserID: ownerID, ImageID: source.ID, Options: grayscaleOptions()}

	first, err := p.svc.TransformByID(context.Background(), input)
	require.NoError(t, err)
	second, err := p.svc.TransformByID(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first.TransformedImage.StorageKey, second.TransformedImage.StorageKey)
	assert.Equal(t, 3, p.blobs.Len())
}

func TestPipeline_NonOwnerWritesNothing(t *testing.T) {
	p := newPipeline()
	ownerID := uuid.New()
	source := p.upload(t, ownerID, "cat.jpg", 20, 20)

	_, err := p.svc.Transform(context.Background(), source, grayscaleOptions(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Equal(t, 1, p.blobs.Len())
	list, err := p.transformed.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPipeline_CropOutOfBoundsWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		crop valueobject.CropOptions
	}{
		{"past the corner", valueobject.CropOptions{X: 90, Y: 90, Width: 20, Height: 20}},
		{"overflowing width", valueobject.CropOptions{X: 1, Y: 0, Width: math.MaxInt, Height: 10}},
		{"overflowing height", valueobject.CropOptions{X: 0, Y: 1, Width: 10, Height: math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPipeline()
			ownerID := uuid.New()
			source := p.upload(t, ownerID, "small.jpg", 100, 100)

			_, err := p.svc.Transform(context.Background(), source, valueobject.TransformationOptions{Crop: &tt.crop}, ownerID)

			assert.ErrorIs(t, err, domain.ErrInvalidOptions)
			assert.Equal(t, 1, p.blobs.Len())
			list, err := p.transformed.ListByOwner(context.Background(), ownerID)
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestPipeline_OversizedResizeWritesNothing(t *testing.T) {
	p := newPipeline()
	ownerID := uuid.New()
	source := p.upload(t, ownerID, "small.jpg", 20, 20)

	_, err := p.svc.Transform(context.Background(), source, valueobject.TransformationOptions{
		Resize: &valueobject.ResizeOptions{Width: valueobject.IntPtr(1 << 20), Height: valueobject.IntPtr(1 << 20)},
	}, ownerID)

	assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	assert.Equal(t, 1, p.blobs.Len())
}

func TestPipeline_DeleteAllForImage(t *testing.T) {
	p := newPipeline()
	ctx := context.Background()
	ownerID := uuid.New()
	source := p.upload(t, ownerID, "cat.jpg", 20, 20)

	for i := 0; i < 3; i++ {
		_, err := p.svc.Transform(ctx, source, grayscaleOptions(), ownerID)
		require.NoError(t, err)
	}
	require.Equal(t, 4, p.blobs.Len())

	removed, err := p.svc.DeleteAllForImage(ctx, source.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 1, p.blobs.Len())

	list, err := p.svc.ListForImage(ctx, ownerID, source.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
