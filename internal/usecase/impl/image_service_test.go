package impl

import (
	"context"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	mockRepo "petplace/internal/mocks/repository"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestImageService(t *testing.T) (usecase.ImageUsecase, *mockRepo.MockImageRepository) {
	imageRepo := mockRepo.NewMockImageRepository(t)

	srv := NewImageService(ImageServiceParams{
		ImageRepo: imageRepo,
		Config:    testConfig(),
		Logger:    discardLogger(),
	})
	srv.(*imageService).now = fixedClock

	return srv, imageRepo
}

func TestImageService_Register(t *testing.T) {
	srv, imageRepo := createTestImageService(t)

	ctx := context.Background()
	uploaderID := uuid.New()
	imageRepo.EXPECT().Create(ctx, mock.MatchedBy(func(img *entity.Image) bool {
		return img.UploaderID == uploaderID && img.MimeType == "image/png" && img.ImageType == entity.ImageTypeOther
	})).Return(nil)

	image, err := srv.Register(ctx, uploaderID, &usecase.RegisterImageInput{
		Filename: "a.png",
		FilePath: "/uploads/a.png",
		FileSize: 2048,
		MimeType: "IMAGE/PNG",
	})

	require.NoError(t, err)
	assert.Equal(t, fixedNow, image.CreatedAt)
}

func TestImageService_Register_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterImageInput
		want  *domainerrors.BaseError
	}{
		{
			name:  "unsupported type",
			input: &usecase.RegisterImageInput{Filename: "a.gif", FilePath: "/a.gif", FileSize: 10, MimeType: "image/gif"},
			want:  domainerrors.ErrUnsupportedMediaType,
		},
		{
			name:  "too large",
			input: &usecase.RegisterImageInput{Filename: "a.jpg", FilePath: "/a.jpg", FileSize: 2 << 20, MimeType: "image/jpeg"},
			want:  domainerrors.ErrFileTooLarge,
		},
		{
			name:  "missing path",
			input: &usecase.RegisterImageInput{Filename: "a.jpg", FileSize: 10, MimeType: "image/jpeg"},
			want:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := createTestImageService(t)

			_, err := srv.Register(context.Background(), uuid.New(), tt.input)

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestImageService_Register_TooLargeDetails(t *testing.T) {
	srv, _ := createTestImageService(t)

	_, err := srv.Register(context.Background(), uuid.New(), &usecase.RegisterImageInput{
		Filename: "a.jpg", FilePath: "/a.jpg", FileSize: 2 << 20, MimeType: "image/jpeg",
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "2.0 MiB exceeds 1.0 MiB", appErr.Details())
}

func TestImageService_Delete(t *testing.T) {
	uploaderID := uuid.New()

	t.Run("uploader deletes", func(t *testing.T) {
		srv, imageRepo := createTestImageService(t)
		ctx := context.Background()
		id := uuid.New()
		imageRepo.EXPECT().FindByID(ctx, id).Return(&entity.Image{ID: id, UploaderID: uploaderID}, nil)
		imageRepo.EXPECT().Delete(ctx, id).Return(nil)

		require.NoError(t, srv.Delete(ctx, uploaderID, id))
	})

	t.Run("someone else's image is not found", func(t *testing.T) {
		srv, imageRepo := createTestImageService(t)
		ctx := context.Background()
		id := uuid.New()
		imageRepo.EXPECT().FindByID(ctx, id).Return(&entity.Image{ID: id, UploaderID: uuid.New()}, nil)

		assert.True(t, errors.Is(srv.Delete(ctx, uploaderID, id), domainerrors.ErrImageNotFound))
	})

	t.Run("missing", func(t *testing.T) {
		srv, imageRepo := createTestImageService(t)
		ctx := context.Background()
		id := uuid.New()
		imageRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrImageNotFound)

		assert.True(t, errors.Is(srv.Delete(ctx, uploaderID, id), domainerrors.ErrImageNotFound))
	})
}

func TestImageService_ListByEntity(t *testing.T) {
	srv, imageRepo := createTestImageService(t)

	ctx := context.Background()
	entityID := uuid.New()
	imageRepo.EXPECT().ListByEntity(ctx, "business", entityID).Return(nil, nil)

	images, err := srv.ListByEntity(ctx, "business", entityID)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Image{}, images)
}
