package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"petplace/config"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageService implements the ImageUsecase interface.
type imageService struct {
	imageRepo   repository.ImageRepository
	maxSize     int64
	allowedMIME []string
	now         clock
	logger      *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ImageRepo repository.ImageRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	srv := &imageService{
		imageRepo:   params.ImageRepo,
		maxSize:     16 << 20,
		allowedMIME: []string{"image/png", "image/jpeg", "image/gif", "image/webp"},
		now:         utcNow,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Upload != nil {
		if params.Config.Upload.MaxSizeBytes > 0 {
			srv.maxSize = params.Config.Upload.MaxSizeBytes
		}
		if len(params.Config.Upload.AllowedMIME) > 0 {
			srv.allowedMIME = params.Config.Upload.AllowedMIME
		}
	}

	return srv
}

// Register stores the metadata of an uploaded file after checking its type and size.
func (srv *imageService) Register(ctx context.Context, uploaderID uuid.UUID, input *usecase.RegisterImageInput) (*entity.Image, error) {
	if input.FilePath == "" || input.Filename == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("filename and file_path are required")
	}

	mimeType := strings.ToLower(strings.TrimSpace(input.MimeType))
	if !slices.Contains(srv.allowedMIME, mimeType) {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails(mimeType)
	}
	if input.FileSize <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file_size must be positive")
	}
	if input.FileSize > srv.maxSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(
			humanize.IBytes(uint64(input.FileSize)) + " exceeds " + humanize.IBytes(uint64(srv.maxSize)),
		)
	}

	imageType := input.ImageType
	if imageType == "" {
		imageType = entity.ImageTypeOther
	}
	if !imageType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown image type " + string(imageType))
	}

	image := &entity.Image{
		UploaderID:        uploaderID,
		Filename:          input.Filename,
		OriginalFilename:  input.OriginalFilename,
		FilePath:          input.FilePath,
		FileSize:          input.FileSize,
		MimeType:          mimeType,
		Width:             input.Width,
		Height:            input.Height,
		ImageType:         imageType,
		RelatedEntityType: input.RelatedEntityType,
		RelatedEntityID:   input.RelatedEntityID,
		AltText:           input.AltText,
		Caption:           input.Caption,
		CreatedAt:         srv.now(),
	}
	if err := srv.imageRepo.Create(ctx, image); err != nil {
		return nil, errors.Wrap(err, "failed to register image")
	}

	return image, nil
}

// ListByEntity returns the images attached to an entity.
func (srv *imageService) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.Image, error) {
	if entityType == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("entity_type is required")
	}

	images, err := srv.imageRepo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	return nonNil(images), nil
}

// Delete removes metadata registered by the caller. Other uploaders' images are reported as missing.
func (srv *imageService) Delete(ctx context.Context, uploaderID, id uuid.UUID) error {
	image, err := srv.imageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return domainerrors.ErrImageNotFound
		}

		return errors.Wrap(err, "failed to find image")
	}
	if image.UploaderID != uploaderID {
		return domainerrors.ErrImageNotFound
	}

	if err := srv.imageRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}
	logFrom(ctx, srv.logger).Info("Image deleted", slog.Any("imageID", id))

	return nil
}
