package handler

import (
	"log/slog"
	"net/http"

	"petplace/internal/delivery/api/response"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler serves image metadata.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// RegisterImageRequest describes an already stored file
type RegisterImageRequest struct {
	Filename          string     `json:"filename" validate:"required,max=255"`
	OriginalFilename  string     `json:"original_filename" validate:"max=255"`
	FilePath          string     `json:"file_path" validate:"required,max=500"`
	FileSize          int64      `json:"file_size" validate:"required,gt=0"`
	MimeType          string     `json:"mime_type" validate:"required"`
	Width             *int       `json:"width" validate:"omitempty,gt=0"`
	Height            *int       `json:"height" validate:"omitempty,gt=0"`
	ImageType         string     `json:"image_type"`
	RelatedEntityType string     `json:"related_entity_type"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id"`
	AltText           string     `json:"alt_text"`
	Caption           string     `json:"caption"`
}

// ListImagesQuery selects images by owning entity
type ListImagesQuery struct {
	EntityType string `query:"entity_type" validate:"required"`
	EntityID   string `query:"entity_id" validate:"required"`
}

// Register stores the metadata of an uploaded file.
func (h *ImageHandler) Register(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req RegisterImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, err := h.imageUC.Register(c.Request().Context(), userID, &usecase.RegisterImageInput{
		Filename:          req.Filename,
		OriginalFilename:  req.OriginalFilename,
		FilePath:          req.FilePath,
		FileSize:          req.FileSize,
		MimeType:          req.MimeType,
		Width:             req.Width,
		Height:            req.Height,
		ImageType:         entity.ImageType(req.ImageType),
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityID:   req.RelatedEntityID,
		AltText:           req.AltText,
		Caption:           req.Caption,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Image registered successfully")
}

// List returns the images attached to an entity.
func (h *ImageHandler) List(c echo.Context) error {
	var query ListImagesQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	entityID, err := uuid.Parse(query.EntityID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid entity_id")
	}

	images, err := h.imageUC.ListByEntity(c.Request().Context(), query.EntityType, entityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, images, "")
}

// Delete removes one of the caller's images.
func (h *ImageHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.imageUC.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}
