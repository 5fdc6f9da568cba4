package usecase

import (
	"context"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterImageInput is the metadata of an already stored file.
type RegisterImageInput struct {
	Filename          string
	OriginalFilename  string
	FilePath          string
	FileSize          int64
	MimeType          string
	Width             *int
	Height            *int
	ImageType         entity.ImageType
	RelatedEntityType string
	RelatedEntityID   *uuid.UUID
	AltText           string
	Caption           string
}

// ImageUsecase defines image metadata operations.
type ImageUsecase interface {
	Register(ctx context.Context, uploaderID uuid.UUID, input *RegisterImageInput) (*entity.Image, error)
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.Image, error)
	Delete(ctx context.Context, uploaderID, id uuid.UUID) error
}
