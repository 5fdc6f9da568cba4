package postgres

import (
	"context"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// imageRepository implements the repository.ImageRepository interface.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{
		db: db,
	}
}

// Create persists image metadata.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.db.WithContext(ctx).Omit("Uploader").Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid uploader reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// FindByID retrieves image metadata by its ID.
func (repo *imageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	var imageM model.ImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by id")
	}

	return toImageDomain(&imageM), nil
}

// ListByEntity returns the images attached to an entity, oldest first.
func (repo *imageRepository) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.Image, error) {
	var imageModels []*model.ImageModel

	if err := repo.db.WithContext(ctx).
		Where("related_entity_type = ? AND related_entity_id = ?", entityType, entityID).
		Order("created_at ASC").
		Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list images")
	}

	images := make([]*entity.Image, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toImageDomain(imageM))
	}

	return images, nil
}

// Delete removes image metadata.
func (repo *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ImageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:                data.ID,
		UploaderID:        data.UploaderID,
		Filename:          data.Filename,
		OriginalFilename:  data.OriginalFilename,
		FilePath:          data.FilePath,
		FileSize:          data.FileSize,
		MimeType:          data.MimeType,
		Width:             data.Width,
		Height:            data.Height,
		ImageType:         entity.ImageType(data.ImageType),
		RelatedEntityType: data.RelatedEntityType,
		RelatedEntityID:   data.RelatedEntityID,
		AltText:           data.AltText,
		Caption:           data.Caption,
		CreatedAt:         data.CreatedAt,
	}
}

func fromImageDomain(data *entity.Image) *model.ImageModel {
	if data == nil {
		return nil
	}

	return &model.ImageModel{
		ID:                data.ID,
		UploaderID:        data.UploaderID,
		Filename:          data.Filename,
		OriginalFilename:  data.OriginalFilename,
		FilePath:          data.FilePath,
		FileSize:          data.FileSize,
		MimeType:          data.MimeType,
		Width:             data.Width,
		Height:            data.Height,
		ImageType:         string(data.ImageType),
		RelatedEntityType: data.RelatedEntityType,
		RelatedEntityID:   data.RelatedEntityID,
		AltText:           data.AltText,
		Caption:           data.Caption,
		CreatedAt:         data.CreatedAt,
	}
}
