package model

import (
	"time"

	"github.com/google/uuid"
)

// ImageModel mirrors the 'images' table holding metadata of stored files.
type ImageModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UploaderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename          string    `gorm:"type:varchar(255);not null"`
	OriginalFilename  string    `gorm:"type:varchar(255)"`
	FilePath          string    `gorm:"type:varchar(500);not null"`
	FileSize          int64     `gorm:"not null"`
	MimeType          string    `gorm:"type:varchar(100);not null"`
	Width             *int
	Height            *int
	ImageType         string     `gorm:"type:varchar(20);not null"`
	RelatedEntityType string     `gorm:"type:varchar(50);index:idx_image_entity"`
	RelatedEntityID   *uuid.UUID `gorm:"type:uuid;index:idx_image_entity"`
	AltText           string     `gorm:"type:varchar(255)"`
	Caption           string     `gorm:"type:text"`
	CreatedAt         time.Time

	Uploader *UserModel `gorm:"foreignKey:UploaderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
