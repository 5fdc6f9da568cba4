package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImageType classifies what an image depicts.
type ImageType string

const (
	ImageTypeProfile  ImageType = "profile"
	ImageTypeBusiness ImageType = "business"
	ImageTypeReview   ImageType = "review"
	ImageTypeBlog     ImageType = "blog"
	ImageTypeProduct  ImageType = "product"
	ImageTypeOther    ImageType = "other"
)

// IsValid checks if the image type is a known value.
func (t ImageType) IsValid() bool {
	switch t {
	case ImageTypeProfile, ImageTypeBusiness, ImageTypeReview, ImageTypeBlog, ImageTypeProduct, ImageTypeOther:
		return true
	default:
		return false
	}
}

// Image is the metadata of an already stored file.
type Image struct {
	ID                uuid.UUID  `json:"id"`
	UploaderID        uuid.UUID  `json:"uploader_id"`
	Filename          string     `json:"filename"`
	OriginalFilename  string     `json:"original_filename,omitempty"`
	FilePath          string     `json:"file_path"`
	FileSize          int64      `json:"file_size"`
	MimeType          string     `json:"mime_type"`
	Width             *int       `json:"width,omitempty"`
	Height            *int       `json:"height,omitempty"`
	ImageType         ImageType  `json:"image_type"`
	RelatedEntityType string     `json:"related_entity_type,omitempty"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty"`
	AltText           string     `json:"alt_text,omitempty"`
	Caption           string     `json:"caption,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
