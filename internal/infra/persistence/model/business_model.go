package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID           uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name              string            `gorm:"type:varchar(200);not null;index"`
	Description       string            `gorm:"type:text"`
	Category          string            `gorm:"type:varchar(50);not null;index:idx_business_category_status"`
	Phone             string            `gorm:"type:varchar(20)"`
	Email             string            `gorm:"type:varchar(120)"`
	Website           string            `gorm:"type:varchar(255)"`
	Address           string            `gorm:"type:varchar(255);not null"`
	AddressDetail     string            `gorm:"type:varchar(255)"`
	PostalCode        string            `gorm:"type:varchar(10)"`
	Latitude          float64           `gorm:"not null;index:idx_business_location"`
	Longitude         float64           `gorm:"not null;index:idx_business_location"`
	BusinessHours     datatypes.JSONMap `gorm:"type:jsonb"`
	HolidayInfo       string            `gorm:"type:text"`
	HasParking        bool              `gorm:"not null"`
	HasWifi           bool              `gorm:"not null"`
	HasOutdoorSeating bool              `gorm:"not null"`
	PetAllowedTypes   pq.StringArray    `gorm:"type:text[]"`
	PetSizeLimit      string            `gorm:"type:varchar(20)"`
	PetFee            *float64
	PetFacilities     pq.StringArray `gorm:"type:text[]"`
	PetRules          string         `gorm:"type:text"`
	MainImage         string         `gorm:"type:varchar(255)"`
	GalleryImages     pq.StringArray `gorm:"type:text[]"`
	IsPremium         bool           `gorm:"not null"`
	IsFeatured        bool           `gorm:"not null;index"`
	ViewCount         int64          `gorm:"not null"`
	FavoriteCount     int64          `gorm:"not null"`
	ReviewCount       int            `gorm:"not null"`
	AverageRating     float64        `gorm:"not null;index"`
	Status            string         `gorm:"type:varchar(20);not null;index:idx_business_category_status"`
	SearchKeywords    pq.StringArray `gorm:"type:text[]"`
	MetaTitle         string         `gorm:"type:varchar(200)"`
	MetaDescription   string         `gorm:"type:varchar(300)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ApprovedAt        *time.Time

	Owner   *UserModel    `gorm:"foreignKey:OwnerID"`
	Reviews []ReviewModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
