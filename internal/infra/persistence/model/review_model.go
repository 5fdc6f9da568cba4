package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReviewModel mirrors the 'reviews' table. A user reviews a business at most once.
type ReviewModel struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_business"`
	BusinessID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_business;index:idx_review_business_status"`
	Rating                int            `gorm:"not null;check:chk_review_rating,rating BETWEEN 1 AND 5"`
	Title                 string         `gorm:"type:varchar(200)"`
	Content               string         `gorm:"type:text;not null"`
	Images                pq.StringArray `gorm:"type:text[]"`
	PetType               string         `gorm:"type:varchar(50)"`
	PetSize               string         `gorm:"type:varchar(20)"`
	VisitedWithPet        bool           `gorm:"not null"`
	CleanlinessRating     *int
	ServiceRating         *int
	FacilitiesRating      *int
	PetFriendlinessRating *int
	Tags                  pq.StringArray `gorm:"type:text[]"`
	VisitPurpose          string         `gorm:"type:varchar(50)"`
	VisitDate             *time.Time
	Recommended           *bool
	Status                string `gorm:"type:varchar(20);not null;index:idx_review_business_status"`
	HelpfulCount          int64  `gorm:"not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	User     *UserModel     `gorm:"foreignKey:UserID"`
	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
