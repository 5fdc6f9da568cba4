package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BlogPostModel mirrors the 'blog_posts' table.
type BlogPostModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title             string     `gorm:"type:varchar(200);not null"`
	Slug              string     `gorm:"type:varchar(250);unique;not null"`
	Content           string     `gorm:"type:text;not null"`
	Excerpt           string     `gorm:"type:varchar(500)"`
	FeaturedImage     string     `gorm:"type:varchar(255)"`
	Category          string     `gorm:"type:varchar(50);not null;index"`
	Status            string     `gorm:"type:varchar(20);not null;index"`
	PublishedAt       *time.Time `gorm:"index"`
	ScheduledAt       *time.Time
	MetaTitle         string         `gorm:"type:varchar(200)"`
	MetaDescription   string         `gorm:"type:varchar(300)"`
	ViewCount         int64          `gorm:"not null"`
	LikeCount         int64          `gorm:"not null"`
	EstimatedReadTime int            `gorm:"not null"`
	RelatedPetTypes   pq.StringArray `gorm:"type:text[]"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Author         *UserModel           `gorm:"foreignKey:AuthorID"`
	Tags           []TagModel           `gorm:"many2many:blog_post_tags;constraint:OnDelete:CASCADE"`
	AffiliateLinks []AffiliateLinkModel `gorm:"foreignKey:BlogPostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}
