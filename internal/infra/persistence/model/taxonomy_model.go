package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table, a self-referencing hierarchy.
type CategoryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ParentID     *uuid.UUID `gorm:"type:uuid;index"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Slug         string     `gorm:"type:varchar(120);unique;not null"`
	Description  string     `gorm:"type:text"`
	Icon         string     `gorm:"type:varchar(100)"`
	CategoryType string     `gorm:"type:varchar(20);not null;index"`
	OrderIndex   int        `gorm:"not null"`
	IsActive     bool       `gorm:"not null"`
	ItemCount    int64      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Children []CategoryModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string    `gorm:"type:varchar(50);unique;not null"`
	Slug       string    `gorm:"type:varchar(60);not null;index"`
	TagType    string    `gorm:"type:varchar(20);not null"`
	UsageCount int64     `gorm:"not null;index"`
	IsTrending bool      `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}
