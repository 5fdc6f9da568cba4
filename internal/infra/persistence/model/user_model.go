package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                  string         `gorm:"type:varchar(255);unique;not null"`
	Name                   string         `gorm:"type:varchar(100);not null"`
	Nickname               *string        `gorm:"type:varchar(50);unique"`
	Phone                  string         `gorm:"type:varchar(20)"`
	ProfileImage           string         `gorm:"type:varchar(255)"`
	Bio                    string         `gorm:"type:text"`
	Role                   string         `gorm:"type:varchar(20);not null;index"`
	IsActive               bool           `gorm:"not null"`
	IsVerified             bool           `gorm:"not null"`
	IsPremium              bool           `gorm:"not null"`
	PetTypes               pq.StringArray `gorm:"type:text[]"`
	Address                string         `gorm:"type:varchar(255)"`
	Latitude               *float64
	Longitude              *float64
	EmailNotifications     bool `gorm:"not null"`
	PushNotifications      bool `gorm:"not null"`
	MarketingNotifications bool `gorm:"not null"`
	LastLoginAt            *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Devices         []UserDeviceModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Businesses      []BusinessModel       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Reviews         []ReviewModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BlogPosts       []BlogPostModel       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Notifications   []NotificationModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
