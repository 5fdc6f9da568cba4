package model

import (
	"time"

	"github.com/google/uuid"
)

// AffiliateLinkModel mirrors the 'affiliate_links' table. Counters are only changed by atomic updates.
type AffiliateLinkModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BlogPostID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName        string    `gorm:"type:varchar(300);not null"`
	ProductDescription string    `gorm:"type:text"`
	ProductImage       string    `gorm:"type:varchar(255)"`
	ProductPrice       *int64
	ProductCategory    string  `gorm:"type:varchar(100)"`
	Partner            string  `gorm:"type:varchar(30);not null;index:idx_affiliate_partner_active"`
	PartnerProductID   string  `gorm:"type:varchar(100)"`
	OriginalURL        string  `gorm:"type:varchar(500);not null"`
	AffiliateURL       string  `gorm:"type:varchar(500);not null"`
	ShortURL           string  `gorm:"type:varchar(100)"`
	CommissionRate     float64 `gorm:"not null"`
	CommissionType     string  `gorm:"type:varchar(20);not null"`
	ClickCount         int64   `gorm:"not null"`
	ConversionCount    int64   `gorm:"not null"`
	TotalRevenue       float64 `gorm:"not null;index"`
	LastClickAt        *time.Time
	LastConversionAt   *time.Time
	IsActive           bool `gorm:"not null;index:idx_affiliate_partner_active"`
	IsFeatured         bool `gorm:"not null"`
	Priority           int  `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ExpiresAt          *time.Time

	Clicks      []AffiliateClickModel      `gorm:"foreignKey:AffiliateLinkID;constraint:OnDelete:CASCADE"`
	Conversions []AffiliateConversionModel `gorm:"foreignKey:AffiliateLinkID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AffiliateLinkModel) TableName() string {
	return "affiliate_links"
}

// AffiliateClickModel mirrors the append-only 'affiliate_link_clicks' table.
type AffiliateClickModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AffiliateLinkID uuid.UUID  `gorm:"type:uuid;not null;index:idx_click_link_date"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	IPAddress       string     `gorm:"type:varchar(45)"`
	UserAgent       string     `gorm:"type:varchar(500)"`
	Referrer        string     `gorm:"type:varchar(500)"`
	DeviceType      string     `gorm:"type:varchar(50)"`
	CreatedAt       time.Time  `gorm:"index:idx_click_link_date"`
}

// TableName explicitly sets the table name for GORM.
func (AffiliateClickModel) TableName() string {
	return "affiliate_link_clicks"
}

// AffiliateConversionModel mirrors the append-only 'affiliate_link_conversions' table.
type AffiliateConversionModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AffiliateLinkID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_conversion_link_date"`
	UserID           *uuid.UUID `gorm:"type:uuid"`
	OrderID          string     `gorm:"type:varchar(100)"`
	OrderAmount      *float64
	CommissionEarned float64   `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt        time.Time `gorm:"index:idx_conversion_link_date"`
}

// TableName explicitly sets the table name for GORM.
func (AffiliateConversionModel) TableName() string {
	return "affiliate_link_conversions"
}
