package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Business is a pet-friendly place listed in the directory. Coordinates are WGS84 degrees.
// ReviewCount and AverageRating are derived from approved reviews only. DistanceKm is set
// by proximity queries.
type Business struct {
	ID                uuid.UUID         `json:"id"`
	OwnerID           uuid.UUID         `json:"owner_id"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Category          string            `json:"category"`
	Phone             string            `json:"phone,omitempty"`
	Email             string            `json:"email,omitempty"`
	Website           string            `json:"website,omitempty"`
	Address           string            `json:"address"`
	AddressDetail     string            `json:"address_detail,omitempty"`
	PostalCode        string            `json:"postal_code,omitempty"`
	Latitude          float64           `json:"latitude"`
	Longitude         float64           `json:"longitude"`
	BusinessHours     map[string]string `json:"business_hours,omitempty"`
	HolidayInfo       string            `json:"holiday_info,omitempty"`
	HasParking        bool              `json:"has_parking"`
	HasWifi           bool              `json:"has_wifi"`
	HasOutdoorSeating bool              `json:"has_outdoor_seating"`
	PetAllowedTypes   []string          `json:"pet_allowed_types"`
	PetSizeLimit      string            `json:"pet_size_limit,omitempty"`
	PetFee            *float64          `json:"pet_fee,omitempty"`
	PetFacilities     []string          `json:"pet_facilities"`
	PetRules          string            `json:"pet_rules,omitempty"`
	MainImage         string            `json:"main_image,omitempty"`
	GalleryImages     []string          `json:"gallery_images"`
	IsPremium         bool              `json:"is_premium"`
	IsFeatured        bool              `json:"is_featured"`
	ViewCount         int64             `json:"view_count"`
	FavoriteCount     int64             `json:"favorite_count"`
	ReviewCount       int               `json:"review_count"`
	AverageRating     float64           `json:"average_rating"`
	Status            BusinessStatus    `json:"status"`
	SearchKeywords    []string          `json:"search_keywords"`
	MetaTitle         string            `json:"meta_title,omitempty"`
	MetaDescription   string            `json:"meta_description,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	ApprovedAt        *time.Time        `json:"approved_at,omitempty"`
	Owner             *OwnerSummary     `json:"owner,omitempty"`
	DistanceKm        *float64          `json:"distance,omitempty"`
}

// AllowsPet reports whether the listing accepts the given pet type.
func (b *Business) AllowsPet(petType string) bool {
	return slices.Contains(b.PetAllowedTypes, petType)
}

// IsVisibleTo reports whether a viewer may read a listing regardless of its status.
func (b *Business) IsVisibleTo(viewerID uuid.UUID, staff bool) bool {
	return b.Status == BusinessStatusApproved || staff || (viewerID != uuid.Nil && viewerID == b.OwnerID)
}

// ImportantFieldsChanged reports whether an edit touched a field that requires re-review.
func ImportantFieldsChanged(before, after *Business) bool {
	return before.Name != after.Name ||
		before.Address != after.Address ||
		before.Category != after.Category ||
		before.Latitude != after.Latitude ||
		before.Longitude != after.Longitude
}

// CategoryCount is the number of approved businesses in a category.
type CategoryCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// NearbyQuery describes a proximity search.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Category  string
	PetType   string
	Limit     int
}

// BusinessFilter narrows a business listing.
type BusinessFilter struct {
	Category string
	PetType  string
	Search   string
	Status   BusinessStatus
	Featured *bool
	OwnerID  *uuid.UUID
	Bounds   *GeoBounds
}

// GeoBounds is a latitude/longitude rectangle used as a SQL prefilter.
type GeoBounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// NewGeoBounds converts an orb bound, whose points are lng/lat, into GeoBounds.
func NewGeoBounds(b orb.Bound) GeoBounds {
	return GeoBounds{
		MinLat: b.Min.Lat(),
		MaxLat: b.Max.Lat(),
		MinLng: b.Min.Lon(),
		MaxLng: b.Max.Lon(),
	}
}
