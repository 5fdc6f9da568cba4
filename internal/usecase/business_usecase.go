package usecase

import (
	"context"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Viewer identifies the caller of a read that depends on ownership. A zero UserID is anonymous.
type Viewer struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsStaff reports whether the viewer may moderate content.
func (v Viewer) IsStaff() bool {
	return v.Roles.HasStaff()
}

// IsAdmin reports whether the viewer is an administrator.
func (v Viewer) IsAdmin() bool {
	return v.Roles.Contains(entity.RoleAdmin)
}

// BusinessInput holds the fields of a business listing. On update, nil fields are left unchanged.
type BusinessInput struct {
	Name              *string
	Description       *string
	Category          *string
	Phone             *string
	Email             *string
	Website           *string
	Address           *string
	AddressDetail     *string
	PostalCode        *string
	Latitude          *float64
	Longitude         *float64
	BusinessHours     map[string]string
	HolidayInfo       *string
	HasParking        *bool
	HasWifi           *bool
	HasOutdoorSeating *bool
	PetAllowedTypes   []string
	PetSizeLimit      *string
	PetFee            *float64
	PetFacilities     []string
	PetRules          *string
	MainImage         *string
	GalleryImages     []string
	SearchKeywords    []string
	MetaTitle         *string
	MetaDescription   *string
}

// ListBusinessesInput narrows a business listing. A set Latitude and Longitude adds a radius filter.
type ListBusinessesInput struct {
	Category  string
	PetType   string
	Search    string
	Status    entity.BusinessStatus
	Featured  *bool
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Page      int
	PerPage   int
}

// BusinessPage is one page of businesses.
type BusinessPage struct {
	Businesses []*entity.Business
	Pagination entity.Pagination
}

// ChangeStatusInput is a moderation decision.
type ChangeStatusInput struct {
	Status entity.BusinessStatus
	Reason string
}

// BusinessUsecase defines the business directory operations.
type BusinessUsecase interface {
	List(ctx context.Context, input *ListBusinessesInput) (*BusinessPage, error)
	Get(ctx context.Context, viewer Viewer, id uuid.UUID) (*entity.Business, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *BusinessInput) (*entity.Business, error)
	Update(ctx context.Context, viewer Viewer, id uuid.UUID, input *BusinessInput) (*entity.Business, error)
	Delete(ctx context.Context, viewer Viewer, id uuid.UUID) error
	Categories(ctx context.Context) ([]*entity.CategoryCount, error)
	Featured(ctx context.Context, limit int) ([]*entity.Business, error)
	Search(ctx context.Context, query string, page, perPage int) (*BusinessPage, error)
	Nearby(ctx context.Context, query *entity.NearbyQuery) ([]*entity.Business, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, input *ChangeStatusInput) (*entity.Business, error)
}
