package handler

import (
	"log/slog"
	"net/http"

	"petplace/internal/delivery/api/middleware"
	"petplace/internal/delivery/api/response"
	"petplace/internal/domain/entity"
	"petplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	ReviewUC   usecase.ReviewUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves the business directory.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	reviewUC   usecase.ReviewUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		reviewUC:   params.ReviewUC,
		logger:     params.Logger,
	}
}

// BusinessRequest is the body of business create and update. Omitted fields are left unchanged on update.
type BusinessRequest struct {
	Name              *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string           `json:"description"`
	Category          *string           `json:"category"`
	Phone             *string           `json:"phone" validate:"omitempty,max=20"`
	Email             *string           `json:"email" validate:"omitempty,email"`
	Website           *string           `json:"website" validate:"omitempty,url"`
	Address           *string           `json:"address"`
	AddressDetail     *string           `json:"address_detail"`
	PostalCode        *string           `json:"postal_code" validate:"omitempty,max=10"`
	Latitude          *float64          `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude         *float64          `json:"longitude" validate:"omitempty,min=-180,max=180"`
	BusinessHours     map[string]string `json:"business_hours"`
	HolidayInfo       *string           `json:"holiday_info"`
	HasParking        *bool             `json:"has_parking"`
	HasWifi           *bool             `json:"has_wifi"`
	HasOutdoorSeating *bool             `json:"has_outdoor_seating"`
	PetAllowedTypes   []string          `json:"pet_allowed_types"`
	PetSizeLimit      *string           `json:"pet_size_limit"`
	PetFee            *float64          `json:"pet_fee" validate:"omitempty,min=0"`
	PetFacilities     []string          `json:"pet_facilities"`
	PetRules          *string           `json:"pet_rules"`
	MainImage         *string           `json:"main_image"`
	GalleryImages     []string          `json:"gallery_images"`
	SearchKeywords    []string          `json:"search_keywords"`
	MetaTitle         *string           `json:"meta_title"`
	MetaDescription   *string           `json:"meta_description"`
}

func (r *BusinessRequest) toInput() *usecase.BusinessInput {
	return &usecase.BusinessInput{
		Name:              r.Name,
		Description:       r.Description,
		Category:          r.Category,
		Phone:             r.Phone,
		Email:             r.Email,
		Website:           r.Website,
		Address:           r.Address,
		AddressDetail:     r.AddressDetail,
		PostalCode:        r.PostalCode,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		BusinessHours:     r.BusinessHours,
		HolidayInfo:       r.HolidayInfo,
		HasParking:        r.HasParking,
		HasWifi:           r.HasWifi,
		HasOutdoorSeating: r.HasOutdoorSeating,
		PetAllowedTypes:   r.PetAllowedTypes,
		PetSizeLimit:      r.PetSizeLimit,
		PetFee:            r.PetFee,
		PetFacilities:     r.PetFacilities,
		PetRules:          r.PetRules,
		MainImage:         r.MainImage,
		GalleryImages:     r.GalleryImages,
		SearchKeywords:    r.SearchKeywords,
		MetaTitle:         r.MetaTitle,
		MetaDescription:   r.MetaDescription,
	}
}

// ListBusinessesQuery filters the directory listing
type ListBusinessesQuery struct {
	PageQuery
	Category  string   `query:"category"`
	PetType   string   `query:"pet_type"`
	Search    string   `query:"search"`
	Status    string   `query:"status"`
	Featured  *bool    `query:"featured"`
	Latitude  *float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `query:"lng" validate:"omitempty,min=-180,max=180"`
	RadiusKm  float64  `query:"radius" validate:"omitempty,gt=0,max=100"`
}

// SearchQuery is a free-text directory search
type SearchQuery struct {
	PageQuery
	Query string `query:"q"`
}

// NearbyRequest is the body of POST /api/businesses/nearby. Both coordinates are required.
type NearbyRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	RadiusKm  float64  `json:"radius" validate:"omitempty,gt=0,max=100"`
	Category  string   `json:"category"`
	PetType   string   `json:"pet_type"`
	Limit     int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

// ChangeStatusRequest is a moderation decision
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected suspended"`
	Reason string `json:"reason" validate:"max=500"`
}

// BusinessReviewsQuery pages a business's reviews
type BusinessReviewsQuery struct {
	PageQuery
	Sort string `query:"sort" validate:"omitempty,oneof=newest oldest rating_high rating_low"`
}

// BusinessReviewsResponse is a page of reviews with the rating summary
type BusinessReviewsResponse struct {
	Items        []*entity.Review          `json:"items"`
	Pagination   entity.Pagination         `json:"pagination"`
	Distribution entity.RatingDistribution `json:"rating_distribution"`
	Average      float64                   `json:"average_rating"`
	Total        int                       `json:"total_reviews"`
}

// List returns a page of businesses. Only staff may list statuses other than approved.
func (h *BusinessHandler) List(c echo.Context) error {
	var query ListBusinessesQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	status := entity.BusinessStatus(query.Status)
	if !middleware.GetViewer(c).IsStaff() {
		status = entity.BusinessStatusApproved
	}

	page, err := h.businessUC.List(c.Request().Context(), &usecase.ListBusinessesInput{
		Category:  query.Category,
		PetType:   query.PetType,
		Search:    query.Search,
		Status:    status,
		Featured:  query.Featured,
		Latitude:  query.Latitude,
		Longitude: query.Longitude,
		RadiusKm:  query.RadiusKm,
		Page:      query.Page,
		PerPage:   query.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page.Businesses, page.Pagination)
}

// Get returns one business and counts the view.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.businessUC.Get(c.Request().Context(), middleware.GetViewer(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// Create registers a business owned by the caller. It starts pending review.
func (h *BusinessHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req BusinessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business registered and pending approval")
}

// Update edits a business. Owner or admin only.
func (h *BusinessHandler) Update(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req BusinessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.Update(c.Request().Context(), middleware.GetViewer(c), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// Delete soft-deletes a business. Owner or admin only.
func (h *BusinessHandler) Delete(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.businessUC.Delete(c.Request().Context(), middleware.GetViewer(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}

// Categories returns the configured categories with approved counts.
func (h *BusinessHandler) Categories(c echo.Context) error {
	categories, err := h.businessUC.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Featured returns featured businesses.
func (h *BusinessHandler) Featured(c echo.Context) error {
	var query LimitQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	businesses, err := h.businessUC.Featured(c.Request().Context(), query.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Search runs a free-text query over approved businesses.
func (h *BusinessHandler) Search(c echo.Context) error {
	var query SearchQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.businessUC.Search(c.Request().Context(), query.Query, query.Page, query.PerPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page.Businesses, page.Pagination)
}

// Nearby returns approved businesses within a radius, closest first.
func (h *BusinessHandler) Nearby(c echo.Context) error {
	var req NearbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	businesses, err := h.businessUC.Nearby(c.Request().Context(), &entity.NearbyQuery{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		RadiusKm:  req.RadiusKm,
		Category:  req.Category,
		PetType:   req.PetType,
		Limit:     req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Reviews returns a business's approved reviews with its rating distribution.
func (h *BusinessHandler) Reviews(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var query BusinessReviewsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	result, err := h.reviewUC.ListForBusiness(c.Request().Context(), id, entity.ReviewSort(query.Sort), query.Page, query.PerPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &BusinessReviewsResponse{
		Items:        result.Reviews,
		Pagination:   result.Pagination,
		Distribution: result.Distribution,
		Average:      result.Average,
		Total:        result.Total,
	}, "")
}

// ChangeStatus applies a moderation decision. Staff only.
func (h *BusinessHandler) ChangeStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.ChangeStatus(c.Request().Context(), id, &usecase.ChangeStatusInput{
		Status: entity.BusinessStatus(req.Status),
		Reason: req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business status updated")
}
