package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petplace/internal/delivery/api/response"
	"petplace/internal/domain/entity"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves review endpoints.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest is the body of review create and update. Omitted fields are left unchanged on update.
type ReviewRequest struct {
	BusinessID            uuid.UUID  `json:"business_id"`
	Rating                *int       `json:"rating" validate:"omitempty,min=1,max=5"`
	Title                 *string    `json:"title" validate:"omitempty,max=200"`
	Content               *string    `json:"content"`
	Images                []string   `json:"images"`
	PetType               *string    `json:"pet_type"`
	PetSize               *string    `json:"pet_size"`
	VisitedWithPet        *bool      `json:"visited_with_pet"`
	CleanlinessRating     *int       `json:"cleanliness_rating" validate:"omitempty,min=1,max=5"`
	ServiceRating         *int       `json:"service_rating" validate:"omitempty,min=1,max=5"`
	FacilitiesRating      *int       `json:"facilities_rating" validate:"omitempty,min=1,max=5"`
	PetFriendlinessRating *int       `json:"pet_friendliness_rating" validate:"omitempty,min=1,max=5"`
	Tags                  []string   `json:"tags"`
	VisitPurpose          *string    `json:"visit_purpose"`
	VisitDate             *time.Time `json:"visit_date"`
	Recommended           *bool      `json:"recommended"`
}

func (r *ReviewRequest) toInput() *usecase.ReviewInput {
	return &usecase.ReviewInput{
		BusinessID:            r.BusinessID,
		Rating:                r.Rating,
		Title:                 r.Title,
		Content:               r.Content,
		Images:                r.Images,
		PetType:               r.PetType,
		PetSize:               r.PetSize,
		VisitedWithPet:        r.VisitedWithPet,
		CleanlinessRating:     r.CleanlinessRating,
		ServiceRating:         r.ServiceRating,
		FacilitiesRating:      r.FacilitiesRating,
		PetFriendlinessRating: r.PetFriendlinessRating,
		Tags:                  r.Tags,
		VisitPurpose:          r.VisitPurpose,
		VisitDate:             r.VisitDate,
		Recommended:           r.Recommended,
	}
}

// ListReviewsQuery filters the review listing
type ListReviewsQuery struct {
	PageQuery
	BusinessID string `query:"business_id"`
	UserID     string `query:"user_id"`
	MinRating  int    `query:"min_rating" validate:"omitempty,min=1,max=5"`
	MaxRating  int    `query:"max_rating" validate:"omitempty,min=1,max=5"`
	Sort       string `query:"sort" validate:"omitempty,oneof=newest oldest rating_high rating_low"`
}

// ModerateReviewRequest is a review moderation decision
type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected reported"`
}

// List returns approved reviews matching the filters.
func (h *ReviewHandler) List(c echo.Context) error {
	var query ListReviewsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	businessID, err := optionalUUID(query.BusinessID, "business_id")
	if err != nil {
		return err
	}
	userID, err := optionalUUID(query.UserID, "user_id")
	if err != nil {
		return err
	}

	page, err := h.reviewUC.List(c.Request().Context(), &usecase.ListReviewsInput{
		BusinessID: businessID,
		UserID:     userID,
		MinRating:  query.MinRating,
		MaxRating:  query.MaxRating,
		Sort:       entity.ReviewSort(query.Sort),
		Page:       query.Page,
		PerPage:    query.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page.Reviews, page.Pagination)
}

// Create posts a review for a business. One review per user and business.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// Get returns one review.
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "")
}

// Update edits the caller's own review.
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Update(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// Delete removes the caller's own review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

// Helpful counts a helpful vote.
func (h *ReviewHandler) Helpful(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.MarkHelpful(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Marked as helpful")
}

// Moderate sets a review's status. Staff only.
func (h *ReviewHandler) Moderate(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ModerateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Moderate(c.Request().Context(), id, entity.ReviewStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review status updated")
}
