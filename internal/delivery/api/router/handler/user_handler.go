package handler

import (
	"log/slog"
	"net/http"

	"petplace/internal/delivery/api/response"
	"petplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	ReviewUC  usecase.ReviewUsecase
	Logger    *slog.Logger
}

// UserHandler serves profile and dashboard endpoints.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
		reviewUC:  params.ReviewUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is the body of PUT /api/users/me. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name                   *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Nickname               *string  `json:"nickname" validate:"omitempty,max=50"`
	Phone                  *string  `json:"phone" validate:"omitempty,max=20"`
	ProfileImage           *string  `json:"profile_image"`
	Bio                    *string  `json:"bio" validate:"omitempty,max=1000"`
	PetTypes               []string `json:"pet_types"`
	Address                *string  `json:"address"`
	Latitude               *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude              *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	EmailNotifications     *bool    `json:"email_notifications"`
	PushNotifications      *bool    `json:"push_notifications"`
	MarketingNotifications *bool    `json:"marketing_notifications"`
}

// DeactivateRequest is the body of PUT /api/users/deactivate.
type DeactivateRequest struct {
	Password string `json:"password" validate:"required"`
	Reason   string `json:"reason" validate:"max=500"`
}

// PublicProfile returns another user's public profile.
func (h *UserHandler) PublicProfile(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetPublicProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateMe edits the caller's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:                   req.Name,
		Nickname:               req.Nickname,
		Phone:                  req.Phone,
		ProfileImage:           req.ProfileImage,
		Bio:                    req.Bio,
		PetTypes:               req.PetTypes,
		Address:                req.Address,
		Latitude:               req.Latitude,
		Longitude:              req.Longitude,
		EmailNotifications:     req.EmailNotifications,
		PushNotifications:      req.PushNotifications,
		MarketingNotifications: req.MarketingNotifications,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// Dashboard returns the caller's content summary.
func (h *UserHandler) Dashboard(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	dashboard, err := h.profileUC.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// Reviews lists the reviews written by a user.
func (h *UserHandler) Reviews(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var query PageQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.reviewUC.ListForUser(c.Request().Context(), userID, query.Page, query.PerPage)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page.Reviews, page.Pagination)
}

// Deactivate switches off the caller's account after confirming the password.
func (h *UserHandler) Deactivate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req DeactivateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.profileUC.DeactivateAccount(c.Request().Context(), userID, &usecase.DeactivateInput{
		Password: req.Password,
		Reason:   req.Reason,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deactivated successfully")
}

// Search finds active users by name or nickname.
func (h *UserHandler) Search(c echo.Context) error {
	var query SearchQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.profileUC.SearchUsers(c.Request().Context(), &usecase.SearchUsersInput{
		Query:   query.Query,
		Page:    query.Page,
		PerPage: query.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page.Users, page.Pagination)
}
