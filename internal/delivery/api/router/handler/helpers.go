package handler

import (
	"time"

	"petplace/internal/delivery/api/middleware"
	domainerrors "petplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PageQuery is the pagination part of list requests
type PageQuery struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// LimitQuery caps short listings
type LimitQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1"`
}

// currentUser returns the authenticated caller or ErrUnauthorized.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate binds path, query and body values into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// optionalUUID parses a UUID query value; an empty value yields nil.
func optionalUUID(value, name string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return &id, nil
}

// optionalDate parses a YYYY-MM-DD query value; an empty value yields nil.
func optionalDate(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be YYYY-MM-DD")
	}

	return &day, nil
}
