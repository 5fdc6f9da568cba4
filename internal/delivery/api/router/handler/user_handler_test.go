package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	mockUsecase "petplace/internal/mocks/usecase"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Deactivate(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h := NewUserHandler(UserHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t)})
		e := newTestEcho()
		e.PUT("/api/users/deactivate", h.Deactivate)

		rec := doRequest(e, http.MethodPut, "/api/users/deactivate", `{"password":"Secret123"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("requires the password", func(t *testing.T) {
		h := NewUserHandler(UserHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t)})
		e := newTestEcho()
		e.Use(asUser(uuid.New()))
		e.PUT("/api/users/deactivate", h.Deactivate)

		rec := doRequest(e, http.MethodPut, "/api/users/deactivate", `{"reason":"bye"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "password: required")
	})

	t.Run("wrong password", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewUserHandler(UserHandlerParams{ProfileUC: profileUC})
		userID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(userID))
		e.PUT("/api/users/deactivate", h.Deactivate)

		profileUC.EXPECT().DeactivateAccount(mock.Anything, userID, &usecase.DeactivateInput{Password: "guess"}).
			Return(domainerrors.ErrPasswordMismatch)

		rec := doRequest(e, http.MethodPut, "/api/users/deactivate", `{"password":"guess"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_PASSWORD", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("deactivates", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewUserHandler(UserHandlerParams{ProfileUC: profileUC})
		userID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(userID))
		e.PUT("/api/users/deactivate", h.Deactivate)

		profileUC.EXPECT().DeactivateAccount(mock.Anything, userID, &usecase.DeactivateInput{
			Password: "Secret123",
			Reason:   "moving abroad",
		}).Return(nil)

		rec := doRequest(e, http.MethodPut, "/api/users/deactivate", `{"password":"Secret123","reason":"moving abroad"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Account deactivated successfully", decodeEnvelope(t, rec).Message)
	})
}

func TestUserHandler_Search(t *testing.T) {
	t.Run("returns a page of summaries", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewUserHandler(UserHandlerParams{ProfileUC: profileUC})
		e := newTestEcho()
		e.GET("/api/users/search", h.Search)

		found := &entity.OwnerSummary{ID: uuid.New(), Name: "Mina"}
		profileUC.EXPECT().SearchUsers(mock.Anything, &usecase.SearchUsersInput{Query: "mi", Page: 2, PerPage: 10}).
			Return(&usecase.UserPage{
				Users:      []*entity.OwnerSummary{found},
				Pagination: entity.Pagination{Page: 2, PerPage: 10, Total: 11, Pages: 2, HasPrev: true},
			}, nil)

		rec := doRequest(e, http.MethodGet, "/api/users/search?q=mi&page=2&per_page=10", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var page struct {
			Items      []*entity.OwnerSummary `json:"items"`
			Pagination entity.Pagination      `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, found.ID, page.Items[0].ID)
		assert.Equal(t, int64(11), page.Pagination.Total)
	})

	t.Run("short query", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewUserHandler(UserHandlerParams{ProfileUC: profileUC})
		e := newTestEcho()
		e.GET("/api/users/search", h.Search)

		profileUC.EXPECT().SearchUsers(mock.Anything, &usecase.SearchUsersInput{Query: "m"}).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("q must be at least 2 characters"))

		rec := doRequest(e, http.MethodGet, "/api/users/search?q=m", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})
}
