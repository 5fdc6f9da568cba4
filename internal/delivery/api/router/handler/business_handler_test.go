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

func newBusinessHandler(t *testing.T) (*BusinessHandler, *mockUsecase.MockBusinessUsecase, *mockUsecase.MockReviewUsecase) {
	businessUC := mockUsecase.NewMockBusinessUsecase(t)
	reviewUC := mockUsecase.NewMockReviewUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, ReviewUC: reviewUC}), businessUC, reviewUC
}

func TestBusinessHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		roles      []entity.Role
		query      string
		wantStatus entity.BusinessStatus
	}{
		{name: "anonymous caller sees approved only", query: "?status=pending", wantStatus: entity.BusinessStatusApproved},
		{name: "regular user cannot widen status", roles: []entity.Role{entity.RoleUser}, query: "?status=rejected", wantStatus: entity.BusinessStatusApproved},
		{name: "moderator may filter by status", roles: []entity.Role{entity.RoleModerator}, query: "?status=pending", wantStatus: entity.BusinessStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, businessUC, _ := newBusinessHandler(t)
			e := newTestEcho()
			if tt.roles != nil {
				e.Use(asUser(uuid.New(), tt.roles...))
			}
			e.GET("/api/businesses", h.List)

			businessUC.EXPECT().List(mock.Anything, mock.MatchedBy(func(input *usecase.ListBusinessesInput) bool {
				return input.Status == tt.wantStatus && input.Page == 2 && input.Category == "park"
			})).Return(&usecase.BusinessPage{
				Businesses: []*entity.Business{{Name: "Dog Park"}},
				Pagination: entity.Pagination{Page: 2, PerPage: 20, Total: 21, Pages: 2, HasPrev: true},
			}, nil)

			rec := doRequest(e, http.MethodGet, "/api/businesses"+tt.query+"&category=park&page=2", "")

			require.Equal(t, http.StatusOK, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.True(t, env.Success)

			var page struct {
				Items      []*entity.Business `json:"items"`
				Pagination entity.Pagination  `json:"pagination"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &page))
			assert.Len(t, page.Items, 1)
			assert.Equal(t, int64(21), page.Pagination.Total)
		})
	}
}

func TestBusinessHandler_List_GeoQuery(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	e := newTestEcho()
	e.GET("/api/businesses", h.List)

	businessUC.EXPECT().List(mock.Anything, mock.MatchedBy(func(input *usecase.ListBusinessesInput) bool {
		return input.Latitude != nil && *input.Latitude == 37.5 &&
			input.Longitude != nil && *input.Longitude == 127.0 &&
			input.RadiusKm == 5
	})).Return(&usecase.BusinessPage{}, nil)

	rec := doRequest(e, http.MethodGet, "/api/businesses?lat=37.5&lng=127.0&radius=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBusinessHandler_Get_InvalidID(t *testing.T) {
	h, _, _ := newBusinessHandler(t)
	e := newTestEcho()
	e.GET("/api/businesses/:id", h.Get)

	rec := doRequest(e, http.MethodGet, "/api/businesses/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "invalid id", env.Error.Details)
}

func TestBusinessHandler_Get_PassesViewer(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	ownerID := uuid.New()
	businessID := uuid.New()
	e := newTestEcho()
	e.Use(asUser(ownerID, entity.RoleBusiness))
	e.GET("/api/businesses/:id", h.Get)

	businessUC.EXPECT().Get(mock.Anything, usecase.Viewer{UserID: ownerID, Roles: entity.Roles{entity.RoleBusiness}}, businessID).
		Return(&entity.Business{ID: businessID, Status: entity.BusinessStatusPending}, nil)

	rec := doRequest(e, http.MethodGet, "/api/businesses/"+businessID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBusinessHandler_Get_NotVisible(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	businessID := uuid.New()
	e := newTestEcho()
	e.GET("/api/businesses/:id", h.Get)

	businessUC.EXPECT().Get(mock.Anything, usecase.Viewer{}, businessID).Return(nil, domainerrors.ErrBusinessNotVisible)

	rec := doRequest(e, http.MethodGet, "/api/businesses/"+businessID.String(), "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "BUSINESS_NOT_VISIBLE", env.Error.Code)
	assert.Equal(t, "Business is not publicly visible", env.Message)
}

func TestBusinessHandler_Create(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h, _, _ := newBusinessHandler(t)
		e := newTestEcho()
		e.POST("/api/businesses", h.Create)

		rec := doRequest(e, http.MethodPost, "/api/businesses", `{"name":"Cafe"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		h, _, _ := newBusinessHandler(t)
		e := newTestEcho()
		e.Use(asUser(uuid.New()))
		e.POST("/api/businesses", h.Create)

		rec := doRequest(e, http.MethodPost, "/api/businesses", `{"name":"Cafe","email":"nope"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email")
	})

	t.Run("creates a pending business", func(t *testing.T) {
		h, businessUC, _ := newBusinessHandler(t)
		ownerID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(ownerID))
		e.POST("/api/businesses", h.Create)

		businessUC.EXPECT().Create(mock.Anything, ownerID, mock.MatchedBy(func(input *usecase.BusinessInput) bool {
			return *input.Name == "Cafe" && *input.Latitude == 37.5 && input.PetAllowedTypes[0] == "dog"
		})).Return(&entity.Business{Name: "Cafe", Status: entity.BusinessStatusPending}, nil)

		rec := doRequest(e, http.MethodPost, "/api/businesses",
			`{"name":"Cafe","category":"cafe","address":"Seoul","latitude":37.5,"longitude":127.0,"pet_allowed_types":["dog"]}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.Equal(t, http.StatusCreated, env.Code)
	})
}

func TestBusinessHandler_Nearby(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	e := newTestEcho()
	e.POST("/api/businesses/nearby", h.Nearby)

	distance := 0.0
	businessUC.EXPECT().Nearby(mock.Anything, &entity.NearbyQuery{
		Latitude:  37.5,
		Longitude: 127.0,
		RadiusKm:  10,
		PetType:   "dog",
		Limit:     5,
	}).Return([]*entity.Business{{Name: "Here", DistanceKm: &distance}}, nil)

	rec := doRequest(e, http.MethodPost, "/api/businesses/nearby",
		`{"latitude":37.5,"longitude":127.0,"radius":10,"pet_type":"dog","limit":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"distance":0`)
}

func TestBusinessHandler_Nearby_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{name: "latitude out of range", body: `{"latitude":91,"longitude":127.0}`, details: "latitude: max=90"},
		{name: "coordinates missing", body: `{"radius":5}`, details: "latitude: required"},
		{name: "longitude missing", body: `{"latitude":37.5}`, details: "longitude: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newBusinessHandler(t)
			e := newTestEcho()
			e.POST("/api/businesses/nearby", h.Nearby)

			rec := doRequest(e, http.MethodPost, "/api/businesses/nearby", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeEnvelope(t, rec).Error.Details, tt.details)
		})
	}
}

func TestBusinessHandler_Nearby_EquatorIsAValidCenter(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	e := newTestEcho()
	e.POST("/api/businesses/nearby", h.Nearby)

	businessUC.EXPECT().Nearby(mock.Anything, &entity.NearbyQuery{Latitude: 0, Longitude: 0}).
		Return([]*entity.Business{}, nil)

	rec := doRequest(e, http.MethodPost, "/api/businesses/nearby", `{"latitude":0,"longitude":0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBusinessHandler_ChangeStatus(t *testing.T) {
	t.Run("unknown status never reaches the use case", func(t *testing.T) {
		h, _, _ := newBusinessHandler(t)
		e := newTestEcho()
		e.PUT("/api/admin/businesses/:id/status", h.ChangeStatus)

		rec := doRequest(e, http.MethodPut, "/api/admin/businesses/"+uuid.NewString()+"/status", `{"status":"closed"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid transition is a conflict", func(t *testing.T) {
		h, businessUC, _ := newBusinessHandler(t)
		businessID := uuid.New()
		e := newTestEcho()
		e.PUT("/api/admin/businesses/:id/status", h.ChangeStatus)

		businessUC.EXPECT().ChangeStatus(mock.Anything, businessID, &usecase.ChangeStatusInput{Status: entity.BusinessStatusSuspended}).
			Return(nil, domainerrors.ErrInvalidStatusTransition)

		rec := doRequest(e, http.MethodPut, "/api/admin/businesses/"+businessID.String()+"/status", `{"status":"suspended"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestBusinessHandler_Reviews(t *testing.T) {
	h, _, reviewUC := newBusinessHandler(t)
	businessID := uuid.New()
	e := newTestEcho()
	e.GET("/api/businesses/:id/reviews", h.Reviews)

	distribution := entity.NewRatingDistribution()
	distribution[5] = 2
	reviewUC.EXPECT().ListForBusiness(mock.Anything, businessID, entity.ReviewSortRatingHigh, 1, 10).
		Return(&usecase.BusinessReviews{
			Distribution: distribution,
			Average:      4.5,
			Total:        2,
		}, nil)

	rec := doRequest(e, http.MethodGet, "/api/businesses/"+businessID.String()+"/reviews?sort=rating_high&page=1&per_page=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body BusinessReviewsResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, 4.5, body.Average)
	assert.Equal(t, int64(2), body.Distribution[5])
	assert.Equal(t, int64(0), body.Distribution[1])
}
