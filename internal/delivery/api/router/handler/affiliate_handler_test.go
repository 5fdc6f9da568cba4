package handler

import (
	"net/http"
	"testing"
	"time"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	mockUsecase "petplace/internal/mocks/usecase"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAffiliateHandler(t *testing.T) (*AffiliateHandler, *mockUsecase.MockAffiliateUsecase) {
	affiliateUC := mockUsecase.NewMockAffiliateUsecase(t)

	return NewAffiliateHandler(AffiliateHandlerParams{AffiliateUC: affiliateUC}), affiliateUC
}

func TestAffiliateHandler_Click(t *testing.T) {
	t.Run("redirects to the partner", func(t *testing.T) {
		h, affiliateUC := newAffiliateHandler(t)
		linkID := uuid.New()
		e := newTestEcho()
		e.POST("/api/affiliate/links/:id/click", h.Click)

		affiliateUC.EXPECT().TrackClick(mock.Anything, linkID, mock.MatchedBy(func(input *usecase.ClickInput) bool {
			return input.UserID == nil && input.IPAddress != ""
		})).Return("https://partner.example/p/1?aff=xyz", nil)

		rec := doRequest(e, http.MethodPost, "/api/affiliate/links/"+linkID.String()+"/click", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://partner.example/p/1?aff=xyz", rec.Header().Get("Location"))
	})

	t.Run("attributes the click to a signed-in user", func(t *testing.T) {
		h, affiliateUC := newAffiliateHandler(t)
		userID := uuid.New()
		linkID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(userID))
		e.POST("/api/affiliate/links/:id/click", h.Click)

		affiliateUC.EXPECT().TrackClick(mock.Anything, linkID, mock.MatchedBy(func(input *usecase.ClickInput) bool {
			return input.UserID != nil && *input.UserID == userID
		})).Return("https://partner.example", nil)

		rec := doRequest(e, http.MethodPost, "/api/affiliate/links/"+linkID.String()+"/click", "")

		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("unavailable link is not found", func(t *testing.T) {
		h, affiliateUC := newAffiliateHandler(t)
		linkID := uuid.New()
		e := newTestEcho()
		e.POST("/api/affiliate/links/:id/click", h.Click)

		affiliateUC.EXPECT().TrackClick(mock.Anything, linkID, mock.Anything).Return("", domainerrors.ErrAffiliateLinkUnavailable)

		rec := doRequest(e, http.MethodPost, "/api/affiliate/links/"+linkID.String()+"/click", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "AFFILIATE_LINK_UNAVAILABLE", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAffiliateHandler_Conversion(t *testing.T) {
	h, affiliateUC := newAffiliateHandler(t)
	linkID := uuid.New()
	e := newTestEcho()
	e.POST("/api/affiliate/links/:id/conversion", h.Conversion)

	affiliateUC.EXPECT().TrackConversion(mock.Anything, linkID, mock.MatchedBy(func(input *usecase.ConversionInput) bool {
		return input.OrderID == "A-1" && *input.OrderAmount == 10000 && input.CommissionEarned == nil
	})).Return(&entity.AffiliateConversion{CommissionEarned: 500}, nil)

	rec := doRequest(e, http.MethodPost, "/api/affiliate/links/"+linkID.String()+"/conversion", `{"order_id":"A-1","order_amount":10000}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Conversion recorded", decodeEnvelope(t, rec).Message)
}

func TestAffiliateHandler_QRCode(t *testing.T) {
	h, affiliateUC := newAffiliateHandler(t)
	linkID := uuid.New()
	e := newTestEcho()
	e.GET("/api/affiliate/links/:id/qrcode", h.QRCode)

	png := []byte{0x89, 'P', 'N', 'G'}
	affiliateUC.EXPECT().LinkQRCode(mock.Anything, linkID).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/api/affiliate/links/"+linkID.String()+"/qrcode", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAffiliateHandler_Stats(t *testing.T) {
	h, affiliateUC := newAffiliateHandler(t)
	userID := uuid.New()
	e := newTestEcho()
	e.Use(asUser(userID))
	e.GET("/api/affiliate/stats", h.Stats)

	affiliateUC.EXPECT().Stats(mock.Anything, userID, entity.PeriodWeek).Return(&entity.AffiliateStats{}, nil)

	rec := doRequest(e, http.MethodGet, "/api/affiliate/stats?period=week", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAffiliateHandler_EarningsReport(t *testing.T) {
	t.Run("parses date bounds", func(t *testing.T) {
		h, affiliateUC := newAffiliateHandler(t)
		userID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(userID))
		e.GET("/api/affiliate/earnings/report", h.EarningsReport)

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		affiliateUC.EXPECT().EarningsReport(mock.Anything, userID, &usecase.EarningsReportInput{From: &from, To: &to}).
			Return(&entity.EarningsReport{TotalEarnings: 30.3}, nil)

		rec := doRequest(e, http.MethodGet, "/api/affiliate/earnings/report?from=2026-03-01&to=2026-03-31", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "30.3")
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		h, _ := newAffiliateHandler(t)
		e := newTestEcho()
		e.Use(asUser(uuid.New()))
		e.GET("/api/affiliate/earnings/report", h.EarningsReport)

		rec := doRequest(e, http.MethodGet, "/api/affiliate/earnings/report?from=03/01/2026", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "from must be YYYY-MM-DD", decodeEnvelope(t, rec).Error.Details)
	})
}

func TestAffiliateHandler_CreateLink_Validation(t *testing.T) {
	h, _ := newAffiliateHandler(t)
	e := newTestEcho()
	e.Use(asUser(uuid.New()))
	e.POST("/api/affiliate/links", h.CreateLink)

	rec := doRequest(e, http.MethodPost, "/api/affiliate/links",
		`{"blog_post_id":"`+uuid.NewString()+`","product_name":"Leash","partner":"coupang","original_url":"not a url","affiliate_url":"https://aff.example"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "original_url")
}

func TestAffiliateHandler_ListLinks(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h, _ := newAffiliateHandler(t)
		e := newTestEcho()
		e.GET("/api/affiliate/links", h.ListLinks)

		rec := doRequest(e, http.MethodGet, "/api/affiliate/links", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("passes the caller as viewer", func(t *testing.T) {
		h, affiliateUC := newAffiliateHandler(t)
		userID := uuid.New()
		otherAuthor := uuid.New()
		e := newTestEcho()
		e.Use(asUser(userID, entity.RoleUser))
		e.GET("/api/affiliate/links", h.ListLinks)

		affiliateUC.EXPECT().ListLinks(mock.Anything, mock.MatchedBy(func(input *usecase.ListLinksInput) bool {
			return input.Viewer.UserID == userID && !input.Viewer.IsStaff() &&
				input.AuthorID != nil && *input.AuthorID == otherAuthor
		})).Return(&usecase.LinkPage{Links: []*entity.AffiliateLink{}}, nil)

		rec := doRequest(e, http.MethodGet, "/api/affiliate/links?author_id="+otherAuthor.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAffiliateHandler_GetLink(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h, _ := newAffiliateHandler(t)
		e := newTestEcho()
		e.GET("/api/affiliate/links/:id", h.GetLink)

		rec := doRequest(e, http.MethodGet, "/api/affiliate/links/"+uuid.NewString(), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("another author's link is not found", func(t *testing.T) {
		h, affiliateUC := newAffiliateHandler(t)
		userID := uuid.New()
		linkID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(userID))
		e.GET("/api/affiliate/links/:id", h.GetLink)

		affiliateUC.EXPECT().GetLink(mock.Anything, usecase.Viewer{UserID: userID}, linkID).
			Return(nil, domainerrors.ErrAffiliateLinkNotFound)

		rec := doRequest(e, http.MethodGet, "/api/affiliate/links/"+linkID.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "AFFILIATE_LINK_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}
