package handler

import (
	"log/slog"
	"net/http"

	"petplace/internal/delivery/api/middleware"
	"petplace/internal/delivery/api/response"
	"petplace/internal/domain/entity"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AffiliateHandlerParams holds dependencies for AffiliateHandler, injected by Fx.
type AffiliateHandlerParams struct {
	fx.In

	AffiliateUC usecase.AffiliateUsecase
	Logger      *slog.Logger
}

// AffiliateHandler serves affiliate link tracking and reporting.
type AffiliateHandler struct {
	affiliateUC usecase.AffiliateUsecase
	logger      *slog.Logger
}

// NewAffiliateHandler is the constructor for AffiliateHandler
func NewAffiliateHandler(params AffiliateHandlerParams) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateUC: params.AffiliateUC,
		logger:      params.Logger,
	}
}

// CreateLinkRequest attaches a link to one of the caller's posts
type CreateLinkRequest struct {
	BlogPostID uuid.UUID `json:"blog_post_id" validate:"required"`
	AffiliateLinkRequest
}

// ListLinksQuery filters the link listing
type ListLinksQuery struct {
	PageQuery
	AuthorID   string `query:"author_id"`
	BlogPostID string `query:"blog_post_id"`
	Partner    string `query:"partner"`
	Active     *bool  `query:"active"`
}

// ConversionRequest reports a purchase
type ConversionRequest struct {
	OrderID          string   `json:"order_id" validate:"max=100"`
	OrderAmount      *float64 `json:"order_amount"`
	CommissionEarned *float64 `json:"commission_earned"`
}

// StatsQuery selects the statistics window
type StatsQuery struct {
	Period string `query:"period"`
}

// TopQuery narrows the best-performing links
type TopQuery struct {
	Limit   int    `query:"limit" validate:"omitempty,min=1"`
	Partner string `query:"partner"`
	Days    int    `query:"days" validate:"omitempty,min=1,max=365"`
}

// EarningsQuery bounds the earnings report
type EarningsQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// ListLinks returns a page of links. Authors see their own links; staff may filter by author.
func (h *AffiliateHandler) ListLinks(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var query ListLinksQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	authorID, err := optionalUUID(query.AuthorID, "author_id")
	if err != nil {
		return err
	}
	postID, err := optionalUUID(query.BlogPostID, "blog_post_id")
	if err != nil {
		return err
	}

	page, err := h.affiliateUC.ListLinks(c.Request().Context(), &usecase.ListLinksInput{
		Viewer:     middleware.GetViewer(c),
		AuthorID:   authorID,
		BlogPostID: postID,
		Partner:    entity.Partner(query.Partner),
		Active:     query.Active,
		Page:       query.Page,
		PerPage:    query.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page.Links, page.Pagination)
}

// CreateLink adds a link to one of the caller's posts.
func (h *AffiliateHandler) CreateLink(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	link, err := h.affiliateUC.CreateLink(c.Request().Context(), userID, &usecase.CreateLinkInput{
		BlogPostID:         req.BlogPostID,
		AffiliateLinkInput: req.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Affiliate link created successfully")
}

// GetLink returns one of the caller's links with its counters.
func (h *AffiliateHandler) GetLink(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	link, err := h.affiliateUC.GetLink(c.Request().Context(), middleware.GetViewer(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, "")
}

// QRCode renders a PNG pointing at the link's tracked redirect.
func (h *AffiliateHandler) QRCode(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.affiliateUC.LinkQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Click records a click and redirects to the partner.
func (h *AffiliateHandler) Click(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	input := &usecase.ClickInput{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Referrer:  c.Request().Referer(),
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.UserID = &userID
	}

	target, err := h.affiliateUC.TrackClick(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, target)
}

// Conversion records a purchase and credits the commission.
func (h *AffiliateHandler) Conversion(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ConversionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.ConversionInput{
		OrderID:          req.OrderID,
		OrderAmount:      req.OrderAmount,
		CommissionEarned: req.CommissionEarned,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.UserID = &userID
	}

	conversion, err := h.affiliateUC.TrackConversion(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, conversion, "Conversion recorded")
}

// Stats summarizes the caller's links over a period.
func (h *AffiliateHandler) Stats(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var query StatsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	stats, err := h.affiliateUC.Stats(c.Request().Context(), userID, entity.StatsPeriod(query.Period))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Top returns the best-earning active links.
func (h *AffiliateHandler) Top(c echo.Context) error {
	var query TopQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	links, err := h.affiliateUC.TopPerforming(c.Request().Context(), query.Limit, entity.Partner(query.Partner), query.Days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "")
}

// EarningsReport returns the caller's daily earnings in a date range.
func (h *AffiliateHandler) EarningsReport(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var query EarningsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	from, err := optionalDate(query.From, "from")
	if err != nil {
		return err
	}
	to, err := optionalDate(query.To, "to")
	if err != nil {
		return err
	}

	report, err := h.affiliateUC.EarningsReport(c.Request().Context(), userID, &usecase.EarningsReportInput{From: from, To: to})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}
