package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"petplace/config"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"
	"petplace/internal/usecase"
	"petplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	shortCodeLength     = 8
	defaultTopLinks     = 10
	maxTopLinks         = 50
	defaultTopDays      = 30
	defaultShortURLBase = "pet.ly"
)

// affiliateService implements the AffiliateUsecase interface.
type affiliateService struct {
	txManager     repository.TransactionManager
	affiliateRepo repository.AffiliateRepository
	blogRepo      repository.BlogRepository
	metrics       service.AffiliateMetrics
	qrCode        service.QRCodeService
	notifier      *notifier
	shortURLBase  string
	publicBaseURL string
	topDays       int
	pager         pager
	now           clock
	logger        *slog.Logger
}

// AffiliateServiceParams holds dependencies for AffiliateService, injected by Fx.
type AffiliateServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AffiliateRepo repository.AffiliateRepository
	BlogRepo      repository.BlogRepository
	Metrics       service.AffiliateMetrics
	QRCode        service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAffiliateService is the constructor for affiliateService.
func NewAffiliateService(params AffiliateServiceParams) usecase.AffiliateUsecase {
	srv := &affiliateService{
		txManager:     params.TxManager,
		affiliateRepo: params.AffiliateRepo,
		blogRepo:      params.BlogRepo,
		metrics:       params.Metrics,
		qrCode:        params.QRCode,
		notifier:      newNotifier(params.Config, params.Publisher, params.Logger),
		shortURLBase:  shortURLBase(params.Config),
		topDays:       defaultTopDays,
		pager:         newPager(params.Config),
		now:           utcNow,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Affiliate != nil {
		srv.publicBaseURL = strings.TrimSuffix(params.Config.Affiliate.PublicBaseURL, "/")
		if params.Config.Affiliate.TopDefaultDays > 0 {
			srv.topDays = params.Config.Affiliate.TopDefaultDays
		}
	}

	return srv
}

// CreateLink attaches a link to one of the caller's posts.
func (srv *affiliateService) CreateLink(ctx context.Context, authorID uuid.UUID, input *usecase.CreateLinkInput) (*entity.AffiliateLink, error) {
	if err := validateLinkInput(&input.AffiliateLinkInput); err != nil {
		return nil, err
	}

	var created *entity.AffiliateLink
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		post, err := findPost(ctx, repoFactory.NewBlogRepository(), input.BlogPostID)
		if err != nil {
			return err
		}
		if post.AuthorID != authorID {
			return domainerrors.ErrForbidden.WithDetails("only the post author can add links")
		}

		link := newAffiliateLink(post.ID, &input.AffiliateLinkInput, srv.shortURLBase, srv.now())
		if err := repoFactory.NewAffiliateRepository().CreateLink(ctx, link); err != nil {
			return errors.Wrap(err, "failed to create affiliate link")
		}
		created = link

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create affiliate link")
	}

	logFrom(ctx, srv.logger).Info("Affiliate link created",
		slog.Any("linkID", created.ID),
		slog.String("partner", string(created.Partner)),
	)

	return created, nil
}

// GetLink returns a link. A link on another author's post reads as not found unless the
// viewer is staff.
func (srv *affiliateService) GetLink(ctx context.Context, viewer usecase.Viewer, id uuid.UUID) (*entity.AffiliateLink, error) {
	link, err := findLink(ctx, srv.affiliateRepo, id)
	if err != nil {
		return nil, err
	}
	if viewer.IsStaff() {
		return link, nil
	}

	post, err := findPost(ctx, srv.blogRepo, link.BlogPostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != viewer.UserID {
		return nil, domainerrors.ErrAffiliateLinkNotFound
	}

	return link, nil
}

// ListLinks returns one page of links, newest first.
func (srv *affiliateService) ListLinks(ctx context.Context, input *usecase.ListLinksInput) (*usecase.LinkPage, error) {
	if input.Partner != "" && !input.Partner.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown partner " + string(input.Partner))
	}

	authorID := input.AuthorID
	if !input.Viewer.IsStaff() {
		authorID = &input.Viewer.UserID
	}

	page := srv.pager.page(input.Page, input.PerPage)
	links, total, err := srv.affiliateRepo.ListLinks(ctx, entity.AffiliateLinkFilter{
		AuthorID:   authorID,
		BlogPostID: input.BlogPostID,
		Partner:    input.Partner,
		Active:     input.Active,
	}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list affiliate links")
	}

	return &usecase.LinkPage{
		Links:      nonNil(links),
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// TrackClick records a redirect and returns the partner URL to send the visitor to.
// The click row and the link counters are written in one transaction.
func (srv *affiliateService) TrackClick(ctx context.Context, linkID uuid.UUID, input *usecase.ClickInput) (string, error) {
	var link *entity.AffiliateLink
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		affiliateRepo := repoFactory.NewAffiliateRepository()

		found, err := findLink(ctx, affiliateRepo, linkID)
		if err != nil {
			return err
		}

		now := srv.now()
		if !found.IsAvailable(now) {
			return domainerrors.ErrAffiliateLinkUnavailable
		}

		if err := affiliateRepo.RecordClick(ctx, &entity.AffiliateClick{
			AffiliateLinkID: linkID,
			UserID:          input.UserID,
			IPAddress:       input.IPAddress,
			UserAgent:       input.UserAgent,
			Referrer:        input.Referrer,
			DeviceType:      util.DeviceType(input.UserAgent),
			CreatedAt:       now,
		}); err != nil {
			return errors.Wrap(err, "failed to record click")
		}
		link = found

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to track click")
	}
	srv.metrics.ClickTracked(string(link.Partner))

	return link.AffiliateURL, nil
}

// TrackConversion records a purchase, adds its commission to the link revenue and tells
// the post author.
func (srv *affiliateService) TrackConversion(ctx context.Context, linkID uuid.UUID, input *usecase.ConversionInput) (*entity.AffiliateConversion, error) {
	if (input.OrderAmount != nil && *input.OrderAmount < 0) || (input.CommissionEarned != nil && *input.CommissionEarned < 0) {
		return nil, domainerrors.ErrInvalidCommission
	}

	var (
		recorded     *entity.AffiliateConversion
		partner      entity.Partner
		notification *entity.Notification
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		affiliateRepo := repoFactory.NewAffiliateRepository()

		link, err := findLink(ctx, affiliateRepo, linkID)
		if err != nil {
			return err
		}

		now := srv.now()
		conversion := &entity.AffiliateConversion{
			AffiliateLinkID:  linkID,
			UserID:           input.UserID,
			OrderID:          input.OrderID,
			OrderAmount:      input.OrderAmount,
			CommissionEarned: link.CommissionFor(input.OrderAmount, input.CommissionEarned),
			Status:           entity.ConversionPending,
			CreatedAt:        now,
		}
		if conversion.CommissionEarned < 0 {
			return domainerrors.ErrInvalidCommission
		}
		if err := affiliateRepo.RecordConversion(ctx, conversion); err != nil {
			return errors.Wrap(err, "failed to record conversion")
		}

		post, err := findPost(ctx, repoFactory.NewBlogRepository(), link.BlogPostID)
		if err != nil {
			return err
		}
		notification, err = srv.notifier.create(ctx, repoFactory.NewNotificationRepository(), notice{
			UserID:            post.AuthorID,
			Title:             "New affiliate conversion",
			Message:           fmt.Sprintf("%s earned a commission of %.2f.", link.ProductName, conversion.CommissionEarned),
			Type:              entity.NotificationTypeAffiliate,
			RelatedEntityType: "affiliate_link",
			RelatedEntityID:   &link.ID,
			ActionURL:         "/affiliate/links/" + link.ID.String(),
		}, now)
		if err != nil {
			return err
		}

		recorded = conversion
		partner = link.Partner

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to track conversion")
	}

	srv.metrics.ConversionTracked(string(partner), recorded.CommissionEarned)
	logFrom(ctx, srv.logger).Info("Affiliate conversion tracked",
		slog.Any("linkID", linkID),
		slog.Float64("commission", recorded.CommissionEarned),
	)
	srv.notifier.publish(ctx, notification)

	return recorded, nil
}

// Stats summarizes the links the author created inside the period window.
func (srv *affiliateService) Stats(ctx context.Context, authorID uuid.UUID, period entity.StatsPeriod) (*entity.AffiliateStats, error) {
	if period == "" {
		period = entity.PeriodMonth
	}

	since := period.Since(srv.now())
	links, err := srv.affiliateRepo.FindLinksByAuthor(ctx, authorID, &since, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load affiliate links")
	}

	return entity.SummarizeLinks(period, links), nil
}

// TopPerforming ranks active links clicked in the last days by revenue.
func (srv *affiliateService) TopPerforming(ctx context.Context, limit int, partner entity.Partner, days int) ([]*entity.AffiliateLink, error) {
	if partner != "" && !partner.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown partner " + string(partner))
	}
	if limit <= 0 {
		limit = defaultTopLinks
	}
	limit = min(limit, maxTopLinks)
	if days <= 0 {
		days = srv.topDays
	}

	since := srv.now().AddDate(0, 0, -days)
	links, err := srv.affiliateRepo.FindTopPerforming(ctx, since, partner, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find top performing links")
	}

	return nonNil(links), nil
}

// EarningsReport returns the author's commission per day. Click and conversion totals
// cover the links created inside the same range.
func (srv *affiliateService) EarningsReport(ctx context.Context, authorID uuid.UUID, input *usecase.EarningsReportInput) (*entity.EarningsReport, error) {
	if input.From != nil && input.To != nil && input.To.Before(*input.From) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end date is before start date")
	}

	daily, err := srv.affiliateRepo.DailyEarnings(ctx, authorID, input.From, input.To)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum daily earnings")
	}
	links, err := srv.affiliateRepo.FindLinksByAuthor(ctx, authorID, input.From, input.To)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load affiliate links")
	}

	report := &entity.EarningsReport{
		From:          input.From,
		To:            input.To,
		DailyEarnings: nonNil(daily),
	}
	for _, day := range daily {
		report.TotalEarnings += day.Earnings
	}
	report.TotalEarnings = util.Round(report.TotalEarnings, 2)
	for _, link := range links {
		report.TotalClicks += link.ClickCount
		report.TotalConversions += link.ConversionCount
	}

	return report, nil
}

// LinkQRCode renders the public click URL of a link as a PNG QR code.
func (srv *affiliateService) LinkQRCode(ctx context.Context, linkID uuid.UUID) ([]byte, error) {
	link, err := findLink(ctx, srv.affiliateRepo, linkID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GeneratePNG(srv.clickURL(link.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (srv *affiliateService) clickURL(id uuid.UUID) string {
	return srv.publicBaseURL + "/api/affiliate/links/" + id.String() + "/click"
}

func findLink(ctx context.Context, repo repository.AffiliateRepository, id uuid.UUID) (*entity.AffiliateLink, error) {
	link, err := repo.FindLinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAffiliateLinkNotFound) {
			return nil, domainerrors.ErrAffiliateLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate link")
	}

	return link, nil
}

func shortURLBase(cfg *config.Config) string {
	if cfg == nil || cfg.Affiliate == nil || cfg.Affiliate.ShortURLBase == "" {
		return defaultShortURLBase
	}

	return strings.TrimSuffix(cfg.Affiliate.ShortURLBase, "/")
}

func validateLinkInput(input *usecase.AffiliateLinkInput) error {
	switch {
	case strings.TrimSpace(input.ProductName) == "":
		return domainerrors.ErrValidationFailed.WithDetails("product_name is required")
	case input.OriginalURL == "" || input.AffiliateURL == "":
		return domainerrors.ErrValidationFailed.WithDetails("original_url and affiliate_url are required")
	case !input.Partner.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown partner " + string(input.Partner))
	case input.CommissionType != "" && input.CommissionType != entity.CommissionPercentage && input.CommissionType != entity.CommissionFixed:
		return domainerrors.ErrValidationFailed.WithDetails("unknown commission type " + string(input.CommissionType))
	case input.CommissionRate < 0:
		return domainerrors.ErrInvalidCommission
	}

	return nil
}

// newAffiliateLink builds an active link whose short URL is derived from the affiliate URL.
func newAffiliateLink(postID uuid.UUID, input *usecase.AffiliateLinkInput, shortBase string, now time.Time) *entity.AffiliateLink {
	commissionType := input.CommissionType
	if commissionType == "" {
		commissionType = entity.CommissionPercentage
	}

	return &entity.AffiliateLink{
		BlogPostID:         postID,
		ProductName:        strings.TrimSpace(input.ProductName),
		ProductDescription: input.ProductDescription,
		ProductImage:       input.ProductImage,
		ProductPrice:       input.ProductPrice,
		ProductCategory:    input.ProductCategory,
		Partner:            input.Partner,
		PartnerProductID:   input.PartnerProductID,
		OriginalURL:        input.OriginalURL,
		AffiliateURL:       input.AffiliateURL,
		ShortURL:           shortBase + "/" + util.ShortCode(input.AffiliateURL, shortCodeLength),
		CommissionRate:     input.CommissionRate,
		CommissionType:     commissionType,
		IsActive:           true,
		IsFeatured:         input.IsFeatured,
		Priority:           input.Priority,
		CreatedAt:          now,
		UpdatedAt:          now,
		ExpiresAt:          input.ExpiresAt,
	}
}
