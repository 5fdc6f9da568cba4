package postgres

import (
	"context"
	"time"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// affiliateRepository implements the repository.AffiliateRepository interface.
type affiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository is the constructor for affiliateRepository.
func NewAffiliateRepository(db *gorm.DB) repository.AffiliateRepository {
	return &affiliateRepository{
		db: db,
	}
}

// CreateLink persists a new affiliate link attached to a blog post.
func (repo *affiliateRepository) CreateLink(ctx context.Context, link *entity.AffiliateLink) error {
	linkM := fromAffiliateLinkDomain(link)

	if err := repo.db.WithContext(ctx).Omit("Clicks", "Conversions").Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostNotFound.WrapMessage("invalid blog post reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required affiliate link information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create affiliate link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindLinkByID retrieves an affiliate link by its ID.
func (repo *affiliateRepository) FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.AffiliateLink, error) {
	var linkM model.AffiliateLinkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate link by id")
	}

	return toAffiliateLinkDomain(&linkM), nil
}

// ListLinks returns a filtered page of links ordered by priority.
func (repo *affiliateRepository) ListLinks(ctx context.Context, filter entity.AffiliateLinkFilter, page entity.Page) ([]*entity.AffiliateLink, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AffiliateLinkModel{})
	if filter.AuthorID != nil {
		query = query.Where("blog_post_id IN (?)",
			repo.db.Model(&model.BlogPostModel{}).Select("id").Where("author_id = ?", *filter.AuthorID))
	}
	if filter.BlogPostID != nil {
		query = query.Where("blog_post_id = ?", *filter.BlogPostID)
	}
	if filter.Partner != "" {
		query = query.Where("partner = ?", string(filter.Partner))
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count affiliate links")
	}

	var linkModels []*model.AffiliateLinkModel
	if err := query.
		Order("priority DESC").
		Order("created_at DESC").
		Scopes(paginate(page)).
		Find(&linkModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list affiliate links")
	}

	return toAffiliateLinkDomains(linkModels), total, nil
}

// FindLinksByAuthor returns the links of an author's posts created within the optional range, in store order.
func (repo *affiliateRepository) FindLinksByAuthor(ctx context.Context, authorID uuid.UUID, from, to *time.Time) ([]*entity.AffiliateLink, error) {
	query := repo.db.WithContext(ctx).
		Where("blog_post_id IN (?)",
			repo.db.Model(&model.BlogPostModel{}).Select("id").Where("author_id = ?", authorID))
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var linkModels []*model.AffiliateLinkModel
	if err := query.Order("created_at ASC").Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find affiliate links by author")
	}

	return toAffiliateLinkDomains(linkModels), nil
}

// RecordClick bumps the click counter in the database and appends the click row.
// Callers run it inside a transaction so both writes land together.
func (repo *affiliateRepository) RecordClick(ctx context.Context, click *entity.AffiliateClick) error {
	if click.CreatedAt.IsZero() {
		click.CreatedAt = time.Now()
	}

	db := repo.db.WithContext(ctx)
	result := db.
		Model(&model.AffiliateLinkModel{}).
		Where("id = ?", click.AffiliateLinkID).
		UpdateColumns(map[string]any{
			"click_count":   gorm.Expr("click_count + ?", 1),
			"last_click_at": click.CreatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment click count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAffiliateLinkNotFound
	}

	clickM := fromAffiliateClickDomain(click)
	if err := db.Create(clickM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record affiliate click")
	}

	click.ID = clickM.ID

	return nil
}

// RecordConversion adds the commission to the link revenue in the database and appends the conversion row.
// Callers run it inside a transaction so both writes land together.
func (repo *affiliateRepository) RecordConversion(ctx context.Context, conversion *entity.AffiliateConversion) error {
	if conversion.CreatedAt.IsZero() {
		conversion.CreatedAt = time.Now()
	}

	db := repo.db.WithContext(ctx)
	result := db.
		Model(&model.AffiliateLinkModel{}).
		Where("id = ?", conversion.AffiliateLinkID).
		UpdateColumns(map[string]any{
			"conversion_count":   gorm.Expr("conversion_count + ?", 1),
			"total_revenue":      gorm.Expr("total_revenue + ?", conversion.CommissionEarned),
			"last_conversion_at": conversion.CreatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment conversion count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAffiliateLinkNotFound
	}

	conversionM := fromAffiliateConversionDomain(conversion)
	if err := db.Create(conversionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record affiliate conversion")
	}

	conversion.ID = conversionM.ID

	return nil
}

// FindTopPerforming returns active links clicked since the given time, by revenue.
func (repo *affiliateRepository) FindTopPerforming(ctx context.Context, since time.Time, partner entity.Partner, limit int) ([]*entity.AffiliateLink, error) {
	query := repo.db.WithContext(ctx).
		Where("is_active = ? AND last_click_at >= ?", true, since)
	if partner != "" {
		query = query.Where("partner = ?", string(partner))
	}

	var linkModels []*model.AffiliateLinkModel
	if err := query.
		Order("total_revenue DESC").
		Limit(limit).
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find top performing links")
	}

	return toAffiliateLinkDomains(linkModels), nil
}

// DailyEarnings sums the non-cancelled commission of an author's links per conversion day.
func (repo *affiliateRepository) DailyEarnings(ctx context.Context, authorID uuid.UUID, from, to *time.Time) ([]*entity.DailyEarnings, error) {
	query := repo.db.WithContext(ctx).
		Table("affiliate_link_conversions AS c").
		Select("TO_CHAR(c.created_at, 'YYYY-MM-DD') AS date, SUM(c.commission_earned) AS earnings").
		Joins("JOIN affiliate_links l ON l.id = c.affiliate_link_id").
		Joins("JOIN blog_posts p ON p.id = l.blog_post_id").
		Where("p.author_id = ? AND c.status <> ?", authorID, string(entity.ConversionCancelled))
	if from != nil {
		query = query.Where("c.created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("c.created_at <= ?", *to)
	}

	rows := []*entity.DailyEarnings{}
	if err := query.
		Group("TO_CHAR(c.created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily earnings")
	}

	return rows, nil
}

// --- Mapper Functions ---

func toAffiliateLinkDomains(models []*model.AffiliateLinkModel) []*entity.AffiliateLink {
	links := make([]*entity.AffiliateLink, 0, len(models))
	for _, linkM := range models {
		links = append(links, toAffiliateLinkDomain(linkM))
	}

	return links
}

// toAffiliateLinkDomain converts a GORM AffiliateLinkModel to a domain AffiliateLink entity.
func toAffiliateLinkDomain(data *model.AffiliateLinkModel) *entity.AffiliateLink {
	if data == nil {
		return nil
	}

	return &entity.AffiliateLink{
		ID:                 data.ID,
		BlogPostID:         data.BlogPostID,
		ProductName:        data.ProductName,
		ProductDescription: data.ProductDescription,
		ProductImage:       data.ProductImage,
		ProductPrice:       data.ProductPrice,
		ProductCategory:    data.ProductCategory,
		Partner:            entity.Partner(data.Partner),
		PartnerProductID:   data.PartnerProductID,
		OriginalURL:        data.OriginalURL,
		AffiliateURL:       data.AffiliateURL,
		ShortURL:           data.ShortURL,
		CommissionRate:     data.CommissionRate,
		CommissionType:     entity.CommissionType(data.CommissionType),
		ClickCount:         data.ClickCount,
		ConversionCount:    data.ConversionCount,
		TotalRevenue:       data.TotalRevenue,
		LastClickAt:        data.LastClickAt,
		LastConversionAt:   data.LastConversionAt,
		IsActive:           data.IsActive,
		IsFeatured:         data.IsFeatured,
		Priority:           data.Priority,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		ExpiresAt:          data.ExpiresAt,
	}
}

// fromAffiliateLinkDomain converts a domain AffiliateLink entity to a GORM AffiliateLinkModel.
func fromAffiliateLinkDomain(data *entity.AffiliateLink) *model.AffiliateLinkModel {
	if data == nil {
		return nil
	}

	return &model.AffiliateLinkModel{
		ID:                 data.ID,
		BlogPostID:         data.BlogPostID,
		ProductName:        data.ProductName,
		ProductDescription: data.ProductDescription,
		ProductImage:       data.ProductImage,
		ProductPrice:       data.ProductPrice,
		ProductCategory:    data.ProductCategory,
		Partner:            string(data.Partner),
		PartnerProductID:   data.PartnerProductID,
		OriginalURL:        data.OriginalURL,
		AffiliateURL:       data.AffiliateURL,
		ShortURL:           data.ShortURL,
		CommissionRate:     data.CommissionRate,
		CommissionType:     string(data.CommissionType),
		ClickCount:         data.ClickCount,
		ConversionCount:    data.ConversionCount,
		TotalRevenue:       data.TotalRevenue,
		LastClickAt:        data.LastClickAt,
		LastConversionAt:   data.LastConversionAt,
		IsActive:           data.IsActive,
		IsFeatured:         data.IsFeatured,
		Priority:           data.Priority,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		ExpiresAt:          data.ExpiresAt,
	}
}

func fromAffiliateClickDomain(data *entity.AffiliateClick) *model.AffiliateClickModel {
	return &model.AffiliateClickModel{
		ID:              data.ID,
		AffiliateLinkID: data.AffiliateLinkID,
		UserID:          data.UserID,
		IPAddress:       data.IPAddress,
		UserAgent:       data.UserAgent,
		Referrer:        data.Referrer,
		DeviceType:      data.DeviceType,
		CreatedAt:       data.CreatedAt,
	}
}

func fromAffiliateConversionDomain(data *entity.AffiliateConversion) *model.AffiliateConversionModel {
	return &model.AffiliateConversionModel{
		ID:               data.ID,
		AffiliateLinkID:  data.AffiliateLinkID,
		UserID:           data.UserID,
		OrderID:          data.OrderID,
		OrderAmount:      data.OrderAmount,
		CommissionEarned: data.CommissionEarned,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
	}
}
