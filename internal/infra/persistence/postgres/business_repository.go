package postgres

import (
	"context"
	"time"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Create persists a new business listing.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Reviews").Create(businessM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business with its owner summary.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// Update writes the editable columns of a business. Counters and the rating are left untouched.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Select(
			"name", "description", "category", "phone", "email", "website", "address", "address_detail",
			"postal_code", "latitude", "longitude", "business_hours", "holiday_info", "has_parking", "has_wifi",
			"has_outdoor_seating", "pet_allowed_types", "pet_size_limit", "pet_fee", "pet_facilities", "pet_rules",
			"main_image", "gallery_images", "is_premium", "is_featured", "status", "search_keywords", "meta_title",
			"meta_description", "approved_at", "updated_at",
		).
		Updates(businessM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// UpdateStatus changes the moderation status, stamping approved_at when given.
func (repo *businessRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BusinessStatus, approvedAt *time.Time) error {
	updates := map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if approvedAt != nil {
		updates["approved_at"] = *approvedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// List returns a filtered page of businesses ordered by rating, newest first among equals.
func (repo *businessRepository) List(ctx context.Context, filter entity.BusinessFilter, page entity.Page) ([]*entity.Business, int64, error) {
	// A fresh session lets the count and the page query share the filter.
	query := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.BusinessModel{}), filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count businesses")
	}

	var businessModels []*model.BusinessModel
	if err := query.
		Order("average_rating DESC").
		Order("created_at DESC").
		Scopes(paginate(page)).
		Find(&businessModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list businesses")
	}

	return toBusinessDomains(businessModels), total, nil
}

// FindWithinBounds returns approved businesses inside the box, ordered by rating.
func (repo *businessRepository) FindWithinBounds(ctx context.Context, bounds entity.GeoBounds, category, petType string) ([]*entity.Business, error) {
	filter := entity.BusinessFilter{
		Category: category,
		PetType:  petType,
		Status:   entity.BusinessStatusApproved,
		Bounds:   &bounds,
	}

	var businessModels []*model.BusinessModel
	if err := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Order("average_rating DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses within bounds")
	}

	return toBusinessDomains(businessModels), nil
}

// FindFeatured returns approved featured businesses ordered by rating.
func (repo *businessRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND is_featured = ?", string(entity.BusinessStatusApproved), true).
		Order("average_rating DESC").
		Order("review_count DESC").
		Limit(limit).
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured businesses")
	}

	return toBusinessDomains(businessModels), nil
}

// Search matches approved businesses by name, description, address or keyword, ordered by rating then views.
func (repo *businessRepository) Search(ctx context.Context, term string, page entity.Page) ([]*entity.Business, int64, error) {
	pattern := likePattern(term)
	query := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("status = ?", string(entity.BusinessStatusApproved)).
		Where("name ILIKE ? OR description ILIKE ? OR address ILIKE ? OR ? = ANY(search_keywords)", pattern, pattern, pattern, term).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count search results")
	}

	var businessModels []*model.BusinessModel
	if err := query.
		Order("average_rating DESC").
		Order("view_count DESC").
		Scopes(paginate(page)).
		Find(&businessModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search businesses")
	}

	return toBusinessDomains(businessModels), total, nil
}

type categoryCountRow struct {
	Category string
	Count    int64
}

// CountApprovedByCategory counts approved businesses per category code.
func (repo *businessRepository) CountApprovedByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []categoryCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Select("category, COUNT(*) AS count").
		Where("status = ?", string(entity.BusinessStatusApproved)).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count businesses by category")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}

	return counts, nil
}

type statusCountRow struct {
	Status string
	Count  int64
}

// CountByOwner counts an owner's businesses per status.
func (repo *businessRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (map[entity.BusinessStatus]int64, error) {
	var rows []statusCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Select("status, COUNT(*) AS count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count businesses by owner")
	}

	counts := make(map[entity.BusinessStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.BusinessStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// FindRecentByOwner returns an owner's most recently created businesses.
func (repo *businessRepository) FindRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent businesses")
	}

	return toBusinessDomains(businessModels), nil
}

// IncrementViewCount bumps view_count in the database so concurrent views are not lost.
func (repo *businessRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment view count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpdateRating stores a recomputed rating aggregate.
func (repo *businessRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating entity.RatingAggregate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"average_rating": rating.Average,
			"review_count":   rating.Count,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

func (repo *businessRepository) applyFilter(query *gorm.DB, filter entity.BusinessFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PetType != "" {
		query = query.Where("? = ANY(pet_allowed_types)", filter.PetType)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR description ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Bounds != nil {
		query = query.
			Where("latitude BETWEEN ? AND ?", filter.Bounds.MinLat, filter.Bounds.MaxLat).
			Where("longitude BETWEEN ? AND ?", filter.Bounds.MinLng, filter.Bounds.MaxLng)
	}

	return query
}

// --- Mapper Functions ---

func toBusinessDomains(models []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(models))
	for _, businessM := range models {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	business := &entity.Business{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Name:              data.Name,
		Description:       data.Description,
		Category:          data.Category,
		Phone:             data.Phone,
		Email:             data.Email,
		Website:           data.Website,
		Address:           data.Address,
		AddressDetail:     data.AddressDetail,
		PostalCode:        data.PostalCode,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		BusinessHours:     toBusinessHours(data.BusinessHours),
		HolidayInfo:       data.HolidayInfo,
		HasParking:        data.HasParking,
		HasWifi:           data.HasWifi,
		HasOutdoorSeating: data.HasOutdoorSeating,
		PetAllowedTypes:   stringsOf(data.PetAllowedTypes),
		PetSizeLimit:      data.PetSizeLimit,
		PetFee:            data.PetFee,
		PetFacilities:     stringsOf(data.PetFacilities),
		PetRules:          data.PetRules,
		MainImage:         data.MainImage,
		GalleryImages:     stringsOf(data.GalleryImages),
		IsPremium:         data.IsPremium,
		IsFeatured:        data.IsFeatured,
		ViewCount:         data.ViewCount,
		FavoriteCount:     data.FavoriteCount,
		ReviewCount:       data.ReviewCount,
		AverageRating:     data.AverageRating,
		Status:            entity.BusinessStatus(data.Status),
		SearchKeywords:    stringsOf(data.SearchKeywords),
		MetaTitle:         data.MetaTitle,
		MetaDescription:   data.MetaDescription,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		ApprovedAt:        data.ApprovedAt,
	}
	if data.Owner != nil {
		business.Owner = toUserDomain(data.Owner).Summary()
	}

	return business
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		Name:              data.Name,
		Description:       data.Description,
		Category:          data.Category,
		Phone:             data.Phone,
		Email:             data.Email,
		Website:           data.Website,
		Address:           data.Address,
		AddressDetail:     data.AddressDetail,
		PostalCode:        data.PostalCode,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		BusinessHours:     fromBusinessHours(data.BusinessHours),
		HolidayInfo:       data.HolidayInfo,
		HasParking:        data.HasParking,
		HasWifi:           data.HasWifi,
		HasOutdoorSeating: data.HasOutdoorSeating,
		PetAllowedTypes:   pq.StringArray(data.PetAllowedTypes),
		PetSizeLimit:      data.PetSizeLimit,
		PetFee:            data.PetFee,
		PetFacilities:     pq.StringArray(data.PetFacilities),
		PetRules:          data.PetRules,
		MainImage:         data.MainImage,
		GalleryImages:     pq.StringArray(data.GalleryImages),
		IsPremium:         data.IsPremium,
		IsFeatured:        data.IsFeatured,
		ViewCount:         data.ViewCount,
		FavoriteCount:     data.FavoriteCount,
		ReviewCount:       data.ReviewCount,
		AverageRating:     data.AverageRating,
		Status:            string(data.Status),
		SearchKeywords:    pq.StringArray(data.SearchKeywords),
		MetaTitle:         data.MetaTitle,
		MetaDescription:   data.MetaDescription,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		ApprovedAt:        data.ApprovedAt,
	}
}

func toBusinessHours(hours datatypes.JSONMap) map[string]string {
	if len(hours) == 0 {
		return nil
	}

	out := make(map[string]string, len(hours))
	for day, v := range hours {
		if s, ok := v.(string); ok {
			out[day] = s
		}
	}

	return out
}

func fromBusinessHours(hours map[string]string) datatypes.JSONMap {
	if hours == nil {
		return nil
	}

	out := make(datatypes.JSONMap, len(hours))
	for day, v := range hours {
		out[day] = v
	}

	return out
}
