package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"petplace/config"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"
	"petplace/internal/usecase"
	"petplace/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRadiusKm    = 10.0
	defaultNearbyLimit = 20
	maxNearbyLimit     = 50
	defaultFeatured    = 10
	maxFeatured        = 20
	minSearchRunes     = 2
	defaultCacheTTL    = 60 * time.Second

	cacheKeyCategories = "businesses:categories"
	cacheKeyFeatured   = "businesses:featured"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	cache        service.CacheService
	cacheTTL     time.Duration
	notifier     *notifier
	catalog      catalog
	pager        pager
	now          clock
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	Cache        service.CacheService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	ttl := defaultCacheTTL
	if params.Config != nil && params.Config.Redis != nil && params.Config.Redis.CacheTTL > 0 {
		ttl = params.Config.Redis.CacheTTL
	}

	return &businessService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		cache:        params.Cache,
		cacheTTL:     ttl,
		notifier:     newNotifier(params.Config, params.Publisher, params.Logger),
		catalog:      newCatalog(params.Config),
		pager:        newPager(params.Config),
		now:          utcNow,
		logger:       params.Logger,
	}
}

// List returns one page of businesses. With a center point the rows are limited to the
// bounding box of the radius and carry their distance.
func (srv *businessService) List(ctx context.Context, input *usecase.ListBusinessesInput) (*usecase.BusinessPage, error) {
	status := input.Status
	if status == "" {
		status = entity.BusinessStatusApproved
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	filter := entity.BusinessFilter{
		Category: input.Category,
		PetType:  input.PetType,
		Search:   strings.TrimSpace(input.Search),
		Status:   status,
		Featured: input.Featured,
	}

	var center *orb.Point
	if input.Latitude != nil && input.Longitude != nil {
		if !util.ValidCoordinate(*input.Latitude, *input.Longitude) {
			return nil, domainerrors.ErrInvalidCoordinates
		}
		radius := input.RadiusKm
		if radius <= 0 {
			radius = defaultRadiusKm
		}
		point := orb.Point{*input.Longitude, *input.Latitude}
		bounds := entity.NewGeoBounds(util.BoundingBox(point, radius))
		filter.Bounds = &bounds
		center = &point
	}

	page := srv.pager.page(input.Page, input.PerPage)
	businesses, total, err := srv.businessRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	if center != nil {
		for _, business := range businesses {
			distance := util.Round(util.HaversineKm(*center, orb.Point{business.Longitude, business.Latitude}), 2)
			business.DistanceKm = &distance
		}
	}

	return &usecase.BusinessPage{
		Businesses: nonNil(businesses),
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// Get returns a business. Listings that are not approved are visible to their owner and staff only.
func (srv *businessService) Get(ctx context.Context, viewer usecase.Viewer, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.findBusiness(ctx, srv.businessRepo, id)
	if err != nil {
		return nil, err
	}

	if !business.IsVisibleTo(viewer.UserID, viewer.IsStaff()) {
		return nil, domainerrors.ErrBusinessNotVisible
	}

	if business.Status == entity.BusinessStatusApproved {
		if err := srv.businessRepo.IncrementViewCount(ctx, id); err != nil {
			logFrom(ctx, srv.logger).Warn("Failed to count business view", slog.Any("businessID", id), slog.Any("error", err))
		} else {
			business.ViewCount++
		}
	}

	return business, nil
}

// Create registers a listing owned by the caller. New listings wait for moderation.
func (srv *businessService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	if input.Name == nil || input.Category == nil || input.Address == nil || input.Latitude == nil || input.Longitude == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, category, address, latitude and longitude are required")
	}

	now := srv.now()
	business := &entity.Business{
		OwnerID:         ownerID,
		Status:          entity.BusinessStatusPending,
		PetAllowedTypes: []string{},
		PetFacilities:   []string{},
		GalleryImages:   []string{},
		SearchKeywords:  []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	business.Category = *input.Category
	applyBusinessInput(business, input)

	if err := srv.validateBusiness(business); err != nil {
		return nil, err
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}
	logFrom(ctx, srv.logger).Info("Business created",
		slog.Any("businessID", business.ID),
		slog.Any("ownerID", ownerID),
		slog.String("category", business.Category),
	)

	return business, nil
}

// Update edits a listing. Only admins may change the category. Editing an important field
// of an approved listing sends it back to moderation.
func (srv *businessService) Update(ctx context.Context, viewer usecase.Viewer, id uuid.UUID, input *usecase.BusinessInput) (*entity.Business, error) {
	var (
		updated    *entity.Business
		wasVisible bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		business, err := srv.findBusiness(ctx, businessRepo, id)
		if err != nil {
			return err
		}
		if business.OwnerID != viewer.UserID && !viewer.IsAdmin() {
			return domainerrors.ErrForbidden
		}

		before := *business
		wasVisible = business.Status == entity.BusinessStatusApproved

		if input.Category != nil && viewer.IsAdmin() {
			business.Category = *input.Category
		}
		applyBusinessInput(business, input)

		if err := srv.validateBusiness(business); err != nil {
			return err
		}

		now := srv.now()
		business.UpdatedAt = now
		if business.Status == entity.BusinessStatusApproved && entity.ImportantFieldsChanged(&before, business) {
			if err := business.TransitionTo(entity.BusinessStatusPending, now); err != nil {
				return err
			}
			logFrom(ctx, srv.logger).Info("Business sent back to moderation", slog.Any("businessID", id))
		}

		if err := businessRepo.Update(ctx, business); err != nil {
			return errors.Wrap(err, "failed to update business")
		}
		updated = business

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	if wasVisible {
		srv.invalidateCache(ctx)
	}

	return updated, nil
}

// Delete hides a listing. Approved listings are suspended and pending ones rejected.
func (srv *businessService) Delete(ctx context.Context, viewer usecase.Viewer, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		business, err := srv.findBusiness(ctx, businessRepo, id)
		if err != nil {
			return err
		}
		if business.OwnerID != viewer.UserID && !viewer.IsAdmin() {
			return domainerrors.ErrForbidden
		}

		target, ok := business.SoftDeleteTarget()
		if !ok {
			// Already rejected or suspended.
			return nil
		}
		if err := business.TransitionTo(target, srv.now()); err != nil {
			return err
		}

		if err := businessRepo.UpdateStatus(ctx, id, business.Status, business.ApprovedAt); err != nil {
			return errors.Wrap(err, "failed to update business status")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	srv.invalidateCache(ctx)

	return nil
}

// Categories returns every configured category with its approved business count.
func (srv *businessService) Categories(ctx context.Context) ([]*entity.CategoryCount, error) {
	var cached []*entity.CategoryCount
	if srv.cacheGet(ctx, cacheKeyCategories, &cached) {
		return cached, nil
	}

	counts, err := srv.businessRepo.CountApprovedByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count businesses by category")
	}

	categories := make([]*entity.CategoryCount, 0, len(srv.catalog.categories))
	for _, code := range srv.catalog.categories {
		categories = append(categories, &entity.CategoryCount{
			Code:  code,
			Name:  categoryDisplayName(code),
			Count: counts[code],
		})
	}

	srv.cacheSet(ctx, cacheKeyCategories, categories)

	return categories, nil
}

// Featured returns approved featured listings, best rated first.
func (srv *businessService) Featured(ctx context.Context, limit int) ([]*entity.Business, error) {
	if limit <= 0 {
		limit = defaultFeatured
	}
	limit = min(limit, maxFeatured)

	var featured []*entity.Business
	if !srv.cacheGet(ctx, cacheKeyFeatured, &featured) {
		var err error
		featured, err = srv.businessRepo.FindFeatured(ctx, maxFeatured)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find featured businesses")
		}
		featured = nonNil(featured)
		srv.cacheSet(ctx, cacheKeyFeatured, featured)
	}

	return featured[:min(limit, len(featured))], nil
}

// Search matches approved listings by name, description and address.
func (srv *businessService) Search(ctx context.Context, query string, page, perPage int) (*usecase.BusinessPage, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchRunes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query must be at least 2 characters")
	}

	p := srv.pager.page(page, perPage)
	businesses, total, err := srv.businessRepo.Search(ctx, query, p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	return &usecase.BusinessPage{
		Businesses: nonNil(businesses),
		Pagination: entity.NewPagination(p, total),
	}, nil
}

// Nearby returns approved listings within the radius ordered by distance. The store
// prefilters by bounding box and the exact great-circle distance decides membership.
func (srv *businessService) Nearby(ctx context.Context, query *entity.NearbyQuery) ([]*entity.Business, error) {
	if !util.ValidCoordinate(query.Latitude, query.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	radius := query.RadiusKm
	if radius <= 0 {
		radius = defaultRadiusKm
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultNearbyLimit
	}
	limit = min(limit, maxNearbyLimit)

	center := orb.Point{query.Longitude, query.Latitude}
	bounds := entity.NewGeoBounds(util.BoundingBox(center, radius))

	candidates, err := srv.businessRepo.FindWithinBounds(ctx, bounds, query.Category, query.PetType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find businesses within bounds")
	}

	nearby := make([]*entity.Business, 0, len(candidates))
	for _, business := range candidates {
		exact := util.HaversineKm(center, orb.Point{business.Longitude, business.Latitude})
		if exact > radius {
			continue
		}
		distance := util.Round(exact, 2)
		business.DistanceKm = &distance
		nearby = append(nearby, business)
	}

	// Stable so that equal distances keep the store's rating order.
	sort.SliceStable(nearby, func(i, j int) bool {
		return *nearby[i].DistanceKm < *nearby[j].DistanceKm
	})

	return nearby[:min(limit, len(nearby))], nil
}

// ChangeStatus applies a moderation decision and notifies the owner of approvals and rejections.
func (srv *businessService) ChangeStatus(ctx context.Context, id uuid.UUID, input *usecase.ChangeStatusInput) (*entity.Business, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(input.Status))
	}

	var (
		changed      *entity.Business
		notification *entity.Notification
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		business, err := srv.findBusiness(ctx, businessRepo, id)
		if err != nil {
			return err
		}

		now := srv.now()
		if err := business.TransitionTo(input.Status, now); err != nil {
			return err
		}
		if err := businessRepo.UpdateStatus(ctx, id, business.Status, business.ApprovedAt); err != nil {
			return errors.Wrap(err, "failed to update business status")
		}

		if msg, ok := moderationNotice(business, input.Reason); ok {
			notification, err = srv.notifier.create(ctx, repoFactory.NewNotificationRepository(), msg, now)
			if err != nil {
				return err
			}
		}
		changed = business

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change business status")
	}

	logFrom(ctx, srv.logger).Info("Business status changed",
		slog.Any("businessID", id),
		slog.String("status", string(changed.Status)),
	)
	srv.notifier.publish(ctx, notification)
	srv.invalidateCache(ctx)

	return changed, nil
}

func (srv *businessService) findBusiness(ctx context.Context, repo repository.BusinessRepository, id uuid.UUID) (*entity.Business, error) {
	business, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

func (srv *businessService) validateBusiness(business *entity.Business) error {
	if err := srv.catalog.checkCategory(business.Category); err != nil {
		return err
	}
	if err := srv.catalog.checkPetTypes(business.PetAllowedTypes); err != nil {
		return err
	}
	if !util.ValidCoordinate(business.Latitude, business.Longitude) {
		return domainerrors.ErrInvalidCoordinates
	}

	return nil
}

// cacheGet reports a hit. Cache failures other than a miss are logged and treated as a miss.
func (srv *businessService) cacheGet(ctx context.Context, key string, dest any) bool {
	err := srv.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		logFrom(ctx, srv.logger).Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	return false
}

func (srv *businessService) cacheSet(ctx context.Context, key string, value any) {
	if err := srv.cache.Set(ctx, key, value, srv.cacheTTL); err != nil {
		logFrom(ctx, srv.logger).Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *businessService) invalidateCache(ctx context.Context) {
	for _, key := range []string{cacheKeyCategories, cacheKeyFeatured} {
		if err := srv.cache.Delete(ctx, key); err != nil {
			logFrom(ctx, srv.logger).Warn("Cache invalidation failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// applyBusinessInput copies every set field except the category, which callers handle.
func applyBusinessInput(business *entity.Business, input *usecase.BusinessInput) {
	setString(&business.Name, input.Name)
	setString(&business.Description, input.Description)
	setString(&business.Phone, input.Phone)
	setString(&business.Email, input.Email)
	setString(&business.Website, input.Website)
	setString(&business.Address, input.Address)
	setString(&business.AddressDetail, input.AddressDetail)
	setString(&business.PostalCode, input.PostalCode)
	setString(&business.HolidayInfo, input.HolidayInfo)
	setString(&business.PetSizeLimit, input.PetSizeLimit)
	setString(&business.PetRules, input.PetRules)
	setString(&business.MainImage, input.MainImage)
	setString(&business.MetaTitle, input.MetaTitle)
	setString(&business.MetaDescription, input.MetaDescription)
	setBool(&business.HasParking, input.HasParking)
	setBool(&business.HasWifi, input.HasWifi)
	setBool(&business.HasOutdoorSeating, input.HasOutdoorSeating)

	if input.Latitude != nil {
		business.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		business.Longitude = *input.Longitude
	}
	if input.PetFee != nil {
		business.PetFee = input.PetFee
	}
	if input.BusinessHours != nil {
		business.BusinessHours = input.BusinessHours
	}
	if input.PetAllowedTypes != nil {
		business.PetAllowedTypes = input.PetAllowedTypes
	}
	if input.PetFacilities != nil {
		business.PetFacilities = input.PetFacilities
	}
	if input.GalleryImages != nil {
		business.GalleryImages = input.GalleryImages
	}
	if input.SearchKeywords != nil {
		business.SearchKeywords = input.SearchKeywords
	}
}

func moderationNotice(business *entity.Business, reason string) (notice, bool) {
	businessID := business.ID
	msg := notice{
		UserID:            business.OwnerID,
		Type:              entity.NotificationTypeBusiness,
		RelatedEntityType: "business",
		RelatedEntityID:   &businessID,
		ActionURL:         "/businesses/" + businessID.String(),
	}

	switch business.Status {
	case entity.BusinessStatusApproved:
		msg.Title = "Business approved"
		msg.Message = business.Name + " is now listed in the directory."
		msg.Priority = entity.PriorityHigh
	case entity.BusinessStatusRejected:
		msg.Title = "Business rejected"
		msg.Message = business.Name + " was not approved."
		if reason != "" {
			msg.Message += " Reason: " + reason
		}
	default:
		return notice{}, false
	}

	return msg, true
}

func categoryDisplayName(code string) string {
	name := strings.ReplaceAll(code, "_", " ")
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
