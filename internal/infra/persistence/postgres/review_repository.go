package postgres

import (
	"context"
	"time"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"
	"petplace/internal/util"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review. The (user, business) unique index rejects duplicates.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Omit("User", "Business").Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review with its author and business name.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Business").
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ExistsByUserAndBusiness reports whether the user already reviewed the business.
func (repo *reviewRepository) ExistsByUserAndBusiness(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existing review")
	}

	return count > 0, nil
}

// Update writes the editable columns of a review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Select(
			"rating", "title", "content", "images", "pet_type", "pet_size", "visited_with_pet",
			"cleanliness_rating", "service_rating", "facilities_rating", "pet_friendliness_rating",
			"tags", "visit_purpose", "visit_date", "recommended", "status", "updated_at",
		).
		Updates(reviewM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// UpdateStatus sets the moderation status of a review.
func (repo *reviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// List returns a filtered, sorted page of reviews with authors and business names.
func (repo *reviewRepository) List(ctx context.Context, filter entity.ReviewFilter, page entity.Page) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{})
	if filter.BusinessID != nil {
		query = query.Where("business_id = ?", *filter.BusinessID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if filter.MaxRating > 0 {
		query = query.Where("rating <= ?", filter.MaxRating)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := query.
		Preload("User").
		Preload("Business").
		Order(reviewOrder(filter.Sort)).
		Order("id DESC").
		Scopes(paginate(page)).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

type ratingAggregateRow struct {
	Average *float64
	Count   int
}

// AggregateApproved averages the ratings of the approved reviews of a business.
func (repo *reviewRepository) AggregateApproved(ctx context.Context, businessID uuid.UUID) (entity.RatingAggregate, error) {
	var row ratingAggregateRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("AVG(rating) AS average, COUNT(*) AS count").
		Where("business_id = ? AND status = ?", businessID, string(entity.ReviewStatusApproved)).
		Scan(&row).Error; err != nil {
		return entity.RatingAggregate{}, errors.Wrap(err, "failed to aggregate ratings")
	}

	// AVG over zero rows is NULL.
	if row.Average == nil || row.Count == 0 {
		return entity.RatingAggregate{}, nil
	}

	return entity.RatingAggregate{
		Average: util.Round(*row.Average, 1),
		Count:   row.Count,
	}, nil
}

type ratingCountRow struct {
	Rating int
	Count  int64
}

// RatingDistribution counts the approved reviews of a business per star.
func (repo *reviewRepository) RatingDistribution(ctx context.Context, businessID uuid.UUID) (entity.RatingDistribution, error) {
	var rows []ratingCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("rating, COUNT(*) AS count").
		Where("business_id = ? AND status = ?", businessID, string(entity.ReviewStatusApproved)).
		Group("rating").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute rating distribution")
	}

	distribution := entity.NewRatingDistribution()
	for _, row := range rows {
		if entity.ValidRating(row.Rating) {
			distribution[row.Rating] = row.Count
		}
	}

	return distribution, nil
}

// IncrementHelpful bumps helpful_count atomically.
func (repo *reviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment helpful count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// CountByUser counts a user's reviews per status.
func (repo *reviewRepository) CountByUser(ctx context.Context, userID uuid.UUID) (map[entity.ReviewStatus]int64, error) {
	var rows []statusCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count reviews by user")
	}

	counts := make(map[entity.ReviewStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.ReviewStatus(row.Status)] = row.Count
	}

	return counts, nil
}

func reviewOrder(sort entity.ReviewSort) string {
	switch sort {
	case entity.ReviewSortOldest:
		return "created_at ASC"
	case entity.ReviewSortRatingHigh:
		return "rating DESC, created_at DESC"
	case entity.ReviewSortRatingLow:
		return "rating ASC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:                    data.ID,
		UserID:                data.UserID,
		BusinessID:            data.BusinessID,
		Rating:                data.Rating,
		Title:                 data.Title,
		Content:               data.Content,
		Images:                stringsOf(data.Images),
		PetType:               data.PetType,
		PetSize:               data.PetSize,
		VisitedWithPet:        data.VisitedWithPet,
		CleanlinessRating:     data.CleanlinessRating,
		ServiceRating:         data.ServiceRating,
		FacilitiesRating:      data.FacilitiesRating,
		PetFriendlinessRating: data.PetFriendlinessRating,
		Tags:                  stringsOf(data.Tags),
		VisitPurpose:          data.VisitPurpose,
		VisitDate:             data.VisitDate,
		Recommended:           data.Recommended,
		Status:                entity.ReviewStatus(data.Status),
		HelpfulCount:          data.HelpfulCount,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
	if data.User != nil {
		review.Author = toUserDomain(data.User).Summary()
	}
	if data.Business != nil {
		review.BusinessName = data.Business.Name
	}

	return review
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		BusinessID:            data.BusinessID,
		Rating:                data.Rating,
		Title:                 data.Title,
		Content:               data.Content,
		Images:                pq.StringArray(data.Images),
		PetType:               data.PetType,
		PetSize:               data.PetSize,
		VisitedWithPet:        data.VisitedWithPet,
		CleanlinessRating:     data.CleanlinessRating,
		ServiceRating:         data.ServiceRating,
		FacilitiesRating:      data.FacilitiesRating,
		PetFriendlinessRating: data.PetFriendlinessRating,
		Tags:                  pq.StringArray(data.Tags),
		VisitPurpose:          data.VisitPurpose,
		VisitDate:             data.VisitDate,
		Recommended:           data.Recommended,
		Status:                string(data.Status),
		HelpfulCount:          data.HelpfulCount,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
