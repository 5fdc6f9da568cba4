package impl

import (
	"context"
	"log/slog"
	"strings"

	"petplace/config"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxReviewPerPage = 100

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	notifier    *notifier
	autoApprove bool
	pager       pager
	now         clock
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	autoApprove := true
	if params.Config != nil && params.Config.Review != nil {
		autoApprove = params.Config.Review.AutoApprove
	}

	return &reviewService{
		txManager:   params.TxManager,
		reviewRepo:  params.ReviewRepo,
		notifier:    newNotifier(params.Config, params.Publisher, params.Logger),
		autoApprove: autoApprove,
		pager:       newPager(params.Config),
		now:         utcNow,
		logger:      params.Logger,
	}
}

// Create stores the caller's review of a business and refreshes the business rating.
func (srv *reviewService) Create(ctx context.Context, userID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if input.Rating == nil || input.Content == nil || strings.TrimSpace(*input.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating and content are required")
	}
	if err := validateReviewRatings(input); err != nil {
		return nil, err
	}

	status := entity.ReviewStatusPending
	if srv.autoApprove {
		status = entity.ReviewStatusApproved
	}

	var (
		created      *entity.Review
		notification *entity.Notification
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		business, err := businessRepo.FindByID(ctx, input.BusinessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound
			}

			return errors.Wrap(err, "failed to find business")
		}

		exists, err := reviewRepo.ExistsByUserAndBusiness(ctx, userID, input.BusinessID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing review")
		}
		if exists {
			return domainerrors.ErrReviewAlreadyExists
		}

		now := srv.now()
		review := &entity.Review{
			UserID:     userID,
			BusinessID: input.BusinessID,
			Images:     []string{},
			Tags:       []string{},
			Status:     status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		applyReviewInput(review, input)

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrReviewAlreadyExists
			}

			return errors.Wrap(err, "failed to create review")
		}

		if err := recomputeRating(ctx, reviewRepo, businessRepo, input.BusinessID); err != nil {
			return err
		}

		if business.OwnerID != userID {
			reviewID := review.ID
			notification, err = srv.notifier.create(ctx, repoFactory.NewNotificationRepository(), notice{
				UserID:            business.OwnerID,
				Title:             "New review",
				Message:           business.Name + " received a new review.",
				Type:              entity.NotificationTypeReview,
				RelatedEntityType: "review",
				RelatedEntityID:   &reviewID,
				ActionURL:         "/businesses/" + business.ID.String(),
			}, now)
			if err != nil {
				return err
			}
		}
		created = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	logFrom(ctx, srv.logger).Info("Review created",
		slog.Any("reviewID", created.ID),
		slog.Any("businessID", created.BusinessID),
		slog.Int("rating", created.Rating),
	)
	srv.notifier.publish(ctx, notification)

	return created, nil
}

// Get returns a single review.
func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return findReview(ctx, srv.reviewRepo, id)
}

// Update edits the caller's own review. Reviews of other users are reported as missing.
func (srv *reviewService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateReviewRatings(input); err != nil {
		return nil, err
	}

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := findReview(ctx, reviewRepo, id)
		if err != nil {
			return err
		}
		if review.UserID != userID {
			return domainerrors.ErrReviewNotFound
		}

		applyReviewInput(review, input)
		review.UpdatedAt = srv.now()

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		if err := recomputeRating(ctx, reviewRepo, repoFactory.NewBusinessRepository(), review.BusinessID); err != nil {
			return err
		}
		updated = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return updated, nil
}

// Delete removes the caller's own review and refreshes the business rating.
func (srv *reviewService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := findReview(ctx, reviewRepo, id)
		if err != nil {
			return err
		}
		if review.UserID != userID {
			return domainerrors.ErrReviewNotFound
		}

		if err := reviewRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return recomputeRating(ctx, reviewRepo, repoFactory.NewBusinessRepository(), review.BusinessID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// Moderate sets a review's status and refreshes the business rating.
func (srv *reviewService) Moderate(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) (*entity.Review, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown review status " + string(status))
	}

	var moderated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := findReview(ctx, reviewRepo, id)
		if err != nil {
			return err
		}

		if err := reviewRepo.UpdateStatus(ctx, id, status); err != nil {
			return errors.Wrap(err, "failed to update review status")
		}
		review.Status = status
		review.UpdatedAt = srv.now()

		if err := recomputeRating(ctx, reviewRepo, repoFactory.NewBusinessRepository(), review.BusinessID); err != nil {
			return err
		}
		moderated = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to moderate review")
	}

	logFrom(ctx, srv.logger).Info("Review moderated", slog.Any("reviewID", id), slog.String("status", string(status)))

	return moderated, nil
}

// ListForBusiness returns one page of a business's approved reviews with its rating summary.
func (srv *reviewService) ListForBusiness(ctx context.Context, businessID uuid.UUID, sort entity.ReviewSort, page, perPage int) (*usecase.BusinessReviews, error) {
	if sort == "" {
		sort = entity.ReviewSortNewest
	}

	p := srv.pager.page(page, perPage)
	reviews, total, err := srv.reviewRepo.List(ctx, entity.ReviewFilter{
		BusinessID: &businessID,
		Status:     entity.ReviewStatusApproved,
		Sort:       sort,
	}, p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business reviews")
	}

	distribution, err := srv.reviewRepo.RatingDistribution(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rating distribution")
	}
	full := entity.NewRatingDistribution()
	for star, count := range distribution {
		full[star] = count
	}

	aggregate, err := srv.reviewRepo.AggregateApproved(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	return &usecase.BusinessReviews{
		Reviews:      nonNil(reviews),
		Pagination:   entity.NewPagination(p, total),
		Distribution: full,
		Average:      aggregate.Average,
		Total:        aggregate.Count,
	}, nil
}

// ListForUser returns one page of the user's reviews, newest first.
func (srv *reviewService) ListForUser(ctx context.Context, userID uuid.UUID, page, perPage int) (*usecase.ReviewPage, error) {
	return srv.list(ctx, entity.ReviewFilter{UserID: &userID, Sort: entity.ReviewSortNewest}, srv.pager.page(page, perPage))
}

// List returns one page of reviews across businesses.
func (srv *reviewService) List(ctx context.Context, input *usecase.ListReviewsInput) (*usecase.ReviewPage, error) {
	if (input.MinRating != 0 && !entity.ValidRating(input.MinRating)) || (input.MaxRating != 0 && !entity.ValidRating(input.MaxRating)) {
		return nil, domainerrors.ErrInvalidRating
	}

	sort := input.Sort
	if sort == "" {
		sort = entity.ReviewSortNewest
	}

	return srv.list(ctx, entity.ReviewFilter{
		BusinessID: input.BusinessID,
		UserID:     input.UserID,
		MinRating:  input.MinRating,
		MaxRating:  input.MaxRating,
		Sort:       sort,
	}, srv.pager.pageWithMax(input.Page, input.PerPage, maxReviewPerPage))
}

// MarkHelpful adds one helpful vote.
func (srv *reviewService) MarkHelpful(ctx context.Context, id uuid.UUID) error {
	if err := srv.reviewRepo.IncrementHelpful(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to mark review helpful")
	}

	return nil
}

func (srv *reviewService) list(ctx context.Context, filter entity.ReviewFilter, page entity.Page) (*usecase.ReviewPage, error) {
	reviews, total, err := srv.reviewRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewPage{
		Reviews:    nonNil(reviews),
		Pagination: entity.NewPagination(page, total),
	}, nil
}

func findReview(ctx context.Context, repo repository.ReviewRepository, id uuid.UUID) (*entity.Review, error) {
	review, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// recomputeRating rewrites the business rating from its approved reviews.
func recomputeRating(ctx context.Context, reviewRepo repository.ReviewRepository, businessRepo repository.BusinessRepository, businessID uuid.UUID) error {
	aggregate, err := reviewRepo.AggregateApproved(ctx, businessID)
	if err != nil {
		return errors.Wrap(err, "failed to aggregate ratings")
	}
	if err := businessRepo.UpdateRating(ctx, businessID, aggregate); err != nil {
		return errors.Wrap(err, "failed to update business rating")
	}

	return nil
}

func validateReviewRatings(input *usecase.ReviewInput) error {
	for _, rating := range []*int{
		input.Rating,
		input.CleanlinessRating,
		input.ServiceRating,
		input.FacilitiesRating,
		input.PetFriendlinessRating,
	} {
		if rating != nil && !entity.ValidRating(*rating) {
			return domainerrors.ErrInvalidRating
		}
	}

	return nil
}

func applyReviewInput(review *entity.Review, input *usecase.ReviewInput) {
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	setString(&review.Title, input.Title)
	setString(&review.Content, input.Content)
	setString(&review.PetType, input.PetType)
	setString(&review.PetSize, input.PetSize)
	setString(&review.VisitPurpose, input.VisitPurpose)
	setBool(&review.VisitedWithPet, input.VisitedWithPet)

	if input.Images != nil {
		review.Images = input.Images
	}
	if input.Tags != nil {
		review.Tags = input.Tags
	}
	if input.CleanlinessRating != nil {
		review.CleanlinessRating = input.CleanlinessRating
	}
	if input.ServiceRating != nil {
		review.ServiceRating = input.ServiceRating
	}
	if input.FacilitiesRating != nil {
		review.FacilitiesRating = input.FacilitiesRating
	}
	if input.PetFriendlinessRating != nil {
		review.PetFriendlinessRating = input.PetFriendlinessRating
	}
	if input.VisitDate != nil {
		review.VisitDate = input.VisitDate
	}
	if input.Recommended != nil {
		review.Recommended = input.Recommended
	}
}
