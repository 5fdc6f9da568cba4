package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"petplace/config"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/usecase"
	"petplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPostCategory = "general"
	fallbackSlug        = "post"
	maxPostSlugLength   = 200
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager    repository.TransactionManager
	blogRepo     repository.BlogRepository
	tagRepo      repository.TagRepository
	shortURLBase string
	pager        pager
	now          clock
	logger       *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BlogRepo  repository.BlogRepository
	TagRepo   repository.TagRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager:    params.TxManager,
		blogRepo:     params.BlogRepo,
		tagRepo:      params.TagRepo,
		shortURLBase: shortURLBase(params.Config),
		pager:        newPager(params.Config),
		now:          utcNow,
		logger:       params.Logger,
	}
}

// List returns one page of posts. Only published posts are listed unless a status is given.
func (srv *blogService) List(ctx context.Context, input *usecase.ListPostsInput) (*usecase.PostPage, error) {
	status := input.Status
	if status == "" {
		status = entity.PostStatusPublished
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	sort := input.Sort
	if sort == "" {
		sort = entity.PostSortNewest
	}

	page := srv.pager.page(input.Page, input.PerPage)
	posts, total, err := srv.blogRepo.List(ctx, entity.PostFilter{
		Status:   status,
		Search:   strings.TrimSpace(input.Search),
		Category: input.Category,
		Tag:      input.Tag,
		Sort:     sort,
	}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return &usecase.PostPage{
		Posts:      nonNil(posts),
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// GetBySlug returns a post with its tags and affiliate links and counts the view.
func (srv *blogService) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := srv.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	if err := srv.blogRepo.IncrementViewCount(ctx, post.ID); err != nil {
		logFrom(ctx, srv.logger).Warn("Failed to count post view", slog.Any("postID", post.ID), slog.Any("error", err))
	} else {
		post.ViewCount++
	}

	return post, nil
}

// Create writes a post with its tags and affiliate links in one transaction.
func (srv *blogService) Create(ctx context.Context, authorID uuid.UUID, input *usecase.PostInput) (*entity.BlogPost, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" || input.Content == nil || strings.TrimSpace(*input.Content) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and content are required")
	}
	for _, link := range input.AffiliateLinks {
		if err := validateLinkInput(link); err != nil {
			return nil, err
		}
	}

	var created *entity.BlogPost
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.NewBlogRepository()
		now := srv.now()

		slug, err := srv.uniqueSlug(ctx, blogRepo, *input.Title, now)
		if err != nil {
			return err
		}

		post := &entity.BlogPost{
			AuthorID:        authorID,
			Slug:            slug,
			Category:        defaultPostCategory,
			Status:          entity.PostStatusDraft,
			RelatedPetTypes: []string{},
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := applyPostInput(post, input, now); err != nil {
			return err
		}
		if input.Excerpt == nil || *input.Excerpt == "" {
			post.Excerpt = entity.ExcerptOf(post.Content)
		}

		post.Tags, err = resolveTags(ctx, repoFactory.NewTagRepository(), nonNil(input.Tags))
		if err != nil {
			return err
		}

		if err := blogRepo.Create(ctx, post); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlug) {
				return domainerrors.ErrSlugTaken
			}

			return errors.Wrap(err, "failed to create post")
		}

		if len(input.AffiliateLinks) > 0 {
			affiliateRepo := repoFactory.NewAffiliateRepository()
			for _, linkInput := range input.AffiliateLinks {
				link := newAffiliateLink(post.ID, linkInput, srv.shortURLBase, now)
				if err := affiliateRepo.CreateLink(ctx, link); err != nil {
					return errors.Wrap(err, "failed to create affiliate link")
				}
				post.AffiliateLinks = append(post.AffiliateLinks, link)
			}
		}
		created = post

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	logFrom(ctx, srv.logger).Info("Blog post created",
		slog.Any("postID", created.ID),
		slog.String("slug", created.Slug),
		slog.Int("affiliateLinks", len(created.AffiliateLinks)),
	)

	return created, nil
}

// Update edits the caller's own post. A non-nil Tags replaces the tag set.
func (srv *blogService) Update(ctx context.Context, authorID, id uuid.UUID, input *usecase.PostInput) (*entity.BlogPost, error) {
	var updated *entity.BlogPost
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.NewBlogRepository()

		post, err := findPost(ctx, blogRepo, id)
		if err != nil {
			return err
		}
		if post.AuthorID != authorID {
			return domainerrors.ErrPostNotFound
		}

		now := srv.now()
		if err := applyPostInput(post, input, now); err != nil {
			return err
		}
		post.UpdatedAt = now

		if input.Tags != nil {
			post.Tags, err = resolveTags(ctx, repoFactory.NewTagRepository(), input.Tags)
			if err != nil {
				return err
			}
		}

		if err := blogRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		updated = post

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	return updated, nil
}

// Delete removes the caller's own post together with its affiliate links.
func (srv *blogService) Delete(ctx context.Context, authorID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.NewBlogRepository()

		post, err := findPost(ctx, blogRepo, id)
		if err != nil {
			return err
		}
		if post.AuthorID != authorID {
			return domainerrors.ErrPostNotFound
		}

		if err := blogRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete post")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}

	logFrom(ctx, srv.logger).Info("Blog post deleted", slog.Any("postID", id))

	return nil
}

// Like adds one like.
func (srv *blogService) Like(ctx context.Context, id uuid.UUID) error {
	if err := srv.blogRepo.IncrementLikeCount(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to like post")
	}

	return nil
}

// Categories returns the distinct categories of published posts.
func (srv *blogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.blogRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list post categories")
	}

	return nonNil(categories), nil
}

// Tags returns every tag.
func (srv *blogService) Tags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return nonNil(tags), nil
}

// uniqueSlug derives a slug from the title and adds a timestamp suffix when it is taken.
func (srv *blogService) uniqueSlug(ctx context.Context, repo repository.BlogRepository, title string, now time.Time) (string, error) {
	slug := util.Slugify(title, maxPostSlugLength)
	if slug == "" {
		slug = fallbackSlug
	}

	taken, err := repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return "", errors.Wrap(err, "failed to check slug")
	}
	if taken {
		slug = util.TimestampedSlug(slug, now)
	}

	return slug, nil
}

func findPost(ctx context.Context, repo repository.BlogRepository, id uuid.UUID) (*entity.BlogPost, error) {
	post, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// resolveTags gets or creates every named tag and counts one use of each.
func resolveTags(ctx context.Context, repo repository.TagRepository, names []string) ([]*entity.Tag, error) {
	tags := make([]*entity.Tag, 0, len(names))
	ids := make([]uuid.UUID, 0, len(names))
	seen := make(map[uuid.UUID]struct{}, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		tag, err := repo.FindOrCreate(ctx, name, entity.TagTypeBlog)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve tag %q", name)
		}
		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}
		tags = append(tags, tag)
		ids = append(ids, tag.ID)
	}

	if len(ids) > 0 {
		if err := repo.IncrementUsage(ctx, ids); err != nil {
			return nil, errors.Wrap(err, "failed to count tag usage")
		}
	}

	return tags, nil
}

func applyPostInput(post *entity.BlogPost, input *usecase.PostInput, now time.Time) error {
	setString(&post.Title, input.Title)
	setString(&post.Excerpt, input.Excerpt)
	setString(&post.FeaturedImage, input.FeaturedImage)
	setString(&post.MetaTitle, input.MetaTitle)
	setString(&post.MetaDescription, input.MetaDescription)

	if input.Content != nil {
		post.Content = *input.Content
		post.EstimatedReadTime = entity.ReadTimeMinutes(post.Content)
	}
	if input.Category != nil && *input.Category != "" {
		post.Category = *input.Category
	}
	if input.RelatedPetTypes != nil {
		post.RelatedPetTypes = input.RelatedPetTypes
	}
	if input.ScheduledAt != nil {
		post.ScheduledAt = input.ScheduledAt
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(*input.Status))
		}
		if *input.Status == entity.PostStatusScheduled && post.ScheduledAt == nil {
			return domainerrors.ErrValidationFailed.WithDetails("scheduled posts need scheduled_at")
		}
		if err := post.TransitionTo(*input.Status, now); err != nil {
			return err
		}
	}

	return nil
}
