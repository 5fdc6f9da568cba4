package postgres

import (
	"context"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// Create persists a post and links it to its already stored tags.
func (repo *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	postM := fromBlogPostDomain(post)

	// Tags.* keeps the join rows but skips upserting the tag rows themselves.
	if err := repo.db.WithContext(ctx).
		Omit("Author", "AffiliateLinks", "Tags.*").
		Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a post with its author and tags.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a post with its author, tags and active affiliate links.
func (repo *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *blogRepository) findOne(ctx context.Context, cond string, arg any) (*entity.BlogPost, error) {
	var postM model.BlogPostModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("AffiliateLinks", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("priority DESC").Order("created_at ASC")
		}).
		Where(cond, arg).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post")
	}

	return toBlogPostDomain(&postM), nil
}

// ExistsBySlug reports whether a slug is already taken.
func (repo *blogRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug")
	}

	return count > 0, nil
}

// Update writes the editable columns of a post and replaces its tag set.
func (repo *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	postM := fromBlogPostDomain(post)
	db := repo.db.WithContext(ctx)

	result := db.
		Model(&model.BlogPostModel{}).
		Where("id = ?", post.ID).
		Select(
			"title", "slug", "content", "excerpt", "featured_image", "category", "status", "published_at",
			"scheduled_at", "meta_title", "meta_description", "estimated_read_time", "related_pet_types", "updated_at",
		).
		Updates(postM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	if post.Tags != nil {
		target := &model.BlogPostModel{ID: post.ID}
		if err := db.Model(target).Omit("Tags.*").Association("Tags").Replace(postM.Tags); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to replace blog post tags")
		}
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes a post. Affiliate links and tag links go with it through cascading keys.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogPostModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete blog post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// List returns a filtered, sorted page of posts with authors and tags.
func (repo *blogRepository) List(ctx context.Context, filter entity.PostFilter, page entity.Page) ([]*entity.BlogPost, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BlogPostModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.Where(
			"id IN (SELECT bpt.blog_post_model_id FROM blog_post_tags bpt JOIN tags t ON t.id = bpt.tag_model_id WHERE t.slug = ? OR t.name = ?)",
			filter.Tag, filter.Tag,
		)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count blog posts")
	}

	var postModels []*model.BlogPostModel
	if err := query.
		Preload("Author").
		Preload("Tags").
		Order(postOrder(filter.Sort)).
		Scopes(paginate(page)).
		Find(&postModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list blog posts")
	}

	posts := make([]*entity.BlogPost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toBlogPostDomain(postM))
	}

	return posts, total, nil
}

// IncrementViewCount bumps view_count atomically.
func (repo *blogRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return repo.increment(ctx, id, "view_count")
}

// IncrementLikeCount bumps like_count atomically.
func (repo *blogRepository) IncrementLikeCount(ctx context.Context, id uuid.UUID) error {
	return repo.increment(ctx, id, "like_count")
}

func (repo *blogRepository) increment(ctx context.Context, id uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to increment %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Categories returns the distinct categories of published posts.
func (repo *blogRepository) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}

	if err := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("status = ?", string(entity.PostStatusPublished)).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blog categories")
	}

	return categories, nil
}

// CountByAuthor counts an author's posts per status.
func (repo *blogRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (map[entity.PostStatus]int64, error) {
	var rows []statusCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Select("status, COUNT(*) AS count").
		Where("author_id = ?", authorID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count blog posts by author")
	}

	counts := make(map[entity.PostStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.PostStatus(row.Status)] = row.Count
	}

	return counts, nil
}

func postOrder(sort entity.PostSort) string {
	switch sort {
	case entity.PostSortOldest:
		return "created_at ASC"
	case entity.PostSortPopular:
		return "view_count DESC, created_at DESC"
	case entity.PostSortTitle:
		return "title ASC"
	default:
		return "created_at DESC"
	}
}

// --- Mapper Functions ---

// toBlogPostDomain converts a GORM BlogPostModel to a domain BlogPost entity.
func toBlogPostDomain(data *model.BlogPostModel) *entity.BlogPost {
	if data == nil {
		return nil
	}

	post := &entity.BlogPost{
		ID:                data.ID,
		AuthorID:          data.AuthorID,
		Title:             data.Title,
		Slug:              data.Slug,
		Content:           data.Content,
		Excerpt:           data.Excerpt,
		FeaturedImage:     data.FeaturedImage,
		Category:          data.Category,
		Tags:              make([]*entity.Tag, 0, len(data.Tags)),
		Status:            entity.PostStatus(data.Status),
		PublishedAt:       data.PublishedAt,
		ScheduledAt:       data.ScheduledAt,
		MetaTitle:         data.MetaTitle,
		MetaDescription:   data.MetaDescription,
		ViewCount:         data.ViewCount,
		LikeCount:         data.LikeCount,
		EstimatedReadTime: data.EstimatedReadTime,
		RelatedPetTypes:   stringsOf(data.RelatedPetTypes),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	for i := range data.Tags {
		post.Tags = append(post.Tags, toTagDomain(&data.Tags[i]))
	}
	if data.Author != nil {
		post.Author = toUserDomain(data.Author).Summary()
	}
	if len(data.AffiliateLinks) > 0 {
		post.AffiliateLinks = make([]*entity.AffiliateLink, 0, len(data.AffiliateLinks))
		for i := range data.AffiliateLinks {
			post.AffiliateLinks = append(post.AffiliateLinks, toAffiliateLinkDomain(&data.AffiliateLinks[i]))
		}
	}

	return post
}

// fromBlogPostDomain converts a domain BlogPost entity to a GORM BlogPostModel. Only tag ids are carried.
func fromBlogPostDomain(data *entity.BlogPost) *model.BlogPostModel {
	if data == nil {
		return nil
	}

	postM := &model.BlogPostModel{
		ID:                data.ID,
		AuthorID:          data.AuthorID,
		Title:             data.Title,
		Slug:              data.Slug,
		Content:           data.Content,
		Excerpt:           data.Excerpt,
		FeaturedImage:     data.FeaturedImage,
		Category:          data.Category,
		Status:            string(data.Status),
		PublishedAt:       data.PublishedAt,
		ScheduledAt:       data.ScheduledAt,
		MetaTitle:         data.MetaTitle,
		MetaDescription:   data.MetaDescription,
		ViewCount:         data.ViewCount,
		LikeCount:         data.LikeCount,
		EstimatedReadTime: data.EstimatedReadTime,
		RelatedPetTypes:   pq.StringArray(data.RelatedPetTypes),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	for _, tag := range data.Tags {
		postM.Tags = append(postM.Tags, *fromTagDomain(tag))
	}

	return postM
}
