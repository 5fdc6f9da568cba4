package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petplace/internal/delivery/api/response"
	"petplace/internal/domain/entity"
	"petplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogUsecase
	Logger *slog.Logger
}

// BlogHandler serves blog endpoints.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		logger: params.Logger,
	}
}

// AffiliateLinkRequest describes a partner product link
type AffiliateLinkRequest struct {
	ProductName        string     `json:"product_name" validate:"required,max=200"`
	ProductDescription string     `json:"product_description"`
	ProductImage       string     `json:"product_image"`
	ProductPrice       *int64     `json:"product_price" validate:"omitempty,min=0"`
	ProductCategory    string     `json:"product_category"`
	Partner            string     `json:"partner" validate:"required"`
	PartnerProductID   string     `json:"partner_product_id"`
	OriginalURL        string     `json:"original_url" validate:"required,url"`
	AffiliateURL       string     `json:"affiliate_url" validate:"required,url"`
	CommissionRate     float64    `json:"commission_rate" validate:"min=0"`
	CommissionType     string     `json:"commission_type" validate:"omitempty,oneof=percentage fixed"`
	IsFeatured         bool       `json:"is_featured"`
	Priority           int        `json:"priority"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

func (r *AffiliateLinkRequest) toInput() usecase.AffiliateLinkInput {
	return usecase.AffiliateLinkInput{
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
		ProductImage:       r.ProductImage,
		ProductPrice:       r.ProductPrice,
		ProductCategory:    r.ProductCategory,
		Partner:            entity.Partner(r.Partner),
		PartnerProductID:   r.PartnerProductID,
		OriginalURL:        r.OriginalURL,
		AffiliateURL:       r.AffiliateURL,
		CommissionRate:     r.CommissionRate,
		CommissionType:     entity.CommissionType(r.CommissionType),
		IsFeatured:         r.IsFeatured,
		Priority:           r.Priority,
		ExpiresAt:          r.ExpiresAt,
	}
}

// PostRequest is the body of post create and update. Omitted fields are left unchanged on update.
type PostRequest struct {
	Title           *string                 `json:"title" validate:"omitempty,min=1,max=200"`
	Content         *string                 `json:"content"`
	Excerpt         *string                 `json:"excerpt"`
	FeaturedImage   *string                 `json:"featured_image"`
	Category        *string                 `json:"category" validate:"omitempty,max=50"`
	Tags            []string                `json:"tags"`
	Status          *string                 `json:"status" validate:"omitempty,oneof=draft published scheduled archived"`
	ScheduledAt     *time.Time              `json:"scheduled_at"`
	MetaTitle       *string                 `json:"meta_title"`
	MetaDescription *string                 `json:"meta_description"`
	RelatedPetTypes []string                `json:"related_pet_types"`
	AffiliateLinks  []*AffiliateLinkRequest `json:"affiliate_links" validate:"dive"`
}

func (r *PostRequest) toInput() *usecase.PostInput {
	input := &usecase.PostInput{
		Title:           r.Title,
		Content:         r.Content,
		Excerpt:         r.Excerpt,
		FeaturedImage:   r.FeaturedImage,
		Category:        r.Category,
		Tags:            r.Tags,
		ScheduledAt:     r.ScheduledAt,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		RelatedPetTypes: r.RelatedPetTypes,
	}
	if r.Status != nil {
		status := entity.PostStatus(*r.Status)
		input.Status = &status
	}
	for _, link := range r.AffiliateLinks {
		linkInput := link.toInput()
		input.AffiliateLinks = append(input.AffiliateLinks, &linkInput)
	}

	return input
}

// ListPostsQuery filters the blog listing
type ListPostsQuery struct {
	PageQuery
	Status   string `query:"status" validate:"omitempty,oneof=draft published scheduled archived"`
	Search   string `query:"search"`
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Sort     string `query:"sort" validate:"omitempty,oneof=newest oldest popular title"`
}

// List returns a page of posts. Published only unless a status is given.
func (h *BlogHandler) List(c echo.Context) error {
	var query ListPostsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.blogUC.List(c.Request().Context(), &usecase.ListPostsInput{
		Status:   entity.PostStatus(query.Status),
		Search:   query.Search,
		Category: query.Category,
		Tag:      query.Tag,
		Sort:     entity.PostSort(query.Sort),
		Page:     query.Page,
		PerPage:  query.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page.Posts, page.Pagination)
}

// GetBySlug returns one post with its tags and links and counts the view.
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	post, err := h.blogUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// Create writes a post authored by the caller.
func (h *BlogHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.blogUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// Update edits one of the caller's posts.
func (h *BlogHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.blogUC.Update(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated successfully")
}

// Delete removes one of the caller's posts with its affiliate links.
func (h *BlogHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.blogUC.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}

// Like counts a like.
func (h *BlogHandler) Like(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.blogUC.Like(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post liked")
}

// Categories lists the distinct post categories.
func (h *BlogHandler) Categories(c echo.Context) error {
	categories, err := h.blogUC.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Tags lists every tag.
func (h *BlogHandler) Tags(c echo.Context) error {
	tags, err := h.blogUC.Tags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "")
}
