package handler

import (
	"log/slog"
	"net/http"

	"petplace/internal/delivery/api/response"
	"petplace/internal/domain/entity"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TaxonomyHandlerParams holds dependencies for TaxonomyHandler, injected by Fx.
type TaxonomyHandlerParams struct {
	fx.In

	TaxonomyUC usecase.TaxonomyUsecase
	Logger     *slog.Logger
}

// TaxonomyHandler serves categories and tags.
type TaxonomyHandler struct {
	taxonomyUC usecase.TaxonomyUsecase
	logger     *slog.Logger
}

// NewTaxonomyHandler is the constructor for TaxonomyHandler
func NewTaxonomyHandler(params TaxonomyHandlerParams) *TaxonomyHandler {
	return &TaxonomyHandler{
		taxonomyUC: params.TaxonomyUC,
		logger:     params.Logger,
	}
}

// CategoriesQuery selects the category tree
type CategoriesQuery struct {
	Type string `query:"type"`
}

// TrendingTagsQuery narrows trending tags
type TrendingTagsQuery struct {
	Type  string `query:"type"`
	Limit int    `query:"limit" validate:"omitempty,min=1"`
}

// CreateCategoryRequest is the body of POST /api/admin/categories
type CreateCategoryRequest struct {
	ParentID     *uuid.UUID `json:"parent_id"`
	Name         string     `json:"name" validate:"required,max=100"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon" validate:"max=50"`
	CategoryType string     `json:"category_type" validate:"required"`
	OrderIndex   int        `json:"order_index"`
}

// Categories returns the active categories of a type as a tree.
func (h *TaxonomyHandler) Categories(c echo.Context) error {
	var query CategoriesQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	categories, err := h.taxonomyUC.ListCategories(c.Request().Context(), entity.CategoryType(query.Type))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// TrendingTags returns the most used tags.
func (h *TaxonomyHandler) TrendingTags(c echo.Context) error {
	var query TrendingTagsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	tags, err := h.taxonomyUC.TrendingTags(c.Request().Context(), entity.TagType(query.Type), query.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "")
}

// CreateCategory adds a category. Admin only.
func (h *TaxonomyHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.taxonomyUC.CreateCategory(c.Request().Context(), &usecase.CreateCategoryInput{
		ParentID:     req.ParentID,
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		CategoryType: entity.CategoryType(req.CategoryType),
		OrderIndex:   req.OrderIndex,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}
