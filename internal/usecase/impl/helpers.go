// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"petplace/config"
	deliverycontext "petplace/internal/delivery/context"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
)

// clock returns the current time in UTC. Tests replace it per service.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// logFrom returns a request-scoped logger if available, otherwise falls back to the service's logger.
func logFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, fallback)
}

// pager clamps listing parameters to the configured defaults.
type pager struct {
	defaultPerPage int
	maxPerPage     int
}

func newPager(cfg *config.Config) pager {
	p := pager{defaultPerPage: 20, maxPerPage: 50}
	if cfg != nil && cfg.Catalog != nil {
		if cfg.Catalog.DefaultPerPage > 0 {
			p.defaultPerPage = cfg.Catalog.DefaultPerPage
		}
		if cfg.Catalog.MaxPerPage > 0 {
			p.maxPerPage = cfg.Catalog.MaxPerPage
		}
	}

	return p
}

func (p pager) page(page, perPage int) entity.Page {
	return entity.NewPage(page, perPage, p.defaultPerPage, p.maxPerPage)
}

// pageWithMax is used by listings whose upper bound differs from the catalog default.
func (p pager) pageWithMax(page, perPage, maxPerPage int) entity.Page {
	return entity.NewPage(page, perPage, p.defaultPerPage, maxPerPage)
}

// nonNil returns an empty slice for nil so that JSON encodes [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// catalog validates business categories and pet types against config.
type catalog struct {
	categories []string
	petTypes   []string
}

func newCatalog(cfg *config.Config) catalog {
	if cfg == nil || cfg.Catalog == nil {
		return catalog{}
	}

	return catalog{categories: cfg.Catalog.BusinessCategories, petTypes: cfg.Catalog.PetTypes}
}

func (c catalog) checkCategory(category string) error {
	if !slices.Contains(c.categories, category) {
		return domainerrors.ErrInvalidCategory.WithDetails(category)
	}

	return nil
}

func (c catalog) checkPetTypes(petTypes []string) error {
	for _, petType := range petTypes {
		if !slices.Contains(c.petTypes, petType) {
			return domainerrors.ErrInvalidPetType.WithDetails(petType)
		}
	}

	return nil
}
