package postgres

import (
	"petplace/internal/domain/entity"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// paginate applies LIMIT/OFFSET for a page.
func paginate(page entity.Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page.Offset()).Limit(page.PerPage)
	}
}

// stringsOf returns a non-nil slice so empty arrays serialize as [].
func stringsOf(arr pq.StringArray) []string {
	if arr == nil {
		return []string{}
	}

	return []string(arr)
}

// likePattern wraps a search term for a case-insensitive substring match.
func likePattern(term string) string {
	return "%" + term + "%"
}
