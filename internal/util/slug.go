package util

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Slugify transliterates s to a lowercase ASCII slug. A positive maxLen caps the result,
// cutting back to the last whole word when possible.
func Slugify(s string, maxLen int) string {
	out := slug.Make(s)
	if maxLen <= 0 || len(out) <= maxLen {
		return out
	}

	out = out[:maxLen]
	if i := strings.LastIndexByte(out, '-'); i > 0 {
		out = out[:i]
	}

	return strings.Trim(out, "-")
}

// TimestampedSlug appends a -yyyymmddhhmmss suffix to slug.
func TimestampedSlug(slug string, now time.Time) string {
	return slug + "-" + now.UTC().Format("20060102150405")
}
