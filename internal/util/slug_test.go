package util

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "ascii words", input: "Best Dog Parks in Seoul", expected: "best-dog-parks-in-seoul"},
		{name: "ampersand spelled out", input: "Cats & Dogs -- Together!", expected: "cats-and-dogs-together"},
		{name: "surrounding space", input: "  Hello  ", expected: "hello"},
		{name: "accents transliterated", input: "Café Crème", expected: "cafe-creme"},
		{name: "digits kept", input: "Top 10 Toys", expected: "top-10-toys"},
		{name: "only symbols", input: "!!!", expected: ""},
		{name: "cut at word boundary", input: "Best Dog Parks in Seoul", maxLen: 16, expected: "best-dog-parks"},
		{name: "single long word", input: "Supercalifragilistic", maxLen: 5, expected: "super"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Slugify(tt.input, tt.maxLen))
		})
	}
}

func TestSlugify_Hangul(t *testing.T) {
	t.Parallel()

	got := Slugify("강아지 카페 추천", 0)

	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`), got)
	assert.NotEmpty(t, got)
}

func TestTimestampedSlug(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	assert.Equal(t, "dog-parks-20240305140709", TimestampedSlug("dog-parks", now))
}
