package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Simple name", "Grains", "grains"},
		{"Spaces collapse", "Fresh  Vegetables", "fresh-vegetables"},
		{"Punctuation stripped", "Oil & Ghee (Cooking)", "oil-ghee-cooking"},
		{"Leading and trailing separators trimmed", "--Dairy--", "dairy"},
		{"Digits kept", "Rice 25kg", "rice-25kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_EmptyFallback(t *testing.T) {
	slug := Slugify("!!!")
	assert.True(t, strings.HasPrefix(slug, "cat-"), "slug %q should carry the fallback prefix", slug)
	assert.Greater(t, len(slug), len("cat-"))
}
