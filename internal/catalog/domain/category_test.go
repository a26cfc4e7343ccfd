package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, IsValidCategory(c))
	}
	assert.False(t, IsValidCategory("Candles"), "identifiers are the raw lower-case members")
	assert.False(t, IsValidCategory("toys"))
	assert.False(t, IsValidCategory(""))
}

func TestMetadataFor(t *testing.T) {
	meta, ok := MetadataFor(CategoryGiftBox)
	assert.True(t, ok)
	assert.Equal(t, "Perfect Gifts for Every Occasion", meta.Title)
	assert.NotEmpty(t, meta.MetaDescription)
	assert.NotEmpty(t, meta.Keywords)

	_, ok = MetadataFor("unknown")
	assert.False(t, ok)
}

func TestMetadataForSlug(t *testing.T) {
	category, meta, ok := MetadataForSlug("gift-box")
	assert.True(t, ok)
	assert.Equal(t, CategoryGiftBox, category)
	assert.NotEmpty(t, meta.Title)

	// Slug decoding is case-insensitive for categories
	category, _, ok = MetadataForSlug("Named-Gift")
	assert.True(t, ok)
	assert.Equal(t, CategoryNamedGift, category)

	_, _, ok = MetadataForSlug("no-such-category")
	assert.False(t, ok)
}
