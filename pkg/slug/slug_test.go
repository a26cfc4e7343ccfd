package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameToSlug(t *testing.T) {
	assert.Equal(t, "Lavender-Scented-Candle", NameToSlug("Lavender Scented Candle"))
	assert.Equal(t, "Moms-Candle", NameToSlug("Mom's Candle"))
	assert.Equal(t, "Gift-Box", NameToSlug("  Gift   Box  "))
	assert.Equal(t, "a-b", NameToSlug("a - - b"))
	assert.Equal(t, "trimmed", NameToSlug("--trimmed--"))
}

func TestNameToSlugFullySpecialInput(t *testing.T) {
	// Fully special input collapses to empty, which is allowed
	assert.Equal(t, "", NameToSlug("!@#$%"))
	assert.Equal(t, "", NameToSlug("   "))
}

func TestSlugToName(t *testing.T) {
	assert.Equal(t, "Lavender Scented Candle", SlugToName("Lavender-Scented-Candle"))
	assert.Equal(t, "Rose Candle", SlugToName("Rose%2DCandle"))
}

func TestRoundTripSimpleNames(t *testing.T) {
	// Names of alphanumerics and single interior spaces survive exactly
	for _, name := range []string{
		"Lavender Scented Candle",
		"Rose",
		"Gift Box 3",
	} {
		assert.Equal(t, name, SlugToName(NameToSlug(name)))
	}
}

func TestIdempotenceOnCanonicalForm(t *testing.T) {
	slug := NameToSlug("Vanilla Bean Candle")
	assert.Equal(t, slug, NameToSlug(SlugToName(slug)))

	name := SlugToName(slug)
	assert.Equal(t, name, SlugToName(NameToSlug(name)))
}

func TestCategoryCodec(t *testing.T) {
	assert.Equal(t, "gift-box", CategoryToSlug("Gift Box"))
	assert.Equal(t, "gift-box", CategoryToSlug("gift box"))
	assert.Equal(t, "gift box", SlugToCategory("gift-box"))
	assert.Equal(t, "gift box", SlugToCategory("Gift-Box"))
	assert.Equal(t, "candles", SlugToCategory("candles"))
}
