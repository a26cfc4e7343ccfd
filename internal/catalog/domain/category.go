package domain

import (
	"github.com/divinelits/storefront/pkg/slug"
)

// Product categories form a closed set
const (
	CategoryCandles   = "candles"
	CategoryGiftBox   = "gift box"
	CategoryNamedGift = "named gift"
)

// Categories returns all category identifiers in display order
func Categories() []string {
	return []string{CategoryCandles, CategoryGiftBox, CategoryNamedGift}
}

// IsValidCategory reports whether value is a known category identifier
func IsValidCategory(value string) bool {
	switch value {
	case CategoryCandles, CategoryGiftBox, CategoryNamedGift:
		return true
	}
	return false
}

// CategoryMetadata holds the static display and SEO metadata of a category
type CategoryMetadata struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	MetaDescription string `json:"meta_description"`
	Keywords        string `json:"keywords"`
	Image           string `json:"image"`
	BackgroundImage string `json:"background_image"`
}

var categoryMetadata = map[string]CategoryMetadata{
	CategoryCandles: {
		Title:           "Illuminate Your Space with Premium Candles",
		Description:     "Handcrafted luxury candles for every mood and occasion",
		MetaDescription: "Shop premium luxury candles at DivineLits. Handcrafted with finest ingredients, perfect for creating a warm atmosphere. Free shipping on orders over $50.",
		Keywords:        "luxury candles, premium candles, handcrafted candles, scented candles, home fragrance, candle collection",
		Image:           "/candle-1.png",
		BackgroundImage: "/candle-1.png",
	},
	CategoryGiftBox: {
		Title:           "Perfect Gifts for Every Occasion",
		Description:     "Curated collections that express your love and care",
		MetaDescription: "Beautiful gift sets and curated collections at DivineLits. Perfect for birthdays, anniversaries, and special occasions. Express shipping available.",
		Keywords:        "gift sets, curated gifts, gift boxes, special occasion gifts, birthday gifts, anniversary gifts",
		Image:           "/gift-1.png",
		BackgroundImage: "/gift-1.png",
	},
	CategoryNamedGift: {
		Title:           "Personalized Gifts That Tell Your Story",
		Description:     "Custom engravings and personal touches for unforgettable moments",
		MetaDescription: "Personalized named gifts at DivineLits. Custom engravings and personal messages make every gift unique. Create memorable moments with our personalized collection.",
		Keywords:        "personalized gifts, custom gifts, named gifts, engraved gifts, custom messages, unique gifts",
		Image:           "/candle-3.png",
		BackgroundImage: "/candle-3.png",
	},
}

// MetadataFor returns the static metadata of a category identifier
func MetadataFor(category string) (CategoryMetadata, bool) {
	meta, ok := categoryMetadata[category]
	return meta, ok
}

// MetadataForSlug decodes a category slug, validates it, and returns the
// category identifier with its metadata. Unknown slugs yield ok=false so
// callers can branch into a not-found flow.
func MetadataForSlug(s string) (string, CategoryMetadata, bool) {
	category := slug.SlugToCategory(s)
	meta, ok := categoryMetadata[category]
	return category, meta, ok
}
