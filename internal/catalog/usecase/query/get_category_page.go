package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// GetCategoryPageQuery represents the query for a category landing page
type GetCategoryPageQuery struct {
	Slug string
}

// CategoryPage bundles the static metadata with the category's visible
// products, everything a category page needs in one read.
type CategoryPage struct {
	Category string                  `json:"category"`
	Metadata domain.CategoryMetadata `json:"metadata"`
	Products []domain.Product        `json:"products"`
}

// GetCategoryPageHandler handles category page query
type GetCategoryPageHandler struct {
	repo domain.ProductRepository
}

// NewGetCategoryPageHandler creates a new category page handler
func NewGetCategoryPageHandler(repo domain.ProductRepository) *GetCategoryPageHandler {
	return &GetCategoryPageHandler{repo: repo}
}

// Handle decodes and validates the category slug, then loads the
// category's visible products. Unknown slugs are a not-found branch.
func (h *GetCategoryPageHandler) Handle(query GetCategoryPageQuery) (*CategoryPage, error) {
	category, meta, ok := domain.MetadataForSlug(query.Slug)
	if !ok {
		return nil, fmt.Errorf("category not found: %q", query.Slug)
	}

	products, err := h.repo.FindVisibleByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category products: %w", err)
	}

	return &CategoryPage{
		Category: category,
		Metadata: meta,
		Products: products,
	}, nil
}
