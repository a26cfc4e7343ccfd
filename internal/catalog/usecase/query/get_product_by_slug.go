package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/catalog/domain"
	"github.com/divinelits/storefront/pkg/slug"
)

// GetProductBySlugQuery represents the query to resolve a product from a
// URL name slug
type GetProductBySlugQuery struct {
	Slug string
}

// GetProductBySlugHandler handles slug-based product resolution
type GetProductBySlugHandler struct {
	repo domain.ProductRepository
}

// NewGetProductBySlugHandler creates a new slug resolution handler
func NewGetProductBySlugHandler(repo domain.ProductRepository) *GetProductBySlugHandler {
	return &GetProductBySlugHandler{repo: repo}
}

// Handle decodes the slug and matches the whole decoded string against
// product names case-insensitively. Two visible products may decode to
// the same name; exactly one of the tied candidates is returned.
func (h *GetProductBySlugHandler) Handle(query GetProductBySlugQuery) (*ResolvedProduct, error) {
	if query.Slug == "" {
		return nil, fmt.Errorf("invalid product slug")
	}

	name := slug.SlugToName(query.Slug)
	if name == "" {
		return nil, fmt.Errorf("invalid product slug")
	}

	product, err := h.repo.FindVisibleByName(name)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	return resolve(product), nil
}
