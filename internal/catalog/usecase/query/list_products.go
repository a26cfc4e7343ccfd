package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query to list visible products
type ListProductsQuery struct {
	Category string // Optional: filter by category
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	var products []domain.Product
	var err error

	if query.Category != "" {
		if !domain.IsValidCategory(query.Category) {
			return nil, fmt.Errorf("unknown category: %q", query.Category)
		}
		products, err = h.repo.FindVisibleByCategory(query.Category)
	} else {
		products, err = h.repo.FindAllVisible()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
