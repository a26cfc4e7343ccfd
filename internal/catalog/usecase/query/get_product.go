package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// ResolvedProduct is the shape returned to detail pages. The default
// variant (always the first) rides along so callers do not re-derive it.
type ResolvedProduct struct {
	domain.Product
	DefaultVariant *domain.Variant `json:"default_variant"`
}

func resolve(product *domain.Product) *ResolvedProduct {
	return &ResolvedProduct{
		Product:        *product,
		DefaultVariant: product.DefaultVariant(),
	}
}

// GetProductQuery represents the query to get a visible product by ID
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query. Hidden and deleted products are
// filtered inside the repository query, never post-hoc.
func (h *GetProductHandler) Handle(query GetProductQuery) (*ResolvedProduct, error) {
	if query.ID == "" {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindVisibleByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	return resolve(product), nil
}
