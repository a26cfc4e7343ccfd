package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// ListAdminProductsQuery lists products of every status for the admin panel
type ListAdminProductsQuery struct {
	Limit  int
	Offset int
}

// ListAdminProductsHandler handles admin product listing
type ListAdminProductsHandler struct {
	repo domain.ProductRepository
}

// NewListAdminProductsHandler creates a new admin listing handler
func NewListAdminProductsHandler(repo domain.ProductRepository) *ListAdminProductsHandler {
	return &ListAdminProductsHandler{repo: repo}
}

// Handle executes the admin listing query, newest first
func (h *ListAdminProductsHandler) Handle(query ListAdminProductsQuery) ([]domain.Product, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}

	products, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetAdminProductQuery fetches a single product regardless of status
type GetAdminProductQuery struct {
	ID string
}

// GetAdminProductHandler handles admin product lookup
type GetAdminProductHandler struct {
	repo domain.ProductRepository
}

// NewGetAdminProductHandler creates a new admin lookup handler
func NewGetAdminProductHandler(repo domain.ProductRepository) *GetAdminProductHandler {
	return &GetAdminProductHandler{repo: repo}
}

// Handle executes the admin lookup query
func (h *GetAdminProductHandler) Handle(query GetAdminProductQuery) (*domain.Product, error) {
	if query.ID == "" {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	return product, nil
}
