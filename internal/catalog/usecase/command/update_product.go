package command

import (
	"fmt"
	"time"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Discount    float64
	Category    string
	Status      string
	Sizes       []string
	Variants    []domain.Variant
	Images      []string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	if err := validateProductFields(cmd.Name, cmd.Price, cmd.Discount, cmd.Category, cmd.Status, cmd.Sizes, cmd.Variants, cmd.Images); err != nil {
		return nil, err
	}

	next := domain.Status(cmd.Status)
	if !product.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("deleted products cannot be restored")
	}

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Price = cmd.Price
	product.Discount = cmd.Discount
	product.Category = cmd.Category
	product.Status = next
	product.Sizes = cmd.Sizes
	product.Variants = cmd.Variants
	product.Images = cmd.Images
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
