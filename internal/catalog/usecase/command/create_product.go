package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
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

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	// New products are hidden until an admin makes them visible
	if cmd.Status == "" {
		cmd.Status = string(domain.StatusHide)
	}

	if err := validateProductFields(cmd.Name, cmd.Price, cmd.Discount, cmd.Category, cmd.Status, cmd.Sizes, cmd.Variants, cmd.Images); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Discount:    cmd.Discount,
		Category:    cmd.Category,
		Status:      domain.Status(cmd.Status),
		Sizes:       cmd.Sizes,
		Variants:    cmd.Variants,
		Images:      cmd.Images,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// validateProductFields rejects malformed catalog entries instead of
// clamping them, so corrupt data never reaches the store.
func validateProductFields(name string, price, discount float64, category, status string, sizes []string, variants []domain.Variant, images []string) error {
	if name == "" {
		return fmt.Errorf("product name is required")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if discount < 0 || discount > 100 {
		return fmt.Errorf("discount must be between 0 and 100")
	}
	if !domain.IsValidCategory(category) {
		return fmt.Errorf("unknown category: %q", category)
	}
	if !domain.ValidStatus(status) {
		return fmt.Errorf("unknown status: %q", status)
	}
	if len(sizes) == 0 {
		return fmt.Errorf("at least one size is required")
	}
	if len(variants) == 0 {
		return fmt.Errorf("at least one variant is required")
	}
	if len(images) == 0 {
		return fmt.Errorf("at least one image is required")
	}

	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if v.Color == "" {
			return fmt.Errorf("variant color is required")
		}
		if _, dup := seen[v.Color]; dup {
			return fmt.Errorf("duplicate variant color: %q", v.Color)
		}
		seen[v.Color] = struct{}{}
	}

	return nil
}
