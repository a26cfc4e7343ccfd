package command

import (
	"fmt"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product.
// Deletion is soft: the product's status becomes DELETED and stays that way.
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("invalid product id")
	}

	if _, err := h.repo.UpdateStatus(cmd.ID, domain.StatusDeleted); err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	return nil
}
