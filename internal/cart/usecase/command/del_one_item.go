package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// DelOneItemCommand removes one unit of a (product, size, variant)
// combination from a user's cart.
type DelOneItemCommand struct {
	UserID    uint   `json:"-"`
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	VariantID string `json:"variant_id"`
}

// DelOneItemHandler handles removing one unit from a cart line
type DelOneItemHandler struct {
	cartRepo domain.CartRepository
}

// NewDelOneItemHandler creates a new del one item handler
func NewDelOneItemHandler(cartRepo domain.CartRepository) *DelOneItemHandler {
	return &DelOneItemHandler{cartRepo: cartRepo}
}

// Handle executes the command. Reaching quantity zero deletes the line
// entirely; a missing key is reported with domain.ErrLineNotFound.
// The returned line is nil when the line was deleted.
func (h *DelOneItemHandler) Handle(cmd DelOneItemCommand) (*domain.CartLine, error) {
	key := domain.LineKey{ProductID: cmd.ProductID, Size: cmd.Size, VariantID: cmd.VariantID}
	line, err := h.cartRepo.FindLine(cmd.UserID, key)
	if err != nil {
		if errors.Is(err, domain.ErrLineNotFound) {
			return nil, domain.ErrLineNotFound
		}
		return nil, fmt.Errorf("failed to look up cart line: %w", err)
	}

	if line.Quantity <= 1 {
		if err := h.cartRepo.Remove(line); err != nil {
			return nil, fmt.Errorf("failed to remove cart line: %w", err)
		}
		return nil, nil
	}

	line.Quantity--
	line.UpdatedAt = time.Now()
	if err := h.cartRepo.Save(line); err != nil {
		return nil, fmt.Errorf("failed to save cart line: %w", err)
	}
	return line, nil
}
