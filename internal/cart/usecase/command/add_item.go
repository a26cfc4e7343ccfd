package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// AddItemCommand adds one unit of a (product, size, variant) combination to
// a user's cart. Price and Category describe the product at add time.
type AddItemCommand struct {
	UserID    uint    `json:"-"`
	ProductID string  `json:"product_id"`
	Size      string  `json:"size"`
	VariantID string  `json:"variant_id"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
}

// AddItemHandler handles adding items to the cart
type AddItemHandler struct {
	cartRepo domain.CartRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(cartRepo domain.CartRepository) *AddItemHandler {
	return &AddItemHandler{cartRepo: cartRepo}
}

// Handle executes the add item command. A first add creates the line with
// quantity 1; a repeat add on the same key increments the quantity and keeps
// the originally captured price.
func (h *AddItemHandler) Handle(cmd AddItemCommand) (*domain.CartLine, error) {
	if cmd.ProductID == "" {
		return nil, errors.New("product id is required")
	}
	if cmd.Size == "" {
		return nil, errors.New("size is required")
	}
	if cmd.VariantID == "" {
		return nil, errors.New("variant id is required")
	}
	if cmd.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	key := domain.LineKey{ProductID: cmd.ProductID, Size: cmd.Size, VariantID: cmd.VariantID}
	line, err := h.cartRepo.FindLine(cmd.UserID, key)
	if err != nil {
		if !errors.Is(err, domain.ErrLineNotFound) {
			return nil, fmt.Errorf("failed to look up cart line: %w", err)
		}
		line = &domain.CartLine{
			UserID:    cmd.UserID,
			ProductID: cmd.ProductID,
			Size:      cmd.Size,
			VariantID: cmd.VariantID,
			Category:  cmd.Category,
			Price:     cmd.Price,
			Quantity:  1,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	} else {
		// Existing line keeps the price it was created with.
		line.Quantity++
		line.UpdatedAt = time.Now()
	}

	if err := h.cartRepo.Save(line); err != nil {
		return nil, fmt.Errorf("failed to save cart line: %w", err)
	}
	return line, nil
}
