package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// ToggleWishlistCommand adds a product to the user's wishlist when absent
// and removes it when present.
type ToggleWishlistCommand struct {
	UserID    uint   `json:"-"`
	ProductID string `json:"product_id"`
}

// ToggleWishlistHandler handles wishlist toggle operations
type ToggleWishlistHandler struct {
	wishlistRepo domain.WishlistRepository
}

// NewToggleWishlistHandler creates a new toggle wishlist handler
func NewToggleWishlistHandler(wishlistRepo domain.WishlistRepository) *ToggleWishlistHandler {
	return &ToggleWishlistHandler{wishlistRepo: wishlistRepo}
}

// Handle executes the toggle. The returned bool reports whether the product
// is on the wishlist after the toggle.
func (h *ToggleWishlistHandler) Handle(cmd ToggleWishlistCommand) (bool, error) {
	if cmd.ProductID == "" {
		return false, errors.New("product id is required")
	}

	present, err := h.wishlistRepo.Contains(cmd.UserID, cmd.ProductID)
	if err != nil {
		return false, fmt.Errorf("failed to check wishlist: %w", err)
	}

	if present {
		if err := h.wishlistRepo.Remove(cmd.UserID, cmd.ProductID); err != nil {
			return false, fmt.Errorf("failed to remove wishlist item: %w", err)
		}
		return false, nil
	}

	item := &domain.WishlistItem{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		CreatedAt: time.Now(),
	}
	if err := h.wishlistRepo.Add(item); err != nil {
		return false, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return true, nil
}
