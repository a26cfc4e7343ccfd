package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// GetWishlistQuery fetches a user's wishlist
type GetWishlistQuery struct {
	UserID uint
}

// GetWishlistHandler handles wishlist retrieval
type GetWishlistHandler struct {
	wishlistRepo domain.WishlistRepository
}

// NewGetWishlistHandler creates a new get wishlist handler
func NewGetWishlistHandler(wishlistRepo domain.WishlistRepository) *GetWishlistHandler {
	return &GetWishlistHandler{wishlistRepo: wishlistRepo}
}

// Handle executes the query
func (h *GetWishlistHandler) Handle(q GetWishlistQuery) ([]domain.WishlistItem, error) {
	items, err := h.wishlistRepo.FindByUser(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return items, nil
}
