package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// GetTotalItemsQuery asks for the cart badge count
type GetTotalItemsQuery struct {
	UserID uint
}

// GetTotalItemsHandler handles the cart item count
type GetTotalItemsHandler struct {
	cartRepo domain.CartRepository
}

// NewGetTotalItemsHandler creates a new total items handler
func NewGetTotalItemsHandler(cartRepo domain.CartRepository) *GetTotalItemsHandler {
	return &GetTotalItemsHandler{cartRepo: cartRepo}
}

// Handle returns the number of distinct cart lines, not the summed
// quantities. Three units of one product still count as one.
func (h *GetTotalItemsHandler) Handle(q GetTotalItemsQuery) (int64, error) {
	count, err := h.cartRepo.CountByUser(q.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to count cart lines: %w", err)
	}
	return count, nil
}
