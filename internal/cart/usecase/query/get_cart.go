package query

import (
	"fmt"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// GetCartQuery fetches a user's active cart
type GetCartQuery struct {
	UserID uint
}

// CartView is the cart plus its money total
type CartView struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

// GetCartHandler handles cart retrieval
type GetCartHandler struct {
	cartRepo domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(cartRepo domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{cartRepo: cartRepo}
}

// Handle executes the query. Total is the sum of price times quantity
// across all active lines.
func (h *GetCartHandler) Handle(q GetCartQuery) (*CartView, error) {
	lines, err := h.cartRepo.FindByUser(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}

	view := &CartView{Lines: lines}
	for i := range lines {
		view.Total += lines[i].Subtotal()
	}
	return view, nil
}
