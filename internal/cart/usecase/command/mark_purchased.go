package command

import (
	"errors"
	"fmt"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// MarkPurchasedCommand flags cart lines as purchased after a completed
// checkout. Purchased lines leave the active cart but keep their history.
type MarkPurchasedCommand struct {
	UserID uint
	Lines  []domain.LineKey
}

// MarkPurchasedHandler handles checkout completion for a user's cart
type MarkPurchasedHandler struct {
	cartRepo domain.CartRepository
}

// NewMarkPurchasedHandler creates a new mark purchased handler
func NewMarkPurchasedHandler(cartRepo domain.CartRepository) *MarkPurchasedHandler {
	return &MarkPurchasedHandler{cartRepo: cartRepo}
}

// Handle marks each named line purchased. Lines that no longer exist are
// skipped; the checkout already happened and cannot be rejected here.
func (h *MarkPurchasedHandler) Handle(cmd MarkPurchasedCommand) (int, error) {
	marked := 0
	for _, key := range cmd.Lines {
		err := h.cartRepo.MarkPurchased(cmd.UserID, key)
		if err != nil {
			if errors.Is(err, domain.ErrLineNotFound) {
				continue
			}
			return marked, fmt.Errorf("failed to mark line purchased: %w", err)
		}
		marked++
	}
	return marked, nil
}
