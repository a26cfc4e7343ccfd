package domain

import (
	"errors"
	"time"
)

// ErrLineNotFound signals a decrement or lookup on a cart line key that
// does not exist. Callers branch on it instead of treating it as failure.
var ErrLineNotFound = errors.New("cart line not found")

// LineKey is the composite identity of a cart line within one user's cart:
// the same product in a different size or color variant is a separate line.
type LineKey struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	VariantID string `json:"variant_id"`
}

// CartLine is one (product, size, variant) combination with a quantity.
// Price is the unit price captured when the line was first added; later
// increments never overwrite it, even if the catalog price changes.
// Purchased is part of the unique key: each line key holds at most one
// active row and one purchased history row per user.
type CartLine struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_line_key"`
	ProductID string    `json:"product_id" gorm:"not null;size:36;uniqueIndex:idx_cart_line_key"`
	Size      string    `json:"size" gorm:"not null;uniqueIndex:idx_cart_line_key"`
	VariantID string    `json:"variant_id" gorm:"not null;uniqueIndex:idx_cart_line_key"`
	Category  string    `json:"category" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	Purchased bool      `json:"purchased" gorm:"not null;default:false;uniqueIndex:idx_cart_line_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (CartLine) TableName() string {
	return "cart_lines"
}

// Key returns the composite line identity
func (l *CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, VariantID: l.VariantID}
}

// Subtotal returns price times quantity for this line
func (l *CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartRepository defines the contract for cart line data access.
// Carts are owned exclusively by one user; there is no cross-user access.
type CartRepository interface {
	FindLine(userID uint, key LineKey) (*CartLine, error)
	FindByUser(userID uint) ([]CartLine, error)
	Save(line *CartLine) error
	Remove(line *CartLine) error
	CountByUser(userID uint) (int64, error)
	MarkPurchased(userID uint, key LineKey) error
}
