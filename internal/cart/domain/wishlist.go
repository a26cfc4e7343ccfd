package domain

import "time"

// WishlistItem is a per-user bookmark on a product. Unlike cart lines it
// carries no size or variant: the wishlist remembers products, not SKUs.
type WishlistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID string    `json:"product_id" gorm:"not null;size:36;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// WishlistRepository defines the contract for wishlist data access
type WishlistRepository interface {
	Add(item *WishlistItem) error
	Remove(userID uint, productID string) error
	FindByUser(userID uint) ([]WishlistItem, error)
	Contains(userID uint, productID string) (bool, error)
}
