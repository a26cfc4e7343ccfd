package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/divinelits/storefront/internal/cart/domain"
)

// GormCartRepository implements domain.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM-based cart repository
func NewGormCartRepository(db *gorm.DB) (*GormCartRepository, error) {
	if err := db.AutoMigrate(&domain.CartLine{}); err != nil {
		return nil, err
	}
	return &GormCartRepository{db: db}, nil
}

func (r *GormCartRepository) FindLine(userID uint, key domain.LineKey) (*domain.CartLine, error) {
	// Purchased rows are history; re-adding the same key starts a fresh line.
	var line domain.CartLine
	err := r.db.Where("user_id = ? AND product_id = ? AND size = ? AND variant_id = ? AND purchased = ?",
		userID, key.ProductID, key.Size, key.VariantID, false).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLineNotFound
		}
		return nil, err
	}
	return &line, nil
}

func (r *GormCartRepository) FindByUser(userID uint) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	err := r.db.Where("user_id = ? AND purchased = ?", userID, false).
		Order("created_at").Find(&lines).Error
	return lines, err
}

func (r *GormCartRepository) Save(line *domain.CartLine) error {
	return r.db.Save(line).Error
}

func (r *GormCartRepository) Remove(line *domain.CartLine) error {
	return r.db.Delete(line).Error
}

func (r *GormCartRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.CartLine{}).
		Where("user_id = ? AND purchased = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *GormCartRepository) MarkPurchased(userID uint, key domain.LineKey) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var active domain.CartLine
		err := tx.Where("user_id = ? AND product_id = ? AND size = ? AND variant_id = ? AND purchased = ?",
			userID, key.ProductID, key.Size, key.VariantID, false).First(&active).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrLineNotFound
			}
			return err
		}

		// An earlier checkout of the same key already holds the history
		// row; fold the quantity into it instead of violating the key.
		var purchased domain.CartLine
		err = tx.Where("user_id = ? AND product_id = ? AND size = ? AND variant_id = ? AND purchased = ?",
			userID, key.ProductID, key.Size, key.VariantID, true).First(&purchased).Error
		switch {
		case err == nil:
			purchased.Quantity += active.Quantity
			if err := tx.Save(&purchased).Error; err != nil {
				return err
			}
			return tx.Delete(&active).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			active.Purchased = true
			return tx.Save(&active).Error
		default:
			return err
		}
	})
}

// GormWishlistRepository implements domain.WishlistRepository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GORM-based wishlist repository
func NewGormWishlistRepository(db *gorm.DB) (*GormWishlistRepository, error) {
	if err := db.AutoMigrate(&domain.WishlistItem{}); err != nil {
		return nil, err
	}
	return &GormWishlistRepository{db: db}, nil
}

func (r *GormWishlistRepository) Add(item *domain.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *GormWishlistRepository) Remove(userID uint, productID string) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.WishlistItem{}).Error
}

func (r *GormWishlistRepository) FindByUser(userID uint) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&items).Error
	return items, err
}

func (r *GormWishlistRepository) Contains(userID uint, productID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
