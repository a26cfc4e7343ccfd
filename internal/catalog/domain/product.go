package domain

import (
	"time"
)

// Status is the shopper-facing visibility gate of a product
type Status string

const (
	StatusVisible Status = "VISIBLE"
	StatusHide    Status = "HIDE"
	StatusDeleted Status = "DELETED"
)

// ValidStatus reports whether v is a known product status
func ValidStatus(v string) bool {
	switch Status(v) {
	case StatusVisible, StatusHide, StatusDeleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed.
// VISIBLE and HIDE toggle freely and may be deleted; DELETED is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s != StatusDeleted
}

// Variant is a purchasable color option of a product
type Variant struct {
	Color   string   `json:"color"`
	PriceID string   `json:"price_id"`
	Images  []string `json:"images"`
}

// Product represents the product entity. Products are never hard-deleted;
// deletion is a status transition to DELETED.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null;index"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Discount    float64   `json:"discount" gorm:"not null;default:0"`
	Category    string    `json:"category" gorm:"not null;index"`
	Status      Status    `json:"status" gorm:"not null;default:'HIDE';index"`
	Sizes       []string  `json:"sizes" gorm:"serializer:json"`
	Variants    []Variant `json:"variants" gorm:"serializer:json"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsVisible checks if the product is exposed to shoppers
func (p *Product) IsVisible() bool {
	return p.Status == StatusVisible
}

// EffectivePrice returns the discount-adjusted price
func (p *Product) EffectivePrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// DefaultVariant returns the variant pre-selected on product detail pages.
// The first variant is always the default.
func (p *Product) DefaultVariant() *Variant {
	if len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}

// ProductRepository defines the contract for product data access.
// Visibility filtering happens inside the queries themselves so that
// hidden records cannot leak through error or timing differences.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id string) (*Product, error)
	FindVisibleByID(id string) (*Product, error)
	FindVisibleByName(name string) (*Product, error)
	FindAllVisible() ([]Product, error)
	FindVisibleByCategory(category string) ([]Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Update(product *Product) error
	UpdateStatus(id string, status Status) (*Product, error)
	Count() (int64, error)
	CountVisible() (int64, error)
}
