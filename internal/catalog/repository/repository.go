package repository

import (
	"github.com/divinelits/storefront/internal/catalog/domain"
	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindVisibleByID(id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ? AND status = ?", id, domain.StatusVisible).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindVisibleByName matches the whole name case-insensitively. Among several
// visible products with the same name the first by primary key order wins.
func (r *GormProductRepository) FindVisibleByName(name string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.
		Where("LOWER(name) = LOWER(?) AND status = ?", name, domain.StatusVisible).
		Order("id").
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAllVisible() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("status = ?", domain.StatusVisible).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindVisibleByCategory(category string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.
		Where("category = ? AND status = ?", category, domain.StatusVisible).
		Find(&products).Error
	return products, err
}

// FindAll returns products of every status, newest first. Admin listing only.
func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

// UpdateStatus sets only the status column and returns the updated product,
// or gorm.ErrRecordNotFound when no product has the given id.
func (r *GormProductRepository) UpdateStatus(id string, status domain.Status) (*domain.Product, error) {
	result := r.db.Model(&domain.Product{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) CountVisible() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).
		Where("status = ?", domain.StatusVisible).
		Count(&count).Error
	return count, err
}
