package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

var _ domain.ProductRepository = (*GormProductRepositoryWithTracing)(nil)

func newTestRepo(t *testing.T) *GormProductRepositoryWithTracing {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := NewGormProductRepositoryWithTracing(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func TestTracedProductRepositoryDelegates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	product := &domain.Product{
		ID:       "11111111-1111-1111-1111-111111111111",
		Name:     "Lavender Candle",
		Category: "candles",
		Price:    120,
		Status:   domain.StatusVisible,
		Sizes:    []string{"Large"},
		Variants: []domain.Variant{{Color: "Purple", PriceID: "price_lavender"}},
		Images:   []string{"lavender.webp"},
	}
	require.NoError(t, repo.CreateWithContext(ctx, product))

	got, err := repo.FindVisibleByIDWithContext(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lavender Candle", got.Name)

	visible, err := repo.FindAllVisibleWithContext(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}
