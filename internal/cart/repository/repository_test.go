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

	"github.com/divinelits/storefront/internal/cart/domain"
)

var _ domain.CartRepository = (*GormCartRepositoryWithTracing)(nil)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func activeLine(userID uint, productID string) *domain.CartLine {
	return &domain.CartLine{
		UserID:    userID,
		ProductID: productID,
		Size:      "Large",
		VariantID: "price_lavender",
		Category:  "candles",
		Price:     120,
		Quantity:  1,
	}
}

func TestFindLineIgnoresPurchasedRows(t *testing.T) {
	repo, err := NewGormCartRepository(newTestDB(t))
	require.NoError(t, err)

	l := activeLine(7, "p1")
	require.NoError(t, repo.Save(l))
	require.NoError(t, repo.MarkPurchased(7, l.Key()))

	_, err = repo.FindLine(7, l.Key())
	assert.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestReAddAfterCheckoutStartsFreshLine(t *testing.T) {
	repo, err := NewGormCartRepository(newTestDB(t))
	require.NoError(t, err)

	l := activeLine(7, "p1")
	l.Quantity = 2
	require.NoError(t, repo.Save(l))
	require.NoError(t, repo.MarkPurchased(7, l.Key()))

	// The history row must not block a new active row for the same key.
	fresh := activeLine(7, "p1")
	fresh.Price = 150
	require.NoError(t, repo.Save(fresh))

	got, err := repo.FindLine(7, fresh.Key())
	require.NoError(t, err)
	assert.False(t, got.Purchased)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, 150.0, got.Price)

	lines, err := repo.FindByUser(7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, fresh.ID, lines[0].ID)

	count, err := repo.CountByUser(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMarkPurchasedFoldsRepeatCheckout(t *testing.T) {
	db := newTestDB(t)
	repo, err := NewGormCartRepository(db)
	require.NoError(t, err)

	l := activeLine(7, "p1")
	l.Quantity = 2
	require.NoError(t, repo.Save(l))
	require.NoError(t, repo.MarkPurchased(7, l.Key()))

	fresh := activeLine(7, "p1")
	require.NoError(t, repo.Save(fresh))
	require.NoError(t, repo.MarkPurchased(7, fresh.Key()))

	count, err := repo.CountByUser(7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	var history []domain.CartLine
	require.NoError(t, db.Where("user_id = ? AND purchased = ?", 7, true).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, 3, history[0].Quantity)
}

func TestMarkPurchasedMissingKey(t *testing.T) {
	repo, err := NewGormCartRepository(newTestDB(t))
	require.NoError(t, err)

	err = repo.MarkPurchased(7, domain.LineKey{ProductID: "gone", Size: "S", VariantID: "v"})
	assert.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestTracedRepositoryDelegates(t *testing.T) {
	base, err := NewGormCartRepository(newTestDB(t))
	require.NoError(t, err)
	traced := NewGormCartRepositoryWithTracing(base)

	require.NoError(t, traced.SaveWithContext(context.Background(), activeLine(7, "p1")))

	lines, err := traced.FindByUserWithContext(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
