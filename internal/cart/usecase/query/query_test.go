package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinelits/storefront/internal/cart/domain"
)

type fakeCartRepo struct {
	lines []domain.CartLine
}

func (f *fakeCartRepo) FindLine(userID uint, key domain.LineKey) (*domain.CartLine, error) {
	for i := range f.lines {
		l := &f.lines[i]
		if l.UserID == userID && l.Key() == key && !l.Purchased {
			return l, nil
		}
	}
	return nil, domain.ErrLineNotFound
}

func (f *fakeCartRepo) FindByUser(userID uint) ([]domain.CartLine, error) {
	var out []domain.CartLine
	for _, l := range f.lines {
		if l.UserID == userID && !l.Purchased {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Save(line *domain.CartLine) error { return nil }

func (f *fakeCartRepo) Remove(line *domain.CartLine) error { return nil }

func (f *fakeCartRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, l := range f.lines {
		if l.UserID == userID && !l.Purchased {
			count++
		}
	}
	return count, nil
}

func (f *fakeCartRepo) MarkPurchased(userID uint, key domain.LineKey) error { return nil }

type fakeWishlistRepo struct {
	items []domain.WishlistItem
}

func (f *fakeWishlistRepo) Add(item *domain.WishlistItem) error { return nil }

func (f *fakeWishlistRepo) Remove(userID uint, productID string) error { return nil }

func (f *fakeWishlistRepo) FindByUser(userID uint) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) Contains(userID uint, productID string) (bool, error) {
	return false, nil
}

func TestGetCartTotalsAcrossLines(t *testing.T) {
	repo := &fakeCartRepo{lines: []domain.CartLine{
		{UserID: 7, ProductID: "p1", Size: "Large", VariantID: "v1", Price: 90, Quantity: 2},
		{UserID: 7, ProductID: "p2", Size: "Small", VariantID: "v2", Price: 40, Quantity: 1},
		{UserID: 8, ProductID: "p3", Size: "Small", VariantID: "v3", Price: 500, Quantity: 1},
	}}
	handler := NewGetCartHandler(repo)

	view, err := handler.Handle(GetCartQuery{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, 220.0, view.Total)
}

func TestGetCartExcludesPurchasedLines(t *testing.T) {
	repo := &fakeCartRepo{lines: []domain.CartLine{
		{UserID: 7, ProductID: "p1", Size: "Large", VariantID: "v1", Price: 90, Quantity: 1, Purchased: true},
		{UserID: 7, ProductID: "p2", Size: "Small", VariantID: "v2", Price: 40, Quantity: 1},
	}}
	handler := NewGetCartHandler(repo)

	view, err := handler.Handle(GetCartQuery{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 40.0, view.Total)
}

func TestGetTotalItemsCountsDistinctLines(t *testing.T) {
	// Quantities do not matter for the badge count, only distinct lines.
	repo := &fakeCartRepo{lines: []domain.CartLine{
		{UserID: 7, ProductID: "p1", Size: "Large", VariantID: "v1", Price: 90, Quantity: 5},
		{UserID: 7, ProductID: "p1", Size: "Small", VariantID: "v1", Price: 90, Quantity: 3},
	}}
	handler := NewGetTotalItemsHandler(repo)

	count, err := handler.Handle(GetTotalItemsQuery{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetWishlistIsPerUser(t *testing.T) {
	repo := &fakeWishlistRepo{items: []domain.WishlistItem{
		{UserID: 7, ProductID: "p1"},
		{UserID: 8, ProductID: "p2"},
	}}
	handler := NewGetWishlistHandler(repo)

	items, err := handler.Handle(GetWishlistQuery{UserID: 7})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
}
