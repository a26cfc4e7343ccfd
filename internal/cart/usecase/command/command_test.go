package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinelits/storefront/internal/cart/domain"
)

type fakeCartRepo struct {
	lines  []*domain.CartLine
	nextID uint
}

func (f *fakeCartRepo) FindLine(userID uint, key domain.LineKey) (*domain.CartLine, error) {
	for _, l := range f.lines {
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
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Save(line *domain.CartLine) error {
	if line.ID == 0 {
		f.nextID++
		line.ID = f.nextID
		f.lines = append(f.lines, line)
	}
	return nil
}

func (f *fakeCartRepo) Remove(line *domain.CartLine) error {
	for i, l := range f.lines {
		if l.ID == line.ID {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrLineNotFound
}

func (f *fakeCartRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, l := range f.lines {
		if l.UserID == userID && !l.Purchased {
			count++
		}
	}
	return count, nil
}

func (f *fakeCartRepo) MarkPurchased(userID uint, key domain.LineKey) error {
	var active, purchased *domain.CartLine
	for _, l := range f.lines {
		if l.UserID == userID && l.Key() == key {
			if l.Purchased {
				purchased = l
			} else {
				active = l
			}
		}
	}
	if active == nil {
		return domain.ErrLineNotFound
	}
	if purchased != nil {
		purchased.Quantity += active.Quantity
		return f.Remove(active)
	}
	active.Purchased = true
	return nil
}

type fakeWishlistRepo struct {
	items []*domain.WishlistItem
}

func (f *fakeWishlistRepo) Add(item *domain.WishlistItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeWishlistRepo) Remove(userID uint, productID string) error {
	for i, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeWishlistRepo) FindByUser(userID uint) ([]domain.WishlistItem, error) {
	var out []domain.WishlistItem
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) Contains(userID uint, productID string) (bool, error) {
	for _, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func addCmd(userID uint, productID string) AddItemCommand {
	return AddItemCommand{
		UserID:    userID,
		ProductID: productID,
		Size:      "Large",
		VariantID: "price_lavender",
		Category:  "candles",
		Price:     120,
	}
}

func TestAddItemCreatesLineWithQuantityOne(t *testing.T) {
	repo := &fakeCartRepo{}
	handler := NewAddItemHandler(repo)

	line, err := handler.Handle(addCmd(7, "p1"))
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 120.0, line.Price)
	assert.Equal(t, uint(7), line.UserID)
}

func TestAddItemRepeatIncrementsQuantity(t *testing.T) {
	repo := &fakeCartRepo{}
	handler := NewAddItemHandler(repo)

	_, err := handler.Handle(addCmd(7, "p1"))
	require.NoError(t, err)
	line, err := handler.Handle(addCmd(7, "p1"))
	require.NoError(t, err)

	assert.Equal(t, 2, line.Quantity)
	assert.Len(t, repo.lines, 1)
}

func TestAddItemKeepsOriginalPrice(t *testing.T) {
	repo := &fakeCartRepo{}
	handler := NewAddItemHandler(repo)

	first := addCmd(7, "p1")
	first.Price = 90
	_, err := handler.Handle(first)
	require.NoError(t, err)

	// The catalog price changed between the two adds.
	second := addCmd(7, "p1")
	second.Price = 150
	line, err := handler.Handle(second)
	require.NoError(t, err)

	assert.Equal(t, 90.0, line.Price)
	assert.Equal(t, 180.0, line.Subtotal())
}

func TestAddItemDifferentSizesAreDistinctLines(t *testing.T) {
	repo := &fakeCartRepo{}
	handler := NewAddItemHandler(repo)

	cmd := addCmd(7, "p1")
	_, err := handler.Handle(cmd)
	require.NoError(t, err)

	cmd.Size = "Small"
	_, err = handler.Handle(cmd)
	require.NoError(t, err)

	assert.Len(t, repo.lines, 2)
}

func TestAddItemValidation(t *testing.T) {
	handler := NewAddItemHandler(&fakeCartRepo{})

	cmd := addCmd(7, "")
	_, err := handler.Handle(cmd)
	assert.ErrorContains(t, err, "product id is required")

	cmd = addCmd(7, "p1")
	cmd.Size = ""
	_, err = handler.Handle(cmd)
	assert.ErrorContains(t, err, "size is required")

	cmd = addCmd(7, "p1")
	cmd.Price = -1
	_, err = handler.Handle(cmd)
	assert.ErrorContains(t, err, "price cannot be negative")
}

func TestDelOneItemDecrements(t *testing.T) {
	repo := &fakeCartRepo{}
	add := NewAddItemHandler(repo)
	del := NewDelOneItemHandler(repo)

	_, err := add.Handle(addCmd(7, "p1"))
	require.NoError(t, err)
	_, err = add.Handle(addCmd(7, "p1"))
	require.NoError(t, err)

	line, err := del.Handle(DelOneItemCommand{UserID: 7, ProductID: "p1", Size: "Large", VariantID: "price_lavender"})
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestDelOneItemRemovesLineAtZero(t *testing.T) {
	repo := &fakeCartRepo{}
	add := NewAddItemHandler(repo)
	del := NewDelOneItemHandler(repo)

	_, err := add.Handle(addCmd(7, "p1"))
	require.NoError(t, err)

	line, err := del.Handle(DelOneItemCommand{UserID: 7, ProductID: "p1", Size: "Large", VariantID: "price_lavender"})
	require.NoError(t, err)
	assert.Nil(t, line)
	assert.Empty(t, repo.lines)
}

func TestDelOneItemMissingKey(t *testing.T) {
	del := NewDelOneItemHandler(&fakeCartRepo{})

	_, err := del.Handle(DelOneItemCommand{UserID: 7, ProductID: "nope", Size: "Large", VariantID: "v"})
	assert.ErrorIs(t, err, domain.ErrLineNotFound)
}

func TestToggleWishlistRoundTrip(t *testing.T) {
	repo := &fakeWishlistRepo{}
	handler := NewToggleWishlistHandler(repo)

	on, err := handler.Handle(ToggleWishlistCommand{UserID: 7, ProductID: "p1"})
	require.NoError(t, err)
	assert.True(t, on)

	on, err = handler.Handle(ToggleWishlistCommand{UserID: 7, ProductID: "p1"})
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, repo.items)
}

func TestToggleWishlistIsPerUser(t *testing.T) {
	repo := &fakeWishlistRepo{}
	handler := NewToggleWishlistHandler(repo)

	_, err := handler.Handle(ToggleWishlistCommand{UserID: 7, ProductID: "p1"})
	require.NoError(t, err)
	_, err = handler.Handle(ToggleWishlistCommand{UserID: 8, ProductID: "p1"})
	require.NoError(t, err)

	assert.Len(t, repo.items, 2)
}

func TestMarkPurchasedSkipsMissingLines(t *testing.T) {
	repo := &fakeCartRepo{}
	add := NewAddItemHandler(repo)
	_, err := add.Handle(addCmd(7, "p1"))
	require.NoError(t, err)

	handler := NewMarkPurchasedHandler(repo)
	marked, err := handler.Handle(MarkPurchasedCommand{
		UserID: 7,
		Lines: []domain.LineKey{
			{ProductID: "p1", Size: "Large", VariantID: "price_lavender"},
			{ProductID: "gone", Size: "Small", VariantID: "v"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	count, err := repo.CountByUser(7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAddItemAfterPurchaseStartsFreshLine(t *testing.T) {
	repo := &fakeCartRepo{}
	add := NewAddItemHandler(repo)

	first, err := add.Handle(addCmd(7, "p1"))
	require.NoError(t, err)

	mark := NewMarkPurchasedHandler(repo)
	_, err = mark.Handle(MarkPurchasedCommand{
		UserID: 7,
		Lines:  []domain.LineKey{first.Key()},
	})
	require.NoError(t, err)

	// Buying the same combination again must not touch the history row.
	cmd := addCmd(7, "p1")
	cmd.Price = 150
	line, err := add.Handle(cmd)
	require.NoError(t, err)

	assert.False(t, line.Purchased)
	assert.NotEqual(t, first.ID, line.ID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 150.0, line.Price)

	count, err := repo.CountByUser(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
