package query

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// fakeProductRepo mirrors the SQL query contracts: the Visible variants
// filter inside the lookup, and name matching is whole-string and
// case-insensitive with ties broken by primary key order.
type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) Create(p *domain.Product) error {
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) FindByID(id string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			cp := f.products[i]
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeProductRepo) FindVisibleByID(id string) (*domain.Product, error) {
	p, err := f.FindByID(id)
	if err != nil || !p.IsVisible() {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindVisibleByName(name string) (*domain.Product, error) {
	var matches []domain.Product
	for _, p := range f.products {
		if p.IsVisible() && strings.EqualFold(p.Name, name) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, errors.New("record not found")
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return &matches[0], nil
}

func (f *fakeProductRepo) FindAllVisible() ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsVisible() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindVisibleByCategory(category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsVisible() && p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *domain.Product) error { return nil }

func (f *fakeProductRepo) UpdateStatus(id string, status domain.Status) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Status = status
			cp := f.products[i]
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeProductRepo) Count() (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) CountVisible() (int64, error) {
	var count int64
	for _, p := range f.products {
		if p.IsVisible() {
			count++
		}
	}
	return count, nil
}

func product(id, name, category string, status domain.Status) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Status:   status,
		Price:    100,
		Variants: []domain.Variant{{Color: "Purple", PriceID: "price_" + id}},
	}
}

func TestGetProductReturnsVisibleOnly(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{
		product("1", "Lavender Candle", domain.CategoryCandles, domain.StatusVisible),
		product("2", "Hidden Candle", domain.CategoryCandles, domain.StatusHide),
		product("3", "Gone Candle", domain.CategoryCandles, domain.StatusDeleted),
	}}
	handler := NewGetProductHandler(repo)

	resolved, err := handler.Handle(GetProductQuery{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Lavender Candle", resolved.Name)
	require.NotNil(t, resolved.DefaultVariant)
	assert.Equal(t, "price_1", resolved.DefaultVariant.PriceID)

	_, err = handler.Handle(GetProductQuery{ID: "2"})
	assert.Error(t, err)
	_, err = handler.Handle(GetProductQuery{ID: "3"})
	assert.Error(t, err)
}

func TestGetProductBySlugCaseInsensitive(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{
		product("1", "Lavender Scented Candle", domain.CategoryCandles, domain.StatusVisible),
	}}
	handler := NewGetProductBySlugHandler(repo)

	resolved, err := handler.Handle(GetProductBySlugQuery{Slug: "lavender-scented-candle"})
	require.NoError(t, err)
	assert.Equal(t, "1", resolved.ID)

	resolved, err = handler.Handle(GetProductBySlugQuery{Slug: "Lavender-Scented-Candle"})
	require.NoError(t, err)
	assert.Equal(t, "1", resolved.ID)
}

func TestGetProductBySlugSkipsHidden(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{
		product("1", "Lavender Candle", domain.CategoryCandles, domain.StatusHide),
	}}
	handler := NewGetProductBySlugHandler(repo)

	_, err := handler.Handle(GetProductBySlugQuery{Slug: "Lavender-Candle"})
	assert.ErrorContains(t, err, "not found")
}

func TestGetProductBySlugAmbiguousReturnsOne(t *testing.T) {
	// Two visible products share a decoded name; resolution picks the
	// lower primary key deterministically within one store state.
	repo := &fakeProductRepo{products: []domain.Product{
		product("b", "Rose Candle", domain.CategoryCandles, domain.StatusVisible),
		product("a", "Rose Candle", domain.CategoryCandles, domain.StatusVisible),
	}}
	handler := NewGetProductBySlugHandler(repo)

	resolved, err := handler.Handle(GetProductBySlugQuery{Slug: "Rose-Candle"})
	require.NoError(t, err)
	assert.Equal(t, "a", resolved.ID)
}

func TestListProductsFiltersByCategory(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{
		product("1", "Lavender Candle", domain.CategoryCandles, domain.StatusVisible),
		product("2", "Birthday Box", domain.CategoryGiftBox, domain.StatusVisible),
		product("3", "Hidden Box", domain.CategoryGiftBox, domain.StatusHide),
	}}
	handler := NewListProductsHandler(repo)

	all, err := handler.Handle(ListProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	boxes, err := handler.Handle(ListProductsQuery{Category: domain.CategoryGiftBox})
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	assert.Equal(t, "2", boxes[0].ID)

	_, err = handler.Handle(ListProductsQuery{Category: "perfume"})
	assert.ErrorContains(t, err, "unknown category")
}

func TestRandomProductsExcludesIDAndCapsSize(t *testing.T) {
	repo := &fakeProductRepo{}
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		repo.products = append(repo.products,
			product(id, "Candle "+id, domain.CategoryCandles, domain.StatusVisible))
	}
	repo.products = append(repo.products,
		product("9", "Hidden", domain.CategoryCandles, domain.StatusHide))

	handler := NewRandomProductsHandler(repo)
	sample, err := handler.Handle(RandomProductsQuery{ExcludeID: "1"})
	require.NoError(t, err)

	assert.Len(t, sample, DefaultRandomSampleSize)
	for _, p := range sample {
		assert.NotEqual(t, "1", p.ID)
		assert.NotEqual(t, "9", p.ID)
	}
}

func TestRandomProductsSmallCatalog(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{
		product("1", "Lavender Candle", domain.CategoryCandles, domain.StatusVisible),
		product("2", "Rose Candle", domain.CategoryCandles, domain.StatusVisible),
		product("3", "Vanilla Candle", domain.CategoryCandles, domain.StatusVisible),
	}}
	handler := NewRandomProductsHandler(repo)

	sample, err := handler.Handle(RandomProductsQuery{ExcludeID: "2"})
	require.NoError(t, err)
	assert.Len(t, sample, 2)
}

func TestGetCategoryPage(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{
		product("1", "Birthday Box", domain.CategoryGiftBox, domain.StatusVisible),
		product("2", "Hidden Box", domain.CategoryGiftBox, domain.StatusHide),
		product("3", "Lavender Candle", domain.CategoryCandles, domain.StatusVisible),
	}}
	handler := NewGetCategoryPageHandler(repo)

	page, err := handler.Handle(GetCategoryPageQuery{Slug: "Gift-Box"})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryGiftBox, page.Category)
	assert.NotEmpty(t, page.Metadata.Title)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "1", page.Products[0].ID)

	_, err = handler.Handle(GetCategoryPageQuery{Slug: "perfume"})
	assert.ErrorContains(t, err, "category not found")
}

func TestAdminQueriesSeeEveryStatus(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{
		product("1", "Lavender Candle", domain.CategoryCandles, domain.StatusVisible),
		product("2", "Hidden Candle", domain.CategoryCandles, domain.StatusHide),
		product("3", "Gone Candle", domain.CategoryCandles, domain.StatusDeleted),
	}}

	all, err := NewListAdminProductsHandler(repo).Handle(ListAdminProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	hidden, err := NewGetAdminProductHandler(repo).Handle(GetAdminProductQuery{ID: "2"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHide, hidden.Status)
}
