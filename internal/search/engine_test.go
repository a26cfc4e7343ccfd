package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

func snapshot() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Lavender Scented Candle", Category: "candles", Price: 120},
		{ID: "2", Name: "Vanilla Candle", Category: "candles", Price: 90},
		{ID: "3", Name: "Birthday Gift Box", Category: "gift box", Price: 250},
		{ID: "4", Name: "Anniversary Gift Box", Category: "gift box", Price: 250},
		{ID: "5", Name: "Rose Candle Jar", Category: "candles", Price: 90},
	}
}

func TestApplyTextQueryMatchesNameOrCategory(t *testing.T) {
	engine := NewEngine()

	f := DefaultFilters()
	f.Query = "candle"
	out := engine.Apply(snapshot(), f)
	require.Len(t, out, 3)
	for _, p := range out {
		assert.Equal(t, "candles", p.Category)
	}

	// Category text also matches, so "gift" finds the boxes.
	f.Query = "gift"
	out = engine.Apply(snapshot(), f)
	assert.Len(t, out, 2)
}

func TestApplyQueryNormalization(t *testing.T) {
	engine := NewEngine()

	// Dashes and underscores vanish from both sides of the comparison.
	f := DefaultFilters()
	f.Query = "can-dle"
	out := engine.Apply(snapshot(), f)
	assert.Len(t, out, 3)

	f.Query = "LAVENDER"
	out = engine.Apply(snapshot(), f)
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestApplyPriceBoundsAreInclusive(t *testing.T) {
	engine := NewEngine()

	f := DefaultFilters()
	f.MinPrice = 90
	f.MaxPrice = 120
	out := engine.Apply(snapshot(), f)
	require.Len(t, out, 3)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Price, 90.0)
		assert.LessOrEqual(t, p.Price, 120.0)
	}
}

func TestApplyCategoryFilterIsExact(t *testing.T) {
	engine := NewEngine()

	f := DefaultFilters()
	f.Category = "gift box"
	out := engine.Apply(snapshot(), f)
	require.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, "gift box", p.Category)
	}
}

func TestApplyCombinedFiltersPriceAscending(t *testing.T) {
	engine := NewEngine()

	f := DefaultFilters()
	f.Query = "candle"
	f.SortBy = SortPriceAsc
	out := engine.Apply(snapshot(), f)

	require.Len(t, out, 3)
	assert.Equal(t, 90.0, out[0].Price)
	assert.Equal(t, 90.0, out[1].Price)
	assert.Equal(t, 120.0, out[2].Price)
}

func TestApplySortIsStableOnEqualKeys(t *testing.T) {
	engine := NewEngine()

	f := DefaultFilters()
	f.SortBy = SortPriceAsc
	out := engine.Apply(snapshot(), f)

	// Vanilla Candle (id 2) precedes Rose Candle Jar (id 5) in the input
	// and both cost 90, so the stable sort must keep that order.
	require.Len(t, out, 5)
	assert.Equal(t, "2", out[0].ID)
	assert.Equal(t, "5", out[1].ID)
}

func TestApplyIsIdempotent(t *testing.T) {
	engine := NewEngine()

	f := DefaultFilters()
	f.Query = "candle"
	f.SortBy = SortPriceDesc

	first := engine.Apply(snapshot(), f)
	second := engine.Apply(first, f)
	assert.Equal(t, first, second)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	engine := NewEngine()
	in := snapshot()

	f := DefaultFilters()
	f.SortBy = SortPriceDesc
	engine.Apply(in, f)

	assert.Equal(t, "1", in[0].ID)
	assert.Equal(t, "5", in[4].ID)
}

func TestApplySortByName(t *testing.T) {
	engine := NewEngine()

	out := engine.Apply(snapshot(), DefaultFilters())
	require.Len(t, out, 5)
	assert.Equal(t, "Anniversary Gift Box", out[0].Name)
	assert.Equal(t, "Vanilla Candle", out[4].Name)

	f := DefaultFilters()
	f.SortBy = SortNameDesc
	out = engine.Apply(snapshot(), f)
	assert.Equal(t, "Vanilla Candle", out[0].Name)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "giftbox", Normalize("Gift-Box"))
	assert.Equal(t, "gift box", Normalize("Gift Box!"))
	assert.Equal(t, "momscandle", Normalize("Mom's_Candle"))
	assert.Equal(t, "", Normalize("--__!!"))
}

func TestParseFiltersDefaults(t *testing.T) {
	f := ParseFilters(url.Values{})
	assert.Equal(t, DefaultFilters(), f)
	assert.Equal(t, 0.0, f.MinPrice)
	assert.Equal(t, float64(DefaultMaxPrice), f.MaxPrice)
	assert.Equal(t, SortNameAsc, f.SortBy)
}

func TestParseFiltersReadsParameters(t *testing.T) {
	values := url.Values{}
	values.Set("q", "candle")
	values.Set("category", "candles")
	values.Set("minPrice", "50")
	values.Set("maxPrice", "300")
	values.Set("sortBy", "price-desc")

	f := ParseFilters(values)
	assert.Equal(t, "candle", f.Query)
	assert.Equal(t, "candles", f.Category)
	assert.Equal(t, 50.0, f.MinPrice)
	assert.Equal(t, 300.0, f.MaxPrice)
	assert.Equal(t, SortPriceDesc, f.SortBy)
}

func TestParseFiltersIgnoresUnknownSortKey(t *testing.T) {
	values := url.Values{}
	values.Set("sortBy", "discount")
	f := ParseFilters(values)
	assert.Equal(t, SortNameAsc, f.SortBy)
}

func TestFiltersValuesOmitsDefaults(t *testing.T) {
	assert.Empty(t, DefaultFilters().Values())

	f := DefaultFilters()
	f.Query = "candle"
	f.MaxPrice = 300
	v := f.Values()
	assert.Equal(t, "candle", v.Get("q"))
	assert.Equal(t, "300", v.Get("maxPrice"))
	assert.Empty(t, v.Get("sortBy"))
}
