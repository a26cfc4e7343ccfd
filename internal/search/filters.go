package search

import (
	"net/url"
	"strconv"
)

// SortKey selects the ordering of search results
type SortKey string

const (
	SortNameAsc   SortKey = "name"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortCategory  SortKey = "category"
)

// DefaultMaxPrice is the upper bound applied when no maxPrice is given
const DefaultMaxPrice = 1000

// Filters is the transient search state. It is mirrored into the URL
// query string for shareability and never persisted.
type Filters struct {
	Query    string  `json:"query"`
	Category string  `json:"category"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	SortBy   SortKey `json:"sort_by"`
}

// DefaultFilters returns the filter state used when no parameters are set
func DefaultFilters() Filters {
	return Filters{
		MinPrice: 0,
		MaxPrice: DefaultMaxPrice,
		SortBy:   SortNameAsc,
	}
}

// ParseFilters reads the recognized query parameters (q, category,
// minPrice, maxPrice, sortBy). An absent parameter means its default.
func ParseFilters(values url.Values) Filters {
	f := DefaultFilters()

	f.Query = values.Get("q")
	f.Category = values.Get("category")

	if raw := values.Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinPrice = v
		}
	}
	if raw := values.Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MaxPrice = v
		}
	}
	if raw := values.Get("sortBy"); raw != "" {
		switch SortKey(raw) {
		case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortCategory:
			f.SortBy = SortKey(raw)
		}
	}

	return f
}

// Values encodes the filters back into query parameters, omitting defaults
func (f Filters) Values() url.Values {
	values := url.Values{}
	if f.Query != "" {
		values.Set("q", f.Query)
	}
	if f.Category != "" {
		values.Set("category", f.Category)
	}
	if f.MinPrice > 0 {
		values.Set("minPrice", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice < DefaultMaxPrice {
		values.Set("maxPrice", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.SortBy != SortNameAsc && f.SortBy != "" {
		values.Set("sortBy", string(f.SortBy))
	}
	return values
}
