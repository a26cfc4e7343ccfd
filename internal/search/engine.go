// Package search implements the storefront's filter and sort engine. It
// recomputes from the full visible-product snapshot on every call; catalogs
// in this domain are small, so there is no incremental state to maintain.
package search

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// Engine filters and sorts product snapshots. It is a pure function of
// its inputs; applying the same filters twice yields identical output.
type Engine struct {
	collator *collate.Collator
}

// NewEngine creates a search engine with locale-aware string ordering
func NewEngine() *Engine {
	return &Engine{
		collator: collate.New(language.English),
	}
}

// Normalize strips dashes, underscores, and all other non-word characters
// and lower-cases the rest, so "Gift-Box" and "gift box" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '-' || r == '_':
			// dropped
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Apply filters and sorts the snapshot. The input slice is never mutated.
func (e *Engine) Apply(products []domain.Product, f Filters) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))

	query := Normalize(f.Query)
	for _, p := range products {
		if query != "" &&
			!strings.Contains(Normalize(p.Name), query) &&
			!strings.Contains(Normalize(p.Category), query) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.Price < f.MinPrice || p.Price > f.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	e.sortProducts(filtered, f.SortBy)
	return filtered
}

// sortProducts orders in place with a stable sort; products carry no
// secondary key, so ties must keep their relative input order.
func (e *Engine) sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return e.collator.CompareString(products[i].Name, products[j].Name) > 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortCategory:
		sort.SliceStable(products, func(i, j int) bool {
			return e.collator.CompareString(products[i].Category, products[j].Category) < 0
		})
	default: // SortNameAsc
		sort.SliceStable(products, func(i, j int) bool {
			return e.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
