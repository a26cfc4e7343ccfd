package query

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

// DefaultRandomSampleSize is the number of suggestions shown alongside a
// product detail page
const DefaultRandomSampleSize = 6

// RandomProductsQuery represents the query for a random product sample
type RandomProductsQuery struct {
	ExcludeID string
	Limit     int
}

// RandomProductsHandler handles random product sampling
type RandomProductsHandler struct {
	repo domain.ProductRepository
	rng  *rand.Rand
}

// NewRandomProductsHandler creates a new random products handler
func NewRandomProductsHandler(repo domain.ProductRepository) *RandomProductsHandler {
	return &RandomProductsHandler{
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Handle shuffles the visible snapshot uniformly, drops the excluded
// product, and returns the first Limit items. Callers must not expect
// repeatable order between calls.
func (h *RandomProductsHandler) Handle(query RandomProductsQuery) ([]domain.Product, error) {
	if query.Limit <= 0 {
		query.Limit = DefaultRandomSampleSize
	}

	products, err := h.repo.FindAllVisible()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	shuffled := make([]domain.Product, len(products))
	copy(shuffled, products)

	// Fisher-Yates: uniform over permutations
	for i := len(shuffled) - 1; i > 0; i-- {
		j := h.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	sample := make([]domain.Product, 0, query.Limit)
	for _, p := range shuffled {
		if p.ID == query.ExcludeID {
			continue
		}
		sample = append(sample, p)
		if len(sample) == query.Limit {
			break
		}
	}

	return sample, nil
}
