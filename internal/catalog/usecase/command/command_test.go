package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*domain.Product)}
}

func (f *fakeProductRepo) Create(p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindByID(id string) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindVisibleByID(id string) (*domain.Product, error) {
	p, err := f.FindByID(id)
	if err != nil || !p.IsVisible() {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindVisibleByName(name string) (*domain.Product, error) {
	for _, p := range f.products {
		if p.IsVisible() && strings.EqualFold(p.Name, name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeProductRepo) FindAllVisible() ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsVisible() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindVisibleByCategory(category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsVisible() && p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *domain.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return errors.New("record not found")
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStatus(id string, status domain.Status) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	p.Status = status
	cp := *p
	return &cp, nil
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

func validCreateCmd() CreateProductCommand {
	return CreateProductCommand{
		Name:        "Lavender Scented Candle",
		Description: "Hand poured soy wax",
		Price:       120,
		Discount:    10,
		Category:    domain.CategoryCandles,
		Status:      string(domain.StatusVisible),
		Sizes:       []string{"Small", "Large"},
		Variants: []domain.Variant{
			{Color: "Purple", PriceID: "price_purple", Images: []string{"purple.jpg"}},
		},
		Images: []string{"main.jpg"},
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	repo := newFakeProductRepo()
	handler := NewCreateProductHandler(repo)

	product, err := handler.Handle(validCreateCmd())
	require.NoError(t, err)
	assert.Len(t, product.ID, 36)
	assert.Equal(t, domain.StatusVisible, product.Status)
	assert.Len(t, repo.products, 1)
}

func TestCreateProductDefaultsToHidden(t *testing.T) {
	handler := NewCreateProductHandler(newFakeProductRepo())

	cmd := validCreateCmd()
	cmd.Status = ""
	product, err := handler.Handle(cmd)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHide, product.Status)
}

func TestCreateProductValidation(t *testing.T) {
	handler := NewCreateProductHandler(newFakeProductRepo())

	cases := []struct {
		name    string
		mutate  func(*CreateProductCommand)
		wantErr string
	}{
		{"missing name", func(c *CreateProductCommand) { c.Name = "" }, "name is required"},
		{"negative price", func(c *CreateProductCommand) { c.Price = -1 }, "price cannot be negative"},
		{"discount over 100", func(c *CreateProductCommand) { c.Discount = 101 }, "between 0 and 100"},
		{"negative discount", func(c *CreateProductCommand) { c.Discount = -5 }, "between 0 and 100"},
		{"unknown category", func(c *CreateProductCommand) { c.Category = "perfume" }, "unknown category"},
		{"unknown status", func(c *CreateProductCommand) { c.Status = "ARCHIVED" }, "unknown status"},
		{"no sizes", func(c *CreateProductCommand) { c.Sizes = nil }, "at least one size"},
		{"no variants", func(c *CreateProductCommand) { c.Variants = nil }, "at least one variant"},
		{"no images", func(c *CreateProductCommand) { c.Images = nil }, "at least one image"},
		{"variant without color", func(c *CreateProductCommand) {
			c.Variants = []domain.Variant{{PriceID: "price_x"}}
		}, "variant color is required"},
		{"duplicate variant color", func(c *CreateProductCommand) {
			c.Variants = []domain.Variant{
				{Color: "Purple", PriceID: "a"},
				{Color: "Purple", PriceID: "b"},
			}
		}, "duplicate variant color"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validCreateCmd()
			tc.mutate(&cmd)
			_, err := handler.Handle(cmd)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestUpdateProductReplacesFields(t *testing.T) {
	repo := newFakeProductRepo()
	created, err := NewCreateProductHandler(repo).Handle(validCreateCmd())
	require.NoError(t, err)

	handler := NewUpdateProductHandler(repo)
	cmd := UpdateProductCommand{
		ID:          created.ID,
		Name:        "Lavender Candle Deluxe",
		Description: created.Description,
		Price:       150,
		Discount:    0,
		Category:    domain.CategoryGiftBox,
		Status:      string(domain.StatusHide),
		Sizes:       created.Sizes,
		Variants:    created.Variants,
		Images:      created.Images,
	}
	updated, err := handler.Handle(cmd)
	require.NoError(t, err)

	assert.Equal(t, "Lavender Candle Deluxe", updated.Name)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, domain.StatusHide, updated.Status)
	assert.Equal(t, domain.CategoryGiftBox, updated.Category)
}

func TestUpdateProductRejectsRestoringDeleted(t *testing.T) {
	repo := newFakeProductRepo()
	created, err := NewCreateProductHandler(repo).Handle(validCreateCmd())
	require.NoError(t, err)

	require.NoError(t, NewDeleteProductHandler(repo).Handle(DeleteProductCommand{ID: created.ID}))

	cmd := UpdateProductCommand{
		ID:       created.ID,
		Name:     created.Name,
		Price:    created.Price,
		Category: created.Category,
		Status:   string(domain.StatusVisible),
		Sizes:    created.Sizes,
		Variants: created.Variants,
		Images:   created.Images,
	}
	_, err = NewUpdateProductHandler(repo).Handle(cmd)
	assert.ErrorContains(t, err, "cannot be restored")
}

func TestUpdateProductUnknownID(t *testing.T) {
	handler := NewUpdateProductHandler(newFakeProductRepo())

	cmd := UpdateProductCommand{ID: "missing"}
	_, err := handler.Handle(cmd)
	assert.ErrorContains(t, err, "not found")
}

func TestDeleteProductSetsDeletedStatus(t *testing.T) {
	repo := newFakeProductRepo()
	created, err := NewCreateProductHandler(repo).Handle(validCreateCmd())
	require.NoError(t, err)

	require.NoError(t, NewDeleteProductHandler(repo).Handle(DeleteProductCommand{ID: created.ID}))
	assert.Equal(t, domain.StatusDeleted, repo.products[created.ID].Status)
}

func TestDeleteProductUnknownID(t *testing.T) {
	handler := NewDeleteProductHandler(newFakeProductRepo())
	err := handler.Handle(DeleteProductCommand{ID: "missing"})
	assert.ErrorContains(t, err, "not found")
}
