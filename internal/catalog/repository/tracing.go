package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/divinelits/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// CreateWithContext records a span around product creation
func (r *GormProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.category", product.Category),
			attribute.Float64("product.price", product.Price),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return nil
}

// FindVisibleByIDWithContext records a span around visible-product lookup
func (r *GormProductRepositoryWithTracing) FindVisibleByIDWithContext(ctx context.Context, id string) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindVisibleByID",
		trace.WithAttributes(
			attribute.String("product.id", id),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindVisibleByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.status", string(product.Status)),
	)
	return product, nil
}

// FindVisibleByNameWithContext records a span around slug resolution lookups
func (r *GormProductRepositoryWithTracing) FindVisibleByNameWithContext(ctx context.Context, name string) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindVisibleByName",
		trace.WithAttributes(
			attribute.String("product.name", name),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindVisibleByName(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return product, nil
}

// FindAllVisibleWithContext records a span around snapshot loads
func (r *GormProductRepositoryWithTracing) FindAllVisibleWithContext(ctx context.Context) ([]domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindAllVisible")
	defer span.End()

	products, err := r.GormProductRepository.FindAllVisible()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("products.count", len(products)))
	return products, nil
}
