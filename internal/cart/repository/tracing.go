package repository

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/divinelits/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// GormCartRepositoryWithTracing wraps the cart repository with OpenTelemetry spans
type GormCartRepositoryWithTracing struct {
	*GormCartRepository
}

// NewGormCartRepositoryWithTracing creates a traced cart repository
func NewGormCartRepositoryWithTracing(base *GormCartRepository) *GormCartRepositoryWithTracing {
	return &GormCartRepositoryWithTracing{GormCartRepository: base}
}

func (r *GormCartRepositoryWithTracing) FindByUserWithContext(ctx context.Context, userID uint) ([]domain.CartLine, error) {
	_, span := tracer.Start(ctx, "CartRepository.FindByUser")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.table", "cart_lines"),
		attribute.String("user.id", strconv.FormatUint(uint64(userID), 10)),
	)

	lines, err := r.FindByUser(userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("cart.lines", len(lines)))
	return lines, nil
}

func (r *GormCartRepositoryWithTracing) SaveWithContext(ctx context.Context, line *domain.CartLine) error {
	_, span := tracer.Start(ctx, "CartRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("db.operation", "UPSERT"),
		attribute.String("db.table", "cart_lines"),
		attribute.String("product.id", line.ProductID),
	)

	if err := r.Save(line); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
