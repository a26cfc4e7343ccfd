package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/divinelits/storefront/internal/catalog/domain"
	"github.com/divinelits/storefront/internal/catalog/repository"
	"github.com/divinelits/storefront/internal/catalog/usecase/command"
	"github.com/divinelits/storefront/internal/catalog/usecase/query"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// Command Handlers Providers
func ProvideCreateProductHandler(repo domain.ProductRepository) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo)
}

func ProvideUpdateProductHandler(repo domain.ProductRepository) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(repo)
}

func ProvideDeleteProductHandler(repo domain.ProductRepository) *command.DeleteProductHandler {
	return command.NewDeleteProductHandler(repo)
}

// Query Handlers Providers
func ProvideGetProductHandler(repo domain.ProductRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideGetProductBySlugHandler(repo domain.ProductRepository) *query.GetProductBySlugHandler {
	return query.NewGetProductBySlugHandler(repo)
}

func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideRandomProductsHandler(repo domain.ProductRepository) *query.RandomProductsHandler {
	return query.NewRandomProductsHandler(repo)
}

func ProvideGetCategoryPageHandler(repo domain.ProductRepository) *query.GetCategoryPageHandler {
	return query.NewGetCategoryPageHandler(repo)
}

func ProvideListAdminProductsHandler(repo domain.ProductRepository) *query.ListAdminProductsHandler {
	return query.NewListAdminProductsHandler(repo)
}

func ProvideGetAdminProductHandler(repo domain.ProductRepository) *query.GetAdminProductHandler {
	return query.NewGetAdminProductHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideUpdateProductHandler,
	ProvideDeleteProductHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetProductHandler,
	ProvideGetProductBySlugHandler,
	ProvideListProductsHandler,
	ProvideRandomProductsHandler,
	ProvideGetCategoryPageHandler,
	ProvideListAdminProductsHandler,
	ProvideGetAdminProductHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
