package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/divinelits/storefront/internal/cart/domain"
	"github.com/divinelits/storefront/internal/cart/repository"
	"github.com/divinelits/storefront/internal/cart/usecase/command"
	"github.com/divinelits/storefront/internal/cart/usecase/query"
)

// ProvideCartRepository provides the cart repository
func ProvideCartRepository(db *gorm.DB) (domain.CartRepository, error) {
	base, err := repository.NewGormCartRepository(db)
	if err != nil {
		return nil, err
	}
	return repository.NewGormCartRepositoryWithTracing(base), nil
}

// ProvideWishlistRepository provides the wishlist repository
func ProvideWishlistRepository(db *gorm.DB) (domain.WishlistRepository, error) {
	return repository.NewGormWishlistRepository(db)
}

// Command Handlers Providers
func ProvideAddItemHandler(repo domain.CartRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(repo)
}

func ProvideDelOneItemHandler(repo domain.CartRepository) *command.DelOneItemHandler {
	return command.NewDelOneItemHandler(repo)
}

func ProvideToggleWishlistHandler(repo domain.WishlistRepository) *command.ToggleWishlistHandler {
	return command.NewToggleWishlistHandler(repo)
}

func ProvideMarkPurchasedHandler(repo domain.CartRepository) *command.MarkPurchasedHandler {
	return command.NewMarkPurchasedHandler(repo)
}

// Query Handlers Providers
func ProvideGetCartHandler(repo domain.CartRepository) *query.GetCartHandler {
	return query.NewGetCartHandler(repo)
}

func ProvideGetTotalItemsHandler(repo domain.CartRepository) *query.GetTotalItemsHandler {
	return query.NewGetTotalItemsHandler(repo)
}

func ProvideGetWishlistHandler(repo domain.WishlistRepository) *query.GetWishlistHandler {
	return query.NewGetWishlistHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
	ProvideWishlistRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideDelOneItemHandler,
	ProvideToggleWishlistHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
	ProvideGetTotalItemsHandler,
	ProvideGetWishlistHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
