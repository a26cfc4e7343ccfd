//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/divinelits/storefront/internal/cart/delivery/http"
	"github.com/divinelits/storefront/internal/cart/usecase/command"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CartHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCartHandlerWithDI,
	)
	return nil, nil
}

// InitializeMarkPurchasedHandler initializes the checkout event handler
func InitializeMarkPurchasedHandler(db *gorm.DB) (*command.MarkPurchasedHandler, error) {
	wire.Build(
		ProvideCartRepository,
		ProvideMarkPurchasedHandler,
	)
	return nil, nil
}
