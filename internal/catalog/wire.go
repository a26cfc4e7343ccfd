//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/divinelits/storefront/internal/catalog/cache"
	"github.com/divinelits/storefront/internal/catalog/delivery/http"
	"github.com/divinelits/storefront/kafka"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, snapshot *cache.SnapshotCache, publisher *kafka.Publisher) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
