//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	"github.com/emre/storefront/internal/cart/delivery/http"
	"github.com/emre/storefront/internal/cart/domain"
	"github.com/emre/storefront/internal/cart/repository"
	"github.com/emre/storefront/internal/cart/store"
	"github.com/emre/storefront/internal/cart/usecase/command"
	"github.com/emre/storefront/internal/cart/usecase/query"
	catalog "github.com/emre/storefront/internal/catalog/domain"
	"github.com/emre/storefront/pkg/kvstore"
)

// ProvideCartRepository provides the cart repository
func ProvideCartRepository(kv kvstore.Store) domain.Repository {
	return repository.NewKVCartRepository(kv)
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideCartRepository,
	store.New,
)

// InitializeHTTPHandler initializes the cart HTTP handler with all dependencies
func InitializeHTTPHandler(kv kvstore.Store, provider catalog.Provider) (*http.CartHandler, error) {
	wire.Build(
		StoreSet,
		command.NewAddToCartHandler,
		command.NewRemoveFromCartHandler,
		command.NewUpdateQuantityHandler,
		command.NewClearCartHandler,
		command.NewCheckoutHandler,
		query.NewGetCartHandler,
		query.NewGetTotalsHandler,
		http.NewCartHandlerWithDI,
	)
	return nil, nil
}
