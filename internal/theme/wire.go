//go:build wireinject
// +build wireinject

package theme

import (
	"github.com/google/wire"

	"github.com/emre/storefront/internal/theme/delivery/http"
	"github.com/emre/storefront/internal/theme/domain"
	"github.com/emre/storefront/internal/theme/repository"
	"github.com/emre/storefront/internal/theme/store"
	"github.com/emre/storefront/internal/theme/usecase/command"
	"github.com/emre/storefront/internal/theme/usecase/query"
	"github.com/emre/storefront/pkg/kvstore"
)

// ProvideThemeRepository provides the theme repository
func ProvideThemeRepository(kv kvstore.Store) domain.Repository {
	return repository.NewKVThemeRepository(kv)
}

// Wire sets
var StoreSet = wire.NewSet(
	ProvideThemeRepository,
	store.New,
)

// InitializeHTTPHandler initializes the theme HTTP handler with all dependencies
func InitializeHTTPHandler(kv kvstore.Store) (*http.ThemeHandler, error) {
	wire.Build(
		StoreSet,
		command.NewToggleThemeHandler,
		query.NewGetThemeHandler,
		http.NewThemeHandlerWithDI,
	)
	return nil, nil
}
