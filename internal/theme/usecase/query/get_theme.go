package query

import (
	"github.com/emre/storefront/internal/theme/domain"
	"github.com/emre/storefront/internal/theme/store"
)

// GetThemeQuery represents the query for the current theme
type GetThemeQuery struct{}

// ThemeView holds the current flag and its derived theme
type ThemeView struct {
	IsDark bool         `json:"is_dark"`
	Theme  domain.Theme `json:"theme"`
}

// GetThemeHandler handles the get-theme query
type GetThemeHandler struct {
	store *store.Store
}

// NewGetThemeHandler creates a new get-theme handler
func NewGetThemeHandler(store *store.Store) *GetThemeHandler {
	return &GetThemeHandler{store: store}
}

// Handle returns the current flag and derived theme
func (h *GetThemeHandler) Handle(_ GetThemeQuery) ThemeView {
	return ThemeView{
		IsDark: h.store.IsDark(),
		Theme:  h.store.Theme(),
	}
}
