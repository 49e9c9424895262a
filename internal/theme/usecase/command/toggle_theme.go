package command

import (
	"context"

	"github.com/emre/storefront/internal/theme/domain"
	"github.com/emre/storefront/internal/theme/store"
)

// ToggleThemeCommand represents the intent to flip the theme flag
type ToggleThemeCommand struct{}

// ToggleThemeResult holds the state after the flip
type ToggleThemeResult struct {
	IsDark bool         `json:"is_dark"`
	Theme  domain.Theme `json:"theme"`
}

// ToggleThemeHandler handles the toggle-theme command
type ToggleThemeHandler struct {
	store *store.Store
}

// NewToggleThemeHandler creates a new toggle-theme handler
func NewToggleThemeHandler(store *store.Store) *ToggleThemeHandler {
	return &ToggleThemeHandler{store: store}
}

// Handle flips the flag and returns the new flag with its derived theme
func (h *ToggleThemeHandler) Handle(ctx context.Context, _ ToggleThemeCommand) ToggleThemeResult {
	isDark := h.store.Toggle(ctx)
	return ToggleThemeResult{
		IsDark: isDark,
		Theme:  domain.ThemeFor(isDark),
	}
}
