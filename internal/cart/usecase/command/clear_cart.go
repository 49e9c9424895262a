package command

import (
	"context"

	"github.com/emre/storefront/internal/cart/store"
)

// ClearCartCommand represents the intent to empty the cart
type ClearCartCommand struct{}

// ClearCartHandler handles the clear-cart command
type ClearCartHandler struct {
	store *store.Store
}

// NewClearCartHandler creates a new clear-cart handler
func NewClearCartHandler(store *store.Store) *ClearCartHandler {
	return &ClearCartHandler{store: store}
}

// Handle empties the cart
func (h *ClearCartHandler) Handle(ctx context.Context, _ ClearCartCommand) error {
	h.store.ClearCart(ctx)
	return nil
}
