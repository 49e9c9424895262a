package command

import (
	"context"
	"fmt"

	"github.com/emre/storefront/internal/cart/store"
)

// RemoveFromCartCommand represents the intent to drop a product's line
type RemoveFromCartCommand struct {
	ProductID string
}

// RemoveFromCartHandler handles the remove-from-cart command
type RemoveFromCartHandler struct {
	store *store.Store
}

// NewRemoveFromCartHandler creates a new remove-from-cart handler
func NewRemoveFromCartHandler(store *store.Store) *RemoveFromCartHandler {
	return &RemoveFromCartHandler{store: store}
}

// Handle removes the line for the given product id. Removing an id that
// is not in the cart is a no-op, so the call is idempotent.
func (h *RemoveFromCartHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if cmd.ProductID == "" {
		return fmt.Errorf("product id is required")
	}

	h.store.RemoveFromCart(ctx, cmd.ProductID)
	return nil
}
