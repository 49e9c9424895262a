package command

import (
	"context"
	"fmt"

	"github.com/emre/storefront/internal/cart/store"
)

// UpdateQuantityCommand represents the intent to set a line's quantity
type UpdateQuantityCommand struct {
	ProductID string
	Quantity  int
}

// UpdateQuantityHandler handles the update-quantity command
type UpdateQuantityHandler struct {
	store *store.Store
}

// NewUpdateQuantityHandler creates a new update-quantity handler
func NewUpdateQuantityHandler(store *store.Store) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{store: store}
}

// Handle sets the quantity for the given product id. A quantity of zero
// or less removes the line entirely; this is the decrement-to-zero
// deletion path, not an error. Unknown ids are a no-op.
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) error {
	if cmd.ProductID == "" {
		return fmt.Errorf("product id is required")
	}

	h.store.UpdateQuantity(ctx, cmd.ProductID, cmd.Quantity)
	return nil
}
