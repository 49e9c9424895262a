package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/emre/storefront/internal/cart/store"
	"github.com/emre/storefront/pkg/logger"
)

// CheckoutCommand represents the intent to check out the current cart
type CheckoutCommand struct{}

// CheckoutResult summarizes the completed checkout
type CheckoutResult struct {
	OrderRef   string  `json:"order_ref"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

// CheckoutHandler handles the checkout command. Checkout is a local
// reset: there is no payment and no inventory, the cart is summarized
// and cleared.
type CheckoutHandler struct {
	store *store.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(store *store.Store) *CheckoutHandler {
	return &CheckoutHandler{store: store}
}

// Handle validates the cart is non-empty, issues an order reference and
// clears the cart
func (h *CheckoutHandler) Handle(ctx context.Context, _ CheckoutCommand) (*CheckoutResult, error) {
	items := h.store.TotalItems()
	if items == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	result := &CheckoutResult{
		OrderRef:   fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		TotalItems: items,
		TotalPrice: h.store.TotalPrice(),
	}

	logger.Info(ctx).
		Str("order_ref", result.OrderRef).
		Int("total_items", result.TotalItems).
		Float64("total_price", result.TotalPrice).
		Msg("Checkout completed")

	h.store.ClearCart(ctx)
	return result, nil
}
