package command

import (
	"context"
	"fmt"

	"github.com/emre/storefront/internal/cart/store"
	catalog "github.com/emre/storefront/internal/catalog/domain"
)

// AddToCartCommand represents the intent to add one unit of a product
type AddToCartCommand struct {
	ProductID string
}

// AddToCartHandler handles the add-to-cart command
type AddToCartHandler struct {
	store   *store.Store
	catalog catalog.Provider
}

// NewAddToCartHandler creates a new add-to-cart handler
func NewAddToCartHandler(store *store.Store, provider catalog.Provider) *AddToCartHandler {
	return &AddToCartHandler{store: store, catalog: provider}
}

// Handle resolves the product from the catalog and adds it to the cart.
// An existing line for the product gains one unit; otherwise a new line
// with quantity 1 is appended.
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*catalog.Product, error) {
	if cmd.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	product := h.catalog.FetchProductByID(ctx, cmd.ProductID)
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	h.store.AddToCart(ctx, *product)
	return product, nil
}
