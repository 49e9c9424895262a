package query

import (
	"github.com/emre/storefront/internal/cart/domain"
	"github.com/emre/storefront/internal/cart/store"
)

// GetCartQuery represents the query for the current line sequence
type GetCartQuery struct{}

// GetCartHandler handles the get-cart query
type GetCartHandler struct {
	store *store.Store
}

// NewGetCartHandler creates a new get-cart handler
func NewGetCartHandler(store *store.Store) *GetCartHandler {
	return &GetCartHandler{store: store}
}

// Handle returns the current lines in insertion order
func (h *GetCartHandler) Handle(_ GetCartQuery) []domain.Line {
	return h.store.Items()
}
