package query

import (
	"github.com/emre/storefront/internal/cart/store"
)

// GetTotalsQuery represents the query for cart totals
type GetTotalsQuery struct{}

// Totals holds the derived cart totals
type Totals struct {
	TotalPrice float64 `json:"total_price"`
	TotalItems int     `json:"total_items"`
}

// GetTotalsHandler handles the get-totals query
type GetTotalsHandler struct {
	store *store.Store
}

// NewGetTotalsHandler creates a new get-totals handler
func NewGetTotalsHandler(store *store.Store) *GetTotalsHandler {
	return &GetTotalsHandler{store: store}
}

// Handle returns the price and item totals; both are zero for an empty cart
func (h *GetTotalsHandler) Handle(_ GetTotalsQuery) Totals {
	return Totals{
		TotalPrice: h.store.TotalPrice(),
		TotalItems: h.store.TotalItems(),
	}
}
