package domain

import "context"

// Product represents an immutable catalog record. Products are created by
// the provider and never mutated afterwards.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	Description    string            `json:"description"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	Category       string            `json:"category"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"inStock"`
}

// Provider defines the contract for catalog access. Both calls simulate
// remote latency and never fail; an unknown id is a normal "not found"
// outcome reported as a nil product, not an error.
type Provider interface {
	FetchProducts(ctx context.Context) []Product
	FetchProductByID(ctx context.Context, id string) *Product
}
