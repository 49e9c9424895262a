package provider

import (
	"context"
	"time"

	"github.com/emre/storefront/internal/catalog/domain"
)

// StaticProvider serves the fixed product catalog with simulated latency,
// standing in for a remote catalog service during UI testing.
type StaticProvider struct {
	listDelay time.Duration
	itemDelay time.Duration
}

// NewStaticProvider creates a provider with the given simulated delays.
// Pass zero delays to disable the simulation (tests).
func NewStaticProvider(listDelay, itemDelay time.Duration) *StaticProvider {
	return &StaticProvider{
		listDelay: listDelay,
		itemDelay: itemDelay,
	}
}

// FetchProducts returns the full catalog after the list delay. A cancelled
// context returns early with no products; the caller is discarding the
// result in that case.
func (p *StaticProvider) FetchProducts(ctx context.Context) []domain.Product {
	if !sleep(ctx, p.listDelay) {
		return nil
	}

	products := make([]domain.Product, len(catalog))
	copy(products, catalog)
	return products
}

// FetchProductByID returns the matching product after the item delay, or
// nil when no product has the given id
func (p *StaticProvider) FetchProductByID(ctx context.Context, id string) *domain.Product {
	if !sleep(ctx, p.itemDelay) {
		return nil
	}

	for _, product := range catalog {
		if product.ID == id {
			found := product
			return &found
		}
	}
	return nil
}

// sleep waits for d or until ctx is cancelled, reporting whether the full
// delay elapsed
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
