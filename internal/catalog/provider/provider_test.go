package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts_ReturnsFullCatalog(t *testing.T) {
	p := NewStaticProvider(0, 0)

	products := p.FetchProducts(context.Background())

	require.Len(t, products, 5)

	seen := make(map[string]bool)
	for _, product := range products {
		assert.False(t, seen[product.ID], "duplicate product id %s", product.ID)
		seen[product.ID] = true

		assert.NotEmpty(t, product.Name)
		assert.GreaterOrEqual(t, product.Price, 0.0)
		assert.NotEmpty(t, product.Images, "image list must be non-empty")
		assert.GreaterOrEqual(t, product.Rating, 0.0)
		assert.LessOrEqual(t, product.Rating, 5.0)
		assert.GreaterOrEqual(t, product.Reviews, 0)
	}
}

func TestFetchProductByID_KnownID(t *testing.T) {
	p := NewStaticProvider(0, 0)

	product := p.FetchProductByID(context.Background(), "1")

	require.NotNil(t, product)
	assert.Equal(t, "iPhone 15 Pro", product.Name)
}

func TestFetchProductByID_UnknownIDIsNotFoundNotError(t *testing.T) {
	p := NewStaticProvider(0, 0)

	product := p.FetchProductByID(context.Background(), "999")

	assert.Nil(t, product)
}

func TestFetchProducts_SimulatesLatency(t *testing.T) {
	delay := 30 * time.Millisecond
	p := NewStaticProvider(delay, 0)

	start := time.Now()
	products := p.FetchProducts(context.Background())

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Len(t, products, 5)
}

func TestFetchProducts_CancelledContextReturnsEarly(t *testing.T) {
	p := NewStaticProvider(10*time.Second, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.Nil(t, p.FetchProducts(ctx))
		assert.Nil(t, p.FetchProductByID(ctx, "1"))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("provider did not honor context cancellation")
	}
}

func TestFetchProducts_ReturnsIndependentSlices(t *testing.T) {
	p := NewStaticProvider(0, 0)
	ctx := context.Background()

	first := p.FetchProducts(ctx)
	first[0].Name = "mutated"

	second := p.FetchProducts(ctx)
	assert.Equal(t, "iPhone 15 Pro", second[0].Name)
}
