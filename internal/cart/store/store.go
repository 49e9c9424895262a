package store

import (
	"context"
	"sync"

	"github.com/emre/storefront/internal/cart/domain"
	catalog "github.com/emre/storefront/internal/catalog/domain"
	"github.com/emre/storefront/pkg/logger"
)

// Store is the single source of truth for cart contents. Every mutation
// re-serializes and saves the full line sequence; persistence failures
// are logged and swallowed, leaving the in-memory state authoritative
// for the session. Saves run under the store lock, so durable state
// always reflects the latest mutation (single writer per store).
type Store struct {
	mu   sync.Mutex
	cart domain.Cart
	repo domain.Repository
}

// New creates a cart store starting from an empty cart. Call Load to
// restore persisted state; until it completes, readers observe the
// empty cart.
func New(repo domain.Repository) *Store {
	return &Store{repo: repo}
}

// Load restores the persisted line sequence, replacing the in-memory
// state atomically. Absent or malformed persisted data initializes an
// empty cart; the failure is logged, never surfaced.
func (s *Store) Load(ctx context.Context) {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to load cart, starting empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Replace(lines)
}

// AddToCart increments the quantity for the product's line or appends a
// new line with quantity 1
func (s *Store) AddToCart(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(product)
	s.persist(ctx)
}

// RemoveFromCart deletes the line for the given product id; absent ids
// are a no-op
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	s.persist(ctx)
}

// UpdateQuantity sets the line's quantity; zero or less removes the line
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, quantity)
	s.persist(ctx)
}

// ClearCart empties the cart. The persisted slot is overwritten with an
// empty sequence, not deleted.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.persist(ctx)
}

// Items returns a copy of the current line sequence
func (s *Store) Items() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// TotalPrice returns the sum of price times quantity over current lines
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

// TotalItems returns the sum of quantities over current lines
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// persist saves the full line sequence. Failures are logged only; the
// change stays applied in memory and is not retried. Callers hold the
// store lock.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.cart.Lines()); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to save cart")
	}
}
