package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/emre/storefront/internal/cart/domain"
	"github.com/emre/storefront/pkg/kvstore"
)

// slotKey is the persisted slot holding the serialized line sequence
const slotKey = "cart"

// KVCartRepository persists the cart as a JSON array of lines in a single
// key/value slot. There is no schema version; bytes that fail to decode
// are reported as an error and the caller falls back to an empty cart.
type KVCartRepository struct {
	store kvstore.Store
}

// NewKVCartRepository creates a new cart repository backed by the given store
func NewKVCartRepository(store kvstore.Store) *KVCartRepository {
	return &KVCartRepository{store: store}
}

// Load reads the persisted line sequence; an absent slot is an empty cart
func (r *KVCartRepository) Load(ctx context.Context) ([]domain.Line, error) {
	data, err := r.store.Get(ctx, slotKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart slot: %w", err)
	}

	var lines []domain.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart slot: %w", err)
	}
	return lines, nil
}

// Save writes the full line sequence, replacing the previous value
func (r *KVCartRepository) Save(ctx context.Context, lines []domain.Line) error {
	if lines == nil {
		lines = []domain.Line{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.store.Set(ctx, slotKey, data); err != nil {
		return fmt.Errorf("failed to save cart slot: %w", err)
	}
	return nil
}
