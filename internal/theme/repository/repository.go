package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/storefront/pkg/kvstore"
)

// slotKey is the persisted slot holding the theme token
const slotKey = "theme"

// KVThemeRepository persists the theme token in a single key/value slot
type KVThemeRepository struct {
	store kvstore.Store
}

// NewKVThemeRepository creates a new theme repository backed by the given store
func NewKVThemeRepository(store kvstore.Store) *KVThemeRepository {
	return &KVThemeRepository{store: store}
}

// Load reads the persisted token; an absent slot is an empty token
func (r *KVThemeRepository) Load(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, slotKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load theme slot: %w", err)
	}
	return string(data), nil
}

// Save writes the token, replacing the previous value
func (r *KVThemeRepository) Save(ctx context.Context, token string) error {
	if err := r.store.Set(ctx, slotKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to save theme slot: %w", err)
	}
	return nil
}
