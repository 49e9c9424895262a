package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a slot has no stored value.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a durable key/value store holding one value per named slot.
// Values survive process restarts; deleting a slot is not required to
// clear it (callers may store an empty value instead).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
