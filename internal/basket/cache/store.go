package cache

import (
	"context"
	"errors"
)

// Store abstracts the external key-value cache. Any store with these three
// operations can back the basket repository; the repository never sees the
// concrete cache technology.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrKeyNotFound = errors.New("key not found")
