package cache

import "context"

// Store keeps calculated distributions by key.
type Store[T any] interface {
	Get(ctx context.Context, key string) (T, bool, error)
	Put(ctx context.Context, key string, v T) error
}
