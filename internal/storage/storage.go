// Package storage defines the key-value boundary behind which the shopping
// list is persisted as an opaque blob, mirroring the browser localStorage
// model the frontend originally relied on.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Keys used by the application. ItemsKey holds the serialized item
// collection; ThemeKey holds the display mode and belongs to the frontend.
const (
	ItemsKey = "shoppingItems"
	ThemeKey = "theme"
)

// KV stores whole values under string keys. Writes replace the previous
// value atomically; there is no partial update.
type KV interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
