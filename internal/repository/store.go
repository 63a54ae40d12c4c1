// Package repository holds the key/value persistence port and its adapters.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value is stored under the key.
var ErrKeyNotFound = errors.New("repository: key not found")

// KeyValueStore is the persistence port used by the submission store. Values
// are opaque bytes; the caller owns the encoding.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
