// Package kv provides string-keyed blob storage backends.
//
// The inbox persists its whole record list as one value under one key, the
// way a mobile preferences store would. Backends are selected via
// configuration; see factory.go.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates that a key has no stored value.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store defines the interface for key-value blob storage.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the value stored under key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the store.
	Close() error
}
