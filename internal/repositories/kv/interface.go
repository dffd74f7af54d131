// Package kv implements the on-device durable key-value store backing the
// credential/session state. Values are opaque strings (JSON payloads); a
// missing key is not an error.
package kv

import "context"

type Repository interface {
	// Get returns the value stored under key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or overwrites the value under key.
	Set(ctx context.Context, key string, value string) error
	// Delete removes the key; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Clear removes every key.
	Clear(ctx context.Context) error
}
