package blobstore

import (
	"context"
	"errors"
)

// ErrNoKey is returned by Get when the slot has never been written.
var ErrNoKey = errors.New("no such key")

// Store is a narrow durable slot: one opaque value per key. The cart
// persists its whole serialized line list under a single key, so a
// backend only needs get/set semantics to be swappable.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
