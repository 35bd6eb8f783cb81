// Package store provides the local key/value persistence used for the
// session snapshot. Get returns (nil, nil) for a missing key.
package store

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
