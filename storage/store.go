// Package storage provides the key-value store the application persists to.
// Values are serialized JSON text; keys are logical names, some prefixed by
// a user id (e.g. "progress_<userId>"). Backends: in-memory, SQLite file,
// Redis and Postgres, selected by configuration.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
