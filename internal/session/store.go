package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Store keeps session snapshots for a limited time.
type Store interface {
	// Get returns the snapshot of id or ErrNotFound.
	Get(ctx context.Context, id string) (Snapshot, error)
	// Put stores the snapshot and (re)arms its expiry.
	Put(ctx context.Context, id string, snap Snapshot, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error
	// Name identifies the backend in logs and /infra.
	Name() string
}
