package store

import (
	"context"
	"errors"

	"pairplay/internal/domain"
)

// ErrNotFound is returned when a session id does not resolve.
var ErrNotFound = errors.New("session not found")

// ChangeFunc receives the latest full session record after every successful
// Replace, including the subscriber's own writes.
type ChangeFunc func(*domain.Session)

// SessionStore is the sole persistence boundary for shared sessions.
//
// Replace takes a full record and overwrites whatever is stored; there is no
// field-level merge and no version token. Callers serialize their
// read-modify-write cycles through Lock, which holds across every instance
// sharing the store, not just the local process.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Replace(ctx context.Context, id string, s *domain.Session) error

	// Lock blocks until the caller holds the session's write lock and
	// returns the release function. While held, no other Lock holder for
	// the same session exists anywhere the store is shared.
	Lock(ctx context.Context, id string) (func(), error)

	// Subscribe registers fn for every change to the session until the
	// returned cancel function is called. Self-delivery is guaranteed: the
	// writer's own Replace reaches its own subscription too.
	Subscribe(ctx context.Context, id string, fn ChangeFunc) (func(), error)
}
