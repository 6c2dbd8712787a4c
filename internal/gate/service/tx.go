package service

import (
	"context"
	"sync"

	dErrors "hostelgate/pkg/domain-errors"
)

// RosterStoreTx provides the critical section around read-modify-append
// sequences on the roster. Implementations may wrap a database transaction
// or, in-memory, a coarse lock.
type RosterStoreTx interface {
	RunInTx(ctx context.Context, fn func(store RosterStore) error) error
}

// memoryTx serializes roster transactions with a single mutex. Id generation
// and the status/log commit both happen while it is held.
type memoryTx struct {
	mu    sync.Mutex
	store RosterStore
}

// NewMemoryTx wraps store in a coarse-lock transaction boundary.
func NewMemoryTx(store RosterStore) RosterStoreTx {
	return &memoryTx{store: store}
}

func (t *memoryTx) RunInTx(ctx context.Context, fn func(store RosterStore) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.store)
}
