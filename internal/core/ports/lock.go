package ports

import "context"

// DirLocker provides cross-process mutual exclusion keyed by a lock file
// path. It is the sole mutual-exclusion mechanism for manual compilation:
// the batch itself is sequential, but an independent process may attempt
// compilation of the same target concurrently.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type DirLocker interface {
	// Acquire blocks until the exclusive lock behind path is held. The lock
	// file is created if absent.
	Acquire(ctx context.Context, path string) (LockHandle, error)
}

// LockHandle is a held cross-process lock. Release must be called exactly
// once on every exit path of the holder.
type LockHandle interface {
	Release() error
}
