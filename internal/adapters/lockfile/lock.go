// Package lockfile implements cross-process mutual exclusion with advisory
// file locks.
package lockfile

import (
	"context"
	"os"

	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirLocker = (*Locker)(nil)

// Locker implements ports.DirLocker using flock(2). Locks are advisory,
// exclusive, and released on file close or process exit, so a crashed
// holder never wedges later invocations.
type Locker struct{}

// NewLocker creates a new Locker.
func NewLocker() *Locker {
	return &Locker{}
}

// Acquire opens (creating if needed) the lock file and blocks until the
// exclusive lock is held. Cancelling ctx abandons the wait.
func (l *Locker) Acquire(ctx context.Context, path string) (ports.LockHandle, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644) //nolint:gosec // lock file path is derived internally
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open lock file"), "path", path)
	}

	acquired := make(chan error, 1)
	go func() {
		acquired <- flockExclusive(f)
	}()

	select {
	case err := <-acquired:
		if err != nil {
			_ = f.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to acquire lock"), "path", path)
		}
		return &handle{f: f}, nil
	case <-ctx.Done():
		// Closing the descriptor makes the pending flock fail, and releases
		// the lock if the race was lost.
		_ = f.Close()
		<-acquired
		return nil, zerr.With(zerr.Wrap(ctx.Err(), "lock acquisition abandoned"), "path", path)
	}
}

type handle struct {
	f *os.File
}

// Release drops the lock and closes the file.
func (h *handle) Release() error {
	if err := funlock(h.f); err != nil {
		_ = h.f.Close()
		return zerr.Wrap(err, "failed to release lock")
	}
	if err := h.f.Close(); err != nil {
		return zerr.Wrap(err, "failed to close lock file")
	}
	return nil
}
