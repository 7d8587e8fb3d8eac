package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryInterval = 100 * time.Millisecond

// WriterLock is an advisory file lock that keeps two processes from mutating
// the same database at once.
type WriterLock struct {
	path string
	lock *flock.Flock
}

// NewWriterLock returns a lock stored at path.
func NewWriterLock(path string) *WriterLock {
	return &WriterLock{path: path, lock: flock.New(path)}
}

// LockPathFor returns the lock file used for a sqlite database path.
func LockPathFor(dbPath string) string {
	return dbPath + ".lock"
}

// Acquire blocks until the lock is held or ctx is done.
func (l *WriterLock) Acquire(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating lock directory: %w", err)
	}
	locked, err := l.lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("acquire writer lock %s: %w", l.path, err)
	}
	if !locked {
		return fmt.Errorf("another herdsync process holds %s", l.path)
	}
	return nil
}

// TryAcquire takes the lock without waiting.
func (l *WriterLock) TryAcquire() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return false, fmt.Errorf("creating lock directory: %w", err)
	}
	return l.lock.TryLock()
}

// Release drops the lock. Releasing an unheld lock is a no-op.
func (l *WriterLock) Release() error {
	if !l.lock.Locked() {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release writer lock %s: %w", l.path, err)
	}
	return nil
}

func (l *WriterLock) Path() string { return l.path }
