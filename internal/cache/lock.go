package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
)

// Lock holds an exclusive flock on the cache root. Acquisition is a
// check-then-act sequence over the filesystem, so concurrent invocations
// against the same triple are serialized through this lock.
type Lock struct {
	f *os.File
}

// Lock blocks until the cache-wide lock is acquired and writes the holder's
// PID into the lock file.
func (s *Store) Lock() (*Lock, error) {
	path := filepath.Join(s.Root, ".lock")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not lock %s: %w", path, err)
	}
	if err := f.Truncate(0); err == nil {
		_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
	}
	return &Lock{f: f}, nil
}

// Unlock releases the lock.
func (l *Lock) Unlock() {
	if l == nil || l.f == nil {
		return
	}
	_ = syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
	_ = l.f.Close()
	l.f = nil
}
