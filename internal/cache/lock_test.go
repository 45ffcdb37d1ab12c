package cache

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestLockWritesPIDAndReleases(t *testing.T) {
	s := NewStore(t.TempDir())

	lock, err := s.Lock()
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(s.Root, ".lock"))
	if err != nil {
		t.Fatalf("lock file: %v", err)
	}
	if string(data) != strconv.Itoa(os.Getpid()) {
		t.Errorf("lock file holds %q, want own pid", data)
	}
	lock.Unlock()
	// Unlock 可以安全重复调用
	lock.Unlock()

	// 释放后可以再次获取
	again, err := s.Lock()
	if err != nil {
		t.Fatalf("re-acquire: %v", err)
	}
	again.Unlock()
}
