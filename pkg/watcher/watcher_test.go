package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineclip.yaml")
	if err := os.WriteFile(path, []byte("lines:\n  count: 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fw, err := NewFileWatcher(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	if err := fw.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := os.WriteFile(path, []byte("lines:\n  count: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	absPath, _ := filepath.Abs(path)
	select {
	case got := <-fw.Changes():
		if got != absPath {
			t.Errorf("expected change for %s, got %s", absPath, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineclip.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fw, err := NewFileWatcher(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	if err := fw.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case got := <-fw.Changes():
		t.Errorf("unexpected change notification for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCloseEndsChanges(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	fw.Start()

	done := make(chan struct{})
	go func() {
		for range fw.Changes() {
		}
		close(done)
	}()

	if err := fw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("reader still blocked on Changes after Close")
	}
}

func TestCloseTwice(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}
