package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "effects.yaml")
	other := filepath.Join(dir, "other.yaml")
	for _, p := range []string{target, other} {
		if err := os.WriteFile(p, []byte("effects: []\n"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(target, []byte("effects: [{name: A}]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	want, _ := filepath.Abs(target)
	select {
	case got := <-w.Events:
		if got != want {
			t.Errorf("event for %q, want %q", got, want)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	target := filepath.Join(t.TempDir(), "effects.yaml")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: got %v, want nil", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			// a queued event is acceptable, the channel must close after it
			for range w.Events {
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Events was not closed")
	}
}

func TestNewWatcher_Errors(t *testing.T) {
	if _, err := NewWatcher(); err == nil {
		t.Error("NewWatcher() with no files should fail")
	}
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "effects.yaml")); err == nil {
		t.Error("NewWatcher() in a missing directory should fail")
	}
}
