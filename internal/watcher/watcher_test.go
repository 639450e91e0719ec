package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func waitForEvent(t *testing.T, w *FileWatcher) Event {
	t.Helper()
	select {
	case event, ok := <-w.Events():
		if !ok {
			t.Fatal("event channel closed")
		}
		return event
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestWatchErrors(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(filepath.Join(t.TempDir(), "missing.txt")); err != ErrPathNotExist {
		t.Errorf("expected ErrPathNotExist, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "one")
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := w.Watch(path); err != ErrAlreadyWatching {
		t.Errorf("expected ErrAlreadyWatching, got %v", err)
	}
	if err := w.Unwatch(filepath.Join(t.TempDir(), "other.txt")); err != ErrNotWatching {
		t.Errorf("expected ErrNotWatching, got %v", err)
	}
	if !w.IsWatching(path) {
		t.Error("expected IsWatching true")
	}
	if err := w.Unwatch(path); err != nil {
		t.Errorf("Unwatch failed: %v", err)
	}
	if w.IsWatching(path) {
		t.Error("expected IsWatching false after Unwatch")
	}
}

func TestWriteEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	writeFile(t, path, "initial")

	w, err := New(WithDebounce(50 * time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	writeFile(t, path, "changed")

	event := waitForEvent(t, w)
	if event.Path != path {
		t.Errorf("expected path %q, got %q", path, event.Path)
	}
	if !event.Op.Has(OpWrite) && !event.Op.Has(OpCreate) {
		t.Errorf("expected write or create op, got %v", event.Op)
	}
}

func TestDebounceCoalesces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "burst.txt")
	writeFile(t, path, "0")

	w, err := New(WithDebounce(time.Minute))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		writeFile(t, path, "x")
	}

	// Wait for the raw events to land in the pending map.
	deadline := time.Now().Add(3 * time.Second)
	for w.PendingCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no pending event recorded")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if got := w.PendingCount(); got != 1 {
		t.Errorf("expected 1 pending event, got %d", got)
	}

	w.Flush()
	event := waitForEvent(t, w)
	if event.Path != path {
		t.Errorf("expected path %q, got %q", path, event.Path)
	}
}

func TestIgnoresUnwatchedSiblings(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.txt")
	sibling := filepath.Join(dir, "sibling.txt")
	writeFile(t, watched, "a")
	writeFile(t, sibling, "b")

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(watched); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	writeFile(t, sibling, "changed")

	select {
	case event := <-w.Events():
		t.Errorf("unexpected event for %q", event.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestCloseShutsChannels(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Error("expected events channel to be closed")
	}
	if err := w.Watch("anything"); err != ErrWatcherClosed {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
	// Close is idempotent.
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
