package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) run(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, path)
	return nil
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) waitFor(t *testing.T, n int) []string {
	t.Helper()
	for i := 0; i < 30; i++ {
		if calls := r.snapshot(); len(calls) >= n {
			return calls
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("expected %d run(s), got %d", n, len(r.snapshot()))
	return nil
}

func start(t *testing.T, paths []string, rec *recorder, opts ...Option) {
	t.Helper()
	w, err := New(paths, rec.run, nil, opts...)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("run: %v", err)
		}
	})
	time.Sleep(200 * time.Millisecond)
}

func TestWatchTriggersRun(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pie.txt")
	os.WriteFile(file, []byte("Steps\n1. bake"), 0o644)

	rec := &recorder{}
	start(t, []string{file}, rec)

	os.WriteFile(file, []byte("Steps\n1. bake\n2. cool"), 0o644)
	calls := rec.waitFor(t, 1)
	if calls[0] != file {
		t.Fatalf("run got %q, want %q", calls[0], file)
	}
}

func TestWatchDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pie.txt")
	os.WriteFile(file, []byte("a"), 0o644)

	rec := &recorder{}
	start(t, []string{file}, rec, WithDebounce(300*time.Millisecond))

	for _, body := range []string{"b", "c", "d"} {
		os.WriteFile(file, []byte(body), 0o644)
	}
	rec.waitFor(t, 1)
	time.Sleep(500 * time.Millisecond)
	if n := len(rec.snapshot()); n != 1 {
		t.Fatalf("expected 1 run for a burst of writes, got %d", n)
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pie.txt")
	other := filepath.Join(dir, "notes.txt")
	os.WriteFile(file, []byte("a"), 0o644)

	rec := &recorder{}
	start(t, []string{file}, rec)

	os.WriteFile(other, []byte("b"), 0o644)
	time.Sleep(400 * time.Millisecond)
	if n := len(rec.snapshot()); n != 0 {
		t.Fatalf("expected no runs, got %d", n)
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope", "pie.txt")}, nil, func(string) error { return nil })
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
