package watch_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alnah/go-eq2svg/internal/watch"
)

// Notes:
// - These tests exercise real filesystem notifications and use generous
//   sleeps relative to the debounce interval to stay reliable on slow CI.

func TestWatchDebouncesRapidWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equations.md")
	if err := os.WriteFile(path, []byte("$$a$$\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w := watch.New(watch.WithDebounce(50 * time.Millisecond))
	if err := w.Watch(path, func() { calls.Add(1) }); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close() //nolint:errcheck // test cleanup

	// A burst of writes inside the debounce window coalesces to one callback.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("$$b$$\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("got %d callbacks, want 1", got)
	}
}

func TestWatchSeparateWritesFireSeparately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equations.md")
	if err := os.WriteFile(path, []byte("$$a$$\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w := watch.New(watch.WithDebounce(50 * time.Millisecond))
	if err := w.Watch(path, func() { calls.Add(1) }); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close() //nolint:errcheck // test cleanup

	if err := os.WriteFile(path, []byte("$$b$$\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)

	if err := os.WriteFile(path, []byte("$$c$$\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Errorf("got %d callbacks, want 2", got)
	}
}

func TestWatchMissingFile(t *testing.T) {
	t.Parallel()

	w := watch.New()
	err := w.Watch(filepath.Join(t.TempDir(), "missing.md"), func() {})
	if err == nil {
		t.Fatal("Watch() error = nil, want error for missing file")
	}
}
