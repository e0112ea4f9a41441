package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	logAdapter "github.com/bft-labs/petdb/internal/adapters/log"
)

func TestWatcher_NotifiesOnExternalWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pets.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rex 4\n"), 0o644))

	w := NewWatcher(path, 10*time.Millisecond, logAdapter.NewNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func() { calls.Add(1) }) }()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	// Unrelated files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())

	require.NoError(t, os.WriteFile(path, []byte("Rex 4\nMilo 7\n"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "pets.txt"), 0, logAdapter.NewNoopLogger())
	err := w.Run(context.Background(), func() {})
	require.Error(t, err)
}
