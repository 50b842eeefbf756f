package fs_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/veil/pkg/adapters/fs"
	"github.com/aretw0/veil/pkg/core"
)

func waitForEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "events channel closed before an event arrived")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a watch event")
		return core.Event{}
	}
}

func TestWatch_SeesAtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.json")
	repo := fs.NewRepository(fs.Config{Path: path})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)

	// Atomic save lands as a rename into place.
	require.NoError(t, repo.Save(ctx, testDocument()))

	ev := waitForEvent(t, events)
	assert.Equal(t, core.EventCreate, ev.Type)
	assert.Equal(t, path, ev.Path)
	assert.NotZero(t, ev.Timestamp)
}

func TestWatch_PatternFiltersOtherFiles(t *testing.T) {
	dir := t.TempDir()
	repo := fs.NewRepository(fs.Config{Path: filepath.Join(dir, "mapping.json")})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "*.json")
	require.NoError(t, err)

	// A YAML sibling must not produce an event; a JSON one must.
	require.NoError(t, repo.SaveTo(ctx, filepath.Join(dir, "other.yaml"), testDocument()))
	require.NoError(t, repo.SaveTo(ctx, filepath.Join(dir, "other.json"), testDocument()))

	ev := waitForEvent(t, events)
	assert.Equal(t, filepath.Join(dir, "other.json"), ev.Path)
}

func TestWatch_InvalidPattern(t *testing.T) {
	repo := fs.NewRepository(fs.Config{Path: filepath.Join(t.TempDir(), "mapping.json")})

	_, err := repo.Watch(context.Background(), "[")
	assert.Error(t, err)
}

func TestWatch_NoPath(t *testing.T) {
	repo := fs.NewRepository(fs.Config{})

	_, err := repo.Watch(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrNoPath)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	repo := fs.NewRepository(fs.Config{Path: filepath.Join(t.TempDir(), "mapping.json")})

	ctx, cancel := context.WithCancel(context.Background())
	events, err := repo.Watch(ctx, "")
	require.NoError(t, err)
	assert.True(t, repo.WatcherActive())

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("events channel did not close after cancel")
	}

	// The goroutine flips the flag off on its way out.
	assert.Eventually(t, func() bool { return !repo.WatcherActive() }, 2*time.Second, 10*time.Millisecond)
}
