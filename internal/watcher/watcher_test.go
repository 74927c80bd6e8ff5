package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLFilter(t *testing.T) {
	assert.True(t, YAMLFilter("content/01-android.yaml"))
	assert.True(t, YAMLFilter("content/extra.YML"))
	assert.False(t, YAMLFilter("content/notes.txt"))
	assert.False(t, YAMLFilter("content/module.json"))
}

func TestNoHiddenFilter(t *testing.T) {
	assert.True(t, NoHiddenFilter("content/01-android.yaml"))
	assert.False(t, NoHiddenFilter("content/.01-android.yaml.swp"))
	assert.False(t, NoHiddenFilter("content/01-android.yaml~"))
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "created", EventTypeCreated.String())
	assert.Equal(t, "modified", EventTypeModified.String())
	assert.Equal(t, "deleted", EventTypeDeleted.String())
	assert.Equal(t, "renamed", EventTypeRenamed.String())
	assert.Equal(t, "unknown", EventType(99).String())
}

func TestContentWatcher_DebouncedBatch(t *testing.T) {
	dir := t.TempDir()

	cw, err := NewContentWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer cw.Stop()

	cw.AddFilter(YAMLFilter)
	cw.AddFilter(NoHiddenFilter)

	var mu sync.Mutex
	var batches [][]ChangeEvent
	done := make(chan struct{}, 1)
	cw.AddHandler(func(events []ChangeEvent) error {
		mu.Lock()
		batches = append(batches, events)
		mu.Unlock()
		select {
		case done <- struct{}{}:
		default:
		}

		return nil
	})

	require.NoError(t, cw.AddPath(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cw.Start(ctx))

	// A burst of writes to the same module plus one filtered file.
	target := filepath.Join(dir, "01-android.yaml")
	require.NoError(t, os.WriteFile(target, []byte("id: android-1\n"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("id: android-1\ntitle: Android\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for debounced batch")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, batches)

	// Deduplication by path means the burst collapses to one event for
	// the yaml module, and the txt file never appears.
	for _, batch := range batches {
		seen := make(map[string]int)
		for _, event := range batch {
			seen[event.Path]++
			assert.NotContains(t, event.Path, "notes.txt")
		}
		for path, count := range seen {
			assert.Equal(t, 1, count, "duplicate events for %s", path)
		}
	}
}

func TestContentWatcher_FilteredEventsNeverFire(t *testing.T) {
	dir := t.TempDir()

	cw, err := NewContentWatcher(30 * time.Millisecond)
	require.NoError(t, err)
	defer cw.Stop()

	cw.AddFilter(YAMLFilter)

	fired := make(chan struct{}, 1)
	cw.AddHandler(func(events []ChangeEvent) error {
		select {
		case fired <- struct{}{}:
		default:
		}

		return nil
	})

	require.NoError(t, cw.AddPath(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cw.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("hi"), 0o644))

	select {
	case <-fired:
		t.Fatal("handler fired for a filtered file")
	case <-time.After(300 * time.Millisecond):
	}
}
