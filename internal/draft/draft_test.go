package draft

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{values: make(map[string][]byte)}
}

func (f *fakeStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStorage) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.sets++
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeStorage) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()

	d := New("day-1-intro")
	d.Title = "Day 1: Intro"
	d.Content = "updated body"

	saved, err := Save(ctx, storage, d)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.SavedAt.IsZero())

	loaded, ok, err := Load(ctx, storage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved.ID, loaded.ID)
	assert.Equal(t, "updated body", loaded.Content)
}

func TestLoadWithoutDraft(t *testing.T) {
	_, ok, err := Load(context.Background(), newFakeStorage())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()

	_, err := Save(ctx, storage, New("slug"))
	require.NoError(t, err)
	require.NoError(t, Clear(ctx, storage))

	_, ok, err := Load(ctx, storage)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAutosaverSavesOnTicks(t *testing.T) {
	storage := newFakeStorage()

	var mu sync.Mutex
	content := "v1"
	source := func() Draft {
		mu.Lock()
		defer mu.Unlock()
		return Draft{ID: "fixed", Slug: "slug", Content: content}
	}

	saver := NewAutosaver(storage, source, 10*time.Millisecond, testLogger())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- saver.Run(ctx) }()

	require.Eventually(t, func() bool { return storage.setCount() >= 2 }, time.Second, 5*time.Millisecond)

	mu.Lock()
	content = "v2"
	mu.Unlock()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	// The final save on shutdown captured the latest edit.
	loaded, ok, err := Load(context.Background(), storage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", loaded.Content)
}
