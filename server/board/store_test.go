package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour)
	store.now = func() time.Time { return now }

	first, created := store.Get("")
	assert.True(t, created)
	assert.NotEmpty(t, first.ID)

	again, created := store.Get(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	unknown, created := store.Get("unknown")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, unknown.ID)
	assert.Equal(t, 2, store.Len())

	now = now.Add(30 * time.Minute)
	store.Get(first.ID)

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, store.Cleanup())
	assert.Equal(t, 1, store.Len())

	now = now.Add(time.Hour)
	expired, created := store.Get(first.ID)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, expired.ID)
}

func TestStoreRunWithoutInterval(t *testing.T) {
	store := NewStore(time.Hour)

	done := make(chan struct{})
	go func() {
		store.Run(context.Background(), 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return for a zero interval")
	}
}
