package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadNotifier(t *testing.T) {
	n := NewReloadNotifier()

	cancelA, a := n.Subscribe()
	cancelB, b := n.Subscribe()
	require.Equal(t, 2, n.Len())

	n.Notify()
	n.Notify()

	assert.Len(t, a, 1)
	assert.Len(t, b, 1)

	cancelA()
	assert.Equal(t, 1, n.Len())
	_, ok := <-a
	assert.True(t, ok)
	_, ok = <-a
	assert.False(t, ok)

	n.Close()
	assert.Equal(t, 0, n.Len())
	cancelB()

	cancel, ch := n.Subscribe()
	defer cancel()
	assert.Nil(t, ch)
}
