package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialQueue_RunsInOrder(t *testing.T) {
	q := newSerialQueue()
	defer q.Close()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		q.Enqueue(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	require.NoError(t, q.Flush(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestSerialQueue_CloseDrains(t *testing.T) {
	q := newSerialQueue()
	ran := 0
	for i := 0; i < 5; i++ {
		q.Enqueue(func() { ran++ })
	}
	q.Close()
	assert.Equal(t, 5, ran)
	assert.False(t, q.Enqueue(func() { ran++ }))
	assert.Equal(t, 5, ran)
}

func TestSerialQueue_FlushHonoursContext(t *testing.T) {
	q := newSerialQueue()
	release := make(chan struct{})
	q.Enqueue(func() { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Flush(ctx), context.DeadlineExceeded)

	close(release)
	q.Close()
}
