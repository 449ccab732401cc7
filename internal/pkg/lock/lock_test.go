package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SerializesSameKey(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(ctx, "emp-1:2024-05-10")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, l.locks, "entries are dropped once unused")
}

func TestLocal_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewLocal()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	releaseA, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := l.Lock(ctx, "b")
	require.NoError(t, err)
	releaseB()
}

func TestLocal_ContextCancelled(t *testing.T) {
	l := NewLocal()

	release, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "k")
	assert.True(t, errors.Is(err, ErrNotAcquired))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	release()
	release() // second call is a no-op

	again, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)
	again()
}
