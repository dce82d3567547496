package cmd

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool_BoundsConcurrency(t *testing.T) {
	p := newPool(2)
	var running, peak int32
	var mu sync.Mutex

	for i := 0; i < 8; i++ {
		p.submit(func() {
			n := atomic.AddInt32(&running, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
		})
	}
	p.wait()

	require.LessOrEqual(t, peak, int32(2))
	require.Equal(t, int32(0), atomic.LoadInt32(&running))
}

func TestPool_ZeroSizeStillRuns(t *testing.T) {
	p := newPool(0)
	done := false
	p.submit(func() { done = true })
	p.wait()
	require.True(t, done)
}
