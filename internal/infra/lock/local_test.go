//go:build unit

package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"commerce-actions/internal/infra/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal(t *testing.T) {
	t.Run("success: serializes holders of one key", func(t *testing.T) {
		l := lock.NewLocal()
		var inside, maxInside atomic.Int32

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(context.Background(), "calendar:primary")
				if !assert.NoError(t, err) {
					return
				}
				defer unlock()

				n := inside.Add(1)
				for {
					m := maxInside.Load()
					if n <= m || maxInside.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), maxInside.Load())
	})

	t.Run("success: different keys do not block", func(t *testing.T) {
		l := lock.NewLocal()
		unlockA, err := l.Lock(context.Background(), "a")
		require.NoError(t, err)
		defer unlockA()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		unlockB, err := l.Lock(ctx, "b")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("error: waiting honors context", func(t *testing.T) {
		l := lock.NewLocal()
		unlock, err := l.Lock(context.Background(), "a")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = l.Lock(ctx, "a")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		unlock()
		unlock()

		again, err := l.Lock(context.Background(), "a")
		require.NoError(t, err)
		again()
	})
}
