//go:build unit

package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwait(t *testing.T) {
	t.Run("success: finished outcome wins over an expired deadline", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		for range 200 {
			done := make(chan outcome, 1)
			done <- outcome{data: "booked"}

			out, finished := await(ctx, done)

			assert.True(t, finished)
			assert.Equal(t, "booked", out.data)
		}
	})

	t.Run("error: expired deadline without an outcome", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, finished := await(ctx, make(chan outcome, 1))

		assert.False(t, finished)
	})
}
