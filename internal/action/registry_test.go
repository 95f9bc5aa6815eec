//go:build unit

package action_test

import (
	"context"
	"sync"
	"testing"

	"commerce-actions/internal/action"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, action.Args) (any, error) { return nil, nil }

func TestRegistry(t *testing.T) {
	t.Run("error: duplicate name", func(t *testing.T) {
		reg := action.NewRegistry()
		require.NoError(t, reg.Register(action.Spec{Name: "access_cart"}, noop))

		err := reg.Register(action.Spec{Name: "access_cart"}, noop)
		assert.ErrorIs(t, err, action.ErrDuplicateAction)
	})

	t.Run("error: unknown action", func(t *testing.T) {
		reg := action.NewRegistry()
		_, err := reg.Resolve("missing")
		assert.ErrorIs(t, err, action.ErrUnknownAction)
	})

	t.Run("error: register after first resolve", func(t *testing.T) {
		reg := action.NewRegistry()
		require.NoError(t, reg.Register(action.Spec{Name: "access_cart"}, noop))

		_, err := reg.Resolve("access_cart")
		require.NoError(t, err)

		err = reg.Register(action.Spec{Name: "modify_cart"}, noop)
		assert.ErrorIs(t, err, action.ErrRegistryFrozen)
	})

	t.Run("error: invalid schema fragment", func(t *testing.T) {
		reg := action.NewRegistry()
		err := reg.Register(action.Spec{
			Name:   "update_crm_record",
			Params: []action.Param{{Name: "details", Type: action.TypeObject, Schema: `{"type": 12}`}},
		}, noop)
		assert.Error(t, err)
	})

	t.Run("error: schema on scalar param", func(t *testing.T) {
		reg := action.NewRegistry()
		err := reg.Register(action.Spec{
			Name:   "access_cart",
			Params: []action.Param{{Name: "customer_id", Type: action.TypeString, Schema: `{"type":"string"}`}},
		}, noop)
		assert.Error(t, err)
	})

	t.Run("success: specs keep registration order", func(t *testing.T) {
		reg := action.NewRegistry()
		for _, name := range []string{"schedule_call", "approve_discount", "access_cart"} {
			require.NoError(t, reg.Register(action.Spec{Name: name}, noop))
		}

		specs := reg.Specs()
		require.Len(t, specs, 3)
		assert.Equal(t, "schedule_call", specs[0].Name)
		assert.Equal(t, "access_cart", specs[2].Name)
	})

	t.Run("success: concurrent resolve after freeze", func(t *testing.T) {
		reg := action.NewRegistry()
		require.NoError(t, reg.Register(action.Spec{Name: "access_cart"}, noop))

		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				a, err := reg.Resolve("access_cart")
				assert.NoError(t, err)
				assert.Equal(t, "access_cart", a.Spec().Name)
			}()
		}
		wg.Wait()
	})
}
