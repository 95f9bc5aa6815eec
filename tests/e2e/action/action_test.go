//go:build e2e

package action_test

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"commerce-actions/internal/infra/lock"
	"commerce-actions/tests/common/authtest"
	"commerce-actions/tests/common/builder"
	"commerce-actions/tests/common/dbtest"
	"commerce-actions/tests/common/httptest"
	"commerce-actions/tests/common/testutil"
	"commerce-actions/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const actionsURL = "/api/actions"

type envelope struct {
	Status  string         `json:"status"`
	Data    map[string]any `json:"data"`
	Reason  string         `json:"reason"`
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Partial bool           `json:"partial"`
}

type actionSuite struct {
	e2e.SharedSuite
	token string
}

func TestActionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(actionSuite))
}

func (s *actionSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), "assistant")
}

func (s *actionSuite) invoke(name string, args map[string]any) (int, envelope) {
	var out envelope
	w := httptest.InvokeAction(s.T(), s.Router, name, args, s.token, &out)
	return w.Code, out
}

func (s *actionSuite) TestAuthentication() {
	s.Run("error: missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, actionsURL, nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: expired token", func() {
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), "assistant")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, actionsURL, nil, expired)
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("success: request id is echoed", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, actionsURL, nil, s.token)
		assert.Equal(s.T(), http.StatusOK, w.Code)
		httptest.AssertHeaderPresent(s.T(), w, "X-Request-ID")
	})
}

func (s *actionSuite) TestCartActions() {
	s.Run("success: access_cart reads seeded lines with prices", func() {
		dbtest.AddCartItem(s.T(), s.DB, "123", "soil-123", 2)

		code, res := s.invoke("access_cart", map[string]any{"customer_id": "123"})

		require.Equal(s.T(), http.StatusOK, code)
		require.Equal(s.T(), "success", res.Status)
		items := res.Data["items"].([]any)
		require.Len(s.T(), items, 1)
		assert.Equal(s.T(), "soil-123", items[0].(map[string]any)["product_id"])
		assert.InDelta(s.T(), 25.98, res.Data["subtotal"], 0.001)
	})

	s.Run("success: modify_cart adds and removes in one call", func() {
		dbtest.AddCartItem(s.T(), s.DB, "123", "soil-123", 1)
		args := builder.NewActionArgsBuilder().ModifyCart(
			[]map[string]any{{"product_id": "soil-456", "quantity": 1}},
			[]map[string]any{{"product_id": "soil-123", "quantity": 1}},
		)

		code, res := s.invoke("modify_cart", args)

		require.Equal(s.T(), http.StatusOK, code)
		require.Equal(s.T(), "success", res.Status, res.Message)
		assert.Equal(s.T(), true, res.Data["items_added"])
		assert.Equal(s.T(), true, res.Data["items_removed"])
		assert.Equal(s.T(), 0, dbtest.CountRows(s.T(), s.DB, "cart_items", "customer_id = $1 AND product_id = $2", "123", "soil-123"))
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "cart_items", "customer_id = $1 AND product_id = $2", "123", "soil-456"))
	})

	s.Run("error: unknown product is rejected", func() {
		args := builder.NewActionArgsBuilder().ModifyCart(
			[]map[string]any{{"product_id": "nope-1", "quantity": 1}}, nil,
		)

		code, res := s.invoke("modify_cart", args)

		assert.Equal(s.T(), http.StatusBadRequest, code)
		assert.Equal(s.T(), "InvalidArgument", res.Kind)
		assert.Equal(s.T(), 0, dbtest.CountRows(s.T(), s.DB, "cart_items", ""))
	})
}

func (s *actionSuite) TestCheckAvailability() {
	s.Run("success: stocked product", func() {
		dbtest.SetStock(s.T(), s.DB, "soil-123", "Main Store", 10)

		code, res := s.invoke("check_availability", map[string]any{"product_id": "soil-123", "store_id": "Main Store"})

		require.Equal(s.T(), http.StatusOK, code)
		want := map[string]any{"available": true, "quantity": float64(10), "store": "Main Store"}
		if diff := cmp.Diff(want, res.Data); diff != "" {
			s.T().Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: no stock record means unavailable", func() {
		code, res := s.invoke("check_availability", map[string]any{"product_id": "fert-789", "store_id": "Main Store"})

		require.Equal(s.T(), http.StatusOK, code)
		assert.Equal(s.T(), false, res.Data["available"])
		assert.Equal(s.T(), float64(0), res.Data["quantity"])
	})
}

func (s *actionSuite) TestAppointments() {
	s.Run("success: booked range disappears from available times", func() {
		b := builder.NewActionArgsBuilder().WithDate("2024-08-01")

		code, res := s.invoke("schedule_appointment", b.ScheduleAppointment("9-12"))
		require.Equal(s.T(), http.StatusOK, code)
		require.Equal(s.T(), "success", res.Status, res.Message)
		assert.Equal(s.T(), "2024-08-01 9:00", res.Data["confirmation_time"])

		code, res = s.invoke("list_available_times", map[string]any{"date": "2024-08-01"})
		require.Equal(s.T(), http.StatusOK, code)
		assert.Equal(s.T(), []any{"13-16"}, res.Data["available_times"])
	})

	s.Run("conflict: range already booked", func() {
		b := builder.NewActionArgsBuilder().WithDate("2024-08-02")
		_, first := s.invoke("schedule_appointment", b.ScheduleAppointment("13-16"))
		require.Equal(s.T(), "success", first.Status)

		code, res := s.invoke("schedule_appointment", b.WithCustomer("456").ScheduleAppointment("13-16"))

		assert.Equal(s.T(), http.StatusOK, code)
		assert.Equal(s.T(), "conflict", res.Status)
		assert.NotEmpty(s.T(), res.Reason)
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "appointments", "service_date = $1", "2024-08-02"))
	})

	s.Run("error: malformed time range", func() {
		args := builder.NewActionArgsBuilder().ScheduleAppointment("9-12")
		testutil.Field("time_range", "noon")(args)

		code, res := s.invoke("schedule_appointment", args)

		assert.Equal(s.T(), http.StatusBadRequest, code)
		assert.Contains(s.T(), res.Message, "time_range")
	})
}

func (s *actionSuite) TestCustomerSideEffects() {
	s.Run("success: promotion code is persisted", func() {
		args := builder.NewActionArgsBuilder().GeneratePromotionCode(15, "percentage", 30)

		code, res := s.invoke("generate_promotion_code", args)

		require.Equal(s.T(), http.StatusOK, code)
		require.Equal(s.T(), "success", res.Status, res.Message)
		assert.Regexp(s.T(), `^PROMO-[0-9A-F]{10}$`, res.Data["code"])
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "promotion_codes", "code = $1 AND customer_id = $2", res.Data["code"], "123"))
	})

	s.Run("success: fixed promotion is stored as flat", func() {
		args := builder.NewActionArgsBuilder().GeneratePromotionCode(5, "fixed", 7)

		code, res := s.invoke("generate_promotion_code", args)

		require.Equal(s.T(), http.StatusOK, code)
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "promotion_codes", "code = $1 AND discount_type = 'flat'", res.Data["code"]))
	})

	s.Run("success: CRM details are merged", func() {
		b := builder.NewActionArgsBuilder()
		_, first := s.invoke("update_crm_record", b.UpdateCRMRecord(map[string]any{"tier": "gold"}))
		require.Equal(s.T(), "success", first.Status, first.Message)

		_, second := s.invoke("update_crm_record", b.UpdateCRMRecord(map[string]any{"preferred_store": "Main Store"}))
		require.Equal(s.T(), "success", second.Status, second.Message)

		want := map[string]any{"tier": "gold", "preferred_store": "Main Store"}
		if diff := cmp.Diff(want, dbtest.CRMDetails(s.T(), s.DB, "123")); diff != "" {
			s.T().Errorf("crm details mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: instructions land in the outbox", func() {
		args := builder.NewActionArgsBuilder().SendInstructions("petunias", "sms")

		code, res := s.invoke("send_instructions", args)

		require.Equal(s.T(), http.StatusOK, code)
		require.Equal(s.T(), "success", res.Status, res.Message)
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "outbound_messages", "customer_id = $1 AND channel = 'sms'", "123"))
	})

	s.Run("error: unsupported delivery method sends nothing", func() {
		args := builder.NewActionArgsBuilder().SendInstructions("petunias", "pigeon")

		code, _ := s.invoke("send_instructions", args)

		assert.Equal(s.T(), http.StatusBadRequest, code)
		assert.Equal(s.T(), 0, dbtest.CountRows(s.T(), s.DB, "outbound_messages", ""))
	})
}

func (s *actionSuite) TestScheduleCall() {
	s.Run("success: overlapping concurrent calls book one event", func() {
		b := builder.NewActionArgsBuilder().WithDate("2024-09-02")
		windows := [][2]string{{"10:00", "10:30"}, {"10:15", "10:45"}}

		results := make([]envelope, len(windows))
		var wg sync.WaitGroup
		for i, w := range windows {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var out envelope
				httptest.InvokeAction(s.T(), s.Router, "schedule_call", b.ScheduleCall(w[0], w[1]), s.token, &out)
				results[i] = out
			}()
		}
		wg.Wait()

		statuses := map[string]int{}
		for _, r := range results {
			statuses[r.Status]++
		}
		assert.Equal(s.T(), map[string]int{"success": 1, "conflict": 1}, statuses)
	})

	s.Run("success: same arguments replay the booked call", func() {
		args := builder.NewActionArgsBuilder().WithDate("2024-09-03").ScheduleCall("09:00", "09:30")

		_, first := s.invoke("schedule_call", args)
		require.Equal(s.T(), "success", first.Status, first.Message)

		_, second := s.invoke("schedule_call", args)
		require.Equal(s.T(), "success", second.Status, second.Message)
		assert.Equal(s.T(), "already_scheduled", second.Data["status"])
		assert.Equal(s.T(), first.Data["event_id"], second.Data["event_id"])
	})

	s.Run("error: end before start", func() {
		args := builder.NewActionArgsBuilder().ScheduleCall("11:00", "10:00")

		code, res := s.invoke("schedule_call", args)

		assert.Equal(s.T(), http.StatusBadRequest, code)
		assert.Equal(s.T(), "InvalidArgument", res.Kind)
	})
}

func (s *actionSuite) TestUnknownAction() {
	code, res := s.invoke("launch_rocket", map[string]any{})

	assert.Equal(s.T(), http.StatusNotFound, code)
	assert.Equal(s.T(), "UnknownAction", res.Kind)
}

func (s *actionSuite) TestRedisLock() {
	s.Run("success: second holder waits for release", func() {
		locker := lock.NewRedis(s.Redis, 5*time.Second, slog.Default())
		ctx := context.Background()

		release, err := locker.Lock(ctx, "e2e-lock")
		require.NoError(s.T(), err)

		short, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(short, "e2e-lock")
		require.Error(s.T(), err)

		release()
		again, err := locker.Lock(ctx, "e2e-lock")
		require.NoError(s.T(), err)
		again()
	})
}
