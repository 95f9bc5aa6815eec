//go:build unit

package appointment_test

import (
	"testing"

	"commerce-actions/internal/domain/appointment"
	"commerce-actions/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "9-12", want: "9-12"},
		{in: " 13 - 16 ", want: "13-16"},
		{in: "0-24", want: "0-24"},
		{in: "12-9", wantErr: true},
		{in: "9-9", wantErr: true},
		{in: "9", wantErr: true},
		{in: "a-b", wantErr: true},
		{in: "9-25", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := appointment.ParseTimeRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, appointment.ErrInvalidTimeRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestTimeRange_EndOfDay(t *testing.T) {
	evening, err := appointment.ParseTimeRange("13-24")
	require.NoError(t, err)
	assert.Equal(t, 24, evening.EndHour())

	free := appointment.FreeSlots(appointment.DefaultSlots, []appointment.TimeRange{evening})
	require.Len(t, free, 1)
	assert.Equal(t, "9-12", free[0].String())
}

func TestFreeSlots(t *testing.T) {
	booked, err := appointment.ParseTimeRange("10-11")
	require.NoError(t, err)

	free := appointment.FreeSlots(appointment.DefaultSlots, []appointment.TimeRange{booked})
	require.Len(t, free, 1)
	assert.Equal(t, "13-16", free[0].String())

	assert.Len(t, appointment.FreeSlots(appointment.DefaultSlots, nil), 2)
}

func TestNewAppointment(t *testing.T) {
	r, err := appointment.ParseTimeRange("9-12")
	require.NoError(t, err)

	t.Run("success: confirmation time uses start hour", func(t *testing.T) {
		a, err := appointment.NewAppointment(customer.ID("c-1"), "2024-07-29", r, "planting 3 roses")
		require.NoError(t, err)
		assert.Equal(t, "2024-07-29 9:00", a.ConfirmationTime())
		assert.NotEmpty(t, a.ID().String())
	})

	t.Run("error: invalid date", func(t *testing.T) {
		_, err := appointment.NewAppointment(customer.ID("c-1"), "29/07/2024", r, "planting")
		assert.Error(t, err)
	})

	t.Run("error: blank details", func(t *testing.T) {
		_, err := appointment.NewAppointment(customer.ID("c-1"), "2024-07-29", r, " ")
		assert.ErrorIs(t, err, appointment.ErrMissingDetails)
	})
}
