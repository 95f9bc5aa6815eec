//go:build unit

package discount_test

import (
	"testing"

	"commerce-actions/internal/domain/discount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	testCases := []struct {
		name   string
		kind   string
		value  float64
		reason string
		errIs  error
	}{
		{name: "percentage OK", kind: "percentage", value: 10, reason: "Customer loyalty"},
		{name: "percentage boundary OK (100)", kind: "percentage", value: 100, reason: "Damaged item"},
		{name: "percentage boundary NG (100.5)", kind: "percentage", value: 100.5, reason: "x", errIs: discount.ErrPercentageOutOfBounds},
		{name: "flat OK above 100", kind: "flat", value: 250, reason: "Price match"},
		{name: "fixed is flat", kind: "Fixed", value: 5, reason: "Price match"},
		{name: "zero value NG", kind: "flat", value: 0, reason: "x", errIs: discount.ErrNonPositiveValue},
		{name: "negative value NG", kind: "percentage", value: -5, reason: "x", errIs: discount.ErrNonPositiveValue},
		{name: "unknown type NG", kind: "bogo", value: 5, reason: "x", errIs: discount.ErrInvalidType},
		{name: "blank reason NG", kind: "flat", value: 5, reason: "   ", errIs: discount.ErrMissingReason},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := discount.NewRequest(tc.kind, tc.value, tc.reason)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, req.Amount().Value())
		})
	}
}
