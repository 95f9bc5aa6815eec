//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderPresent checks a header the server generates, such as a
// request id, without pinning its value.
func AssertHeaderPresent(t *testing.T, w *httptest.ResponseRecorder, name string) {
	t.Helper()
	assert.NotEmpty(t, w.Header().Get(name), "header %s missing", name)
}
