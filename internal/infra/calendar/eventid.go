package calendar

import (
	"strings"

	"github.com/google/uuid"
)

var eventIDNamespace = uuid.MustParse("0b6f5d0e-8f2a-4d0c-b1a4-7e3c2f9d5a60")

// eventIDFor maps a request token to a stable event id. Hex digits are a
// subset of the base32hex alphabet hosted calendars accept for client ids.
func eventIDFor(token string) string {
	return strings.ReplaceAll(uuid.NewSHA1(eventIDNamespace, []byte(token)).String(), "-", "")
}
