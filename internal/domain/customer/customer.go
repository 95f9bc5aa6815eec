package customer

import (
	"errors"
	"strings"
)

var ErrMissingID = errors.New("customer id is required")

// ID is the opaque customer identifier handed over by the conversational
// layer. Only emptiness is checked; the backends own its format.
type ID string

func NewID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingID
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}
