package discount

import (
	"errors"
	"strings"
)

var (
	ErrInvalidType           = errors.New("discount type must be percentage or flat")
	ErrNonPositiveValue      = errors.New("discount value must be greater than 0")
	ErrPercentageOutOfBounds = errors.New("percentage discount must not exceed 100")
	ErrMissingReason         = errors.New("discount reason is required")
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFlat       Type = "flat"
)

// ParseType accepts "fixed" as a synonym for flat; promotion codes use
// that wording.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TypePercentage):
		return TypePercentage, nil
	case string(TypeFlat), "fixed":
		return TypeFlat, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

// Amount is a validated discount value. It is never persisted.
type Amount struct {
	kind  Type
	value float64
}

func NewAmount(kind Type, value float64) (Amount, error) {
	if kind != TypePercentage && kind != TypeFlat {
		return Amount{}, ErrInvalidType
	}
	if value <= 0 {
		return Amount{}, ErrNonPositiveValue
	}
	if kind == TypePercentage && value > 100 {
		return Amount{}, ErrPercentageOutOfBounds
	}
	return Amount{kind: kind, value: value}, nil
}

func (a Amount) Type() Type     { return a.kind }
func (a Amount) Value() float64 { return a.value }

// Request is a discount someone asked for, together with the reason the
// assistant gave for it.
type Request struct {
	amount Amount
	reason string
}

func NewRequest(kind string, value float64, reason string) (Request, error) {
	t, err := ParseType(kind)
	if err != nil {
		return Request{}, err
	}
	amount, err := NewAmount(t, value)
	if err != nil {
		return Request{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Request{}, ErrMissingReason
	}
	return Request{amount: amount, reason: reason}, nil
}

func (r Request) Amount() Amount { return r.amount }
func (r Request) Reason() string { return r.reason }
