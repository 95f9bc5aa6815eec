package action

import (
	"context"
	"errors"
	"fmt"

	"commerce-actions/internal/pkg/errs"
)

// Kind classifies a failed invocation for the caller.
type Kind string

const (
	KindInvalidArgument     Kind = "InvalidArgument"
	KindUnknownAction       Kind = "UnknownAction"
	KindAuthError           Kind = "AuthError"
	KindCalendarUnavailable Kind = "CalendarUnavailable"
	KindCalendarWriteError  Kind = "CalendarWriteError"
	KindCrmWriteError       Kind = "CrmWriteError"
	KindBackendUnavailable  Kind = "BackendUnavailable"
	KindTimeout             Kind = "Timeout"
	KindInternal            Kind = "Internal"
)

// Sentinels that handlers attach with errs.Mark so the executor can
// classify an error chain without knowing the adapter behind it.
var (
	ErrInvalidArgument     = errs.New("invalid argument")
	ErrUnknownAction       = errs.New("unknown action")
	ErrAuth                = errs.New("authentication failed")
	ErrCalendarUnavailable = errs.New("calendar unavailable")
	ErrCalendarWrite       = errs.New("calendar write failed")
	ErrCrmWrite            = errs.New("crm write failed")
	ErrBackendUnavailable  = errs.New("backend unavailable")
	ErrTimeout             = errs.New("timed out")

	ErrDuplicateAction = errs.New("action already registered")
	ErrRegistryFrozen  = errs.New("registry is frozen")
)

// ArgumentError names the offending field and why it was rejected.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Field + ": " + e.Reason
}

func InvalidArgument(field, reason string) error {
	return errs.Mark(&ArgumentError{Field: field, Reason: reason}, ErrInvalidArgument)
}

func InvalidArgumentf(field, format string, args ...any) error {
	return InvalidArgument(field, fmt.Sprintf(format, args...))
}

// ConflictError is returned by handlers when the request is valid but the
// requested state cannot be reached; it is an outcome, not a failure.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

var kindOrder = []struct {
	sentinel error
	kind     Kind
}{
	{ErrInvalidArgument, KindInvalidArgument},
	{ErrUnknownAction, KindUnknownAction},
	{ErrAuth, KindAuthError},
	{ErrCalendarUnavailable, KindCalendarUnavailable},
	{ErrCalendarWrite, KindCalendarWriteError},
	{ErrCrmWrite, KindCrmWriteError},
	{ErrBackendUnavailable, KindBackendUnavailable},
	{ErrTimeout, KindTimeout},
	{context.DeadlineExceeded, KindTimeout},
}

// KindOf maps an error chain to its failure kind; unrecognized errors are
// Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindOrder {
		if errs.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}

func publicMessage(kind Kind, err error) string {
	if kind == KindInternal {
		return "internal error"
	}
	var ae *ArgumentError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	return err.Error()
}
