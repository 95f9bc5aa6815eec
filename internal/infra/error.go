package infra

import (
	"context"
	"errors"
	"log/slog"

	"commerce-actions/internal/pkg/errs"
)

type AdapterErrorKind string

// AdapterError is what every external-system adapter returns, so use cases
// can decide on a failure kind without knowing the transport behind it.
type AdapterError struct {
	Kind AdapterErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e AdapterError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e AdapterError) Unwrap() error {
	return e.err
}

func WrapAdapterErr(slogger *slog.Logger, kind AdapterErrorKind, msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}

	slogger.Log(context.Background(), logLevel(kind), "Adapter error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return AdapterError{Kind: kind, msg: msg, err: err}
}

// logLevel keeps expected outcomes, such as a product with no stock record
// or an already booked slot, out of the error log.
func logLevel(kind AdapterErrorKind) slog.Level {
	switch kind {
	case KindNotFound, KindDuplicateKey:
		return slog.LevelDebug
	default:
		return slog.LevelError
	}
}

func IsKind(err error, kind AdapterErrorKind) bool {
	var e AdapterError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound     AdapterErrorKind = "NOT_FOUND"
	KindUnauthorized AdapterErrorKind = "UNAUTHORIZED"
	KindUnavailable  AdapterErrorKind = "UNAVAILABLE"
	KindWriteFailed  AdapterErrorKind = "WRITE_FAILED"
	KindDuplicateKey AdapterErrorKind = "DUPLICATE_KEY"
	KindTimeout      AdapterErrorKind = "TIMEOUT"
)
