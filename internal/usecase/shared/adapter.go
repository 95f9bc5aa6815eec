package shared

import (
	"context"
	"errors"
	"time"

	"commerce-actions/internal/action"
	"commerce-actions/internal/infra"
	"commerce-actions/internal/pkg/errs"
)

// AdapterTimeout bounds every call into an external system.
type AdapterTimeout time.Duration

func (t AdapterTimeout) Bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if t <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(t))
}

// Classify wraps an adapter error and marks it with sentinel, or with
// action.ErrTimeout when the call ran out of time.
func Classify(err error, sentinel error, msg string) error {
	if err == nil {
		return nil
	}
	wrapped := errs.Wrap(err, msg)
	if infra.IsKind(err, infra.KindTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(wrapped, action.ErrTimeout)
	}
	if infra.IsKind(err, infra.KindUnauthorized) && sentinel == action.ErrCalendarUnavailable {
		return errs.Mark(wrapped, action.ErrAuth)
	}
	return errs.Mark(wrapped, sentinel)
}
