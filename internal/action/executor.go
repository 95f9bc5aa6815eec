package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"commerce-actions/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "commerce-actions/action"

//go:generate mockgen -source=executor.go -destination=../../tests/mock/action/executor.go -package=actionmock

type Executor interface {
	Execute(ctx context.Context, req Request) Result
	Specs() []Spec
}

type executor struct {
	registry       *Registry
	logger         *slog.Logger
	tracer         trace.Tracer
	defaultTimeout time.Duration
}

func NewExecutor(registry *Registry, logger *slog.Logger, defaultTimeout time.Duration) Executor {
	return &executor{
		registry:       registry,
		logger:         logger,
		tracer:         otel.Tracer(tracerName),
		defaultTimeout: defaultTimeout,
	}
}

func (e *executor) Specs() []Spec {
	return e.registry.Specs()
}

func (e *executor) Execute(ctx context.Context, req Request) Result {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "action.execute",
		trace.WithAttributes(attribute.String("action.name", req.Name)))
	defer span.End()

	res := e.execute(ctx, req)

	span.SetAttributes(
		attribute.String("action.status", string(res.Status)),
		attribute.Bool("action.partial", res.Partial),
	)
	if res.IsFailure() {
		span.SetAttributes(attribute.String("action.kind", string(res.Kind)))
		span.SetStatus(codes.Error, res.Message)
	}

	attrs := []slog.Attr{
		slog.String("action", req.Name),
		slog.String("status", string(res.Status)),
		slog.Bool("partial", res.Partial),
		slog.Duration("duration", time.Since(start)),
	}
	level := slog.LevelInfo
	if res.IsFailure() {
		attrs = append(attrs, slog.String("kind", string(res.Kind)))
		level = slog.LevelWarn
		if res.Kind == KindInternal {
			level = slog.LevelError
		}
	}
	e.logger.LogAttrs(ctx, level, "Action executed", attrs...)

	return res
}

type outcome struct {
	data any
	err  error
}

type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string {
	return fmt.Sprintf("handler panic: %v", p.value)
}

func (e *executor) execute(ctx context.Context, req Request) Result {
	act, err := e.registry.Resolve(req.Name)
	if err != nil {
		return Failed(KindUnknownAction, fmt.Sprintf("unknown action: %s", req.Name), false)
	}

	if err := act.validate(req.Args); err != nil {
		return Failed(KindInvalidArgument, publicMessage(KindInvalidArgument, err), false)
	}

	run, err := act.bind(req.Args.clone())
	if err != nil {
		return Failed(KindInvalidArgument, publicMessage(KindInvalidArgument, err), false)
	}

	timeout := act.spec.Timeout
	if timeout <= 0 {
		timeout = e.defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so a handler finishing after the deadline never blocks.
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: &panicError{value: r, stack: debug.Stack()}}
			}
		}()
		data, err := run(ctx)
		done <- outcome{data: data, err: err}
	}()

	out, finished := await(ctx, done)
	if !finished {
		return Failed(KindTimeout, fmt.Sprintf("%s did not complete within %s", req.Name, timeout), false)
	}
	return e.toResult(ctx, req.Name, out)
}

// await returns the handler outcome, or false once ctx is done. An outcome
// that is ready when the deadline fires still wins.
func await(ctx context.Context, done <-chan outcome) (outcome, bool) {
	select {
	case out := <-done:
		return out, true
	case <-ctx.Done():
		select {
		case out := <-done:
			return out, true
		default:
			return outcome{}, false
		}
	}
}

func (e *executor) toResult(ctx context.Context, name string, out outcome) Result {
	if out.err == nil {
		partial := false
		if p, ok := out.data.(Partialer); ok {
			partial = p.Partial()
		}
		return Succeeded(out.data, partial)
	}

	var conflict *ConflictError
	if errors.As(out.err, &conflict) {
		return Conflicted(conflict.Reason)
	}

	var pe *panicError
	if errors.As(out.err, &pe) {
		e.logger.ErrorContext(ctx, "Action handler panicked",
			slog.String("action", name),
			slog.Any("panic", pe.value),
			slog.String("stack", string(pe.stack)),
		)
		return Failed(KindInternal, publicMessage(KindInternal, out.err), false)
	}

	kind := KindOf(out.err)
	if kind == KindInternal {
		e.logger.ErrorContext(ctx, "Action handler failed",
			slog.String("action", name),
			slog.String("error", out.err.Error()),
			slog.Any("stack", errs.ExtractStackLines(out.err, 12)),
		)
	}
	return Failed(kind, publicMessage(kind, out.err), false)
}
