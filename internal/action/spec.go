package action

import (
	"context"
	"time"
)

type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeObject  ParamType = "object"
	TypeArray   ParamType = "array"
)

type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Required    bool      `json:"required"`
	Enum        []string  `json:"enum,omitempty"`
	Description string    `json:"description,omitempty"`
	// Schema is an optional JSON Schema document for object and array values.
	Schema string `json:"-"`
}

type ResultShape struct {
	Description string `json:"description"`
	Example     any    `json:"example,omitempty"`
}

type Spec struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Params      []Param       `json:"params"`
	Result      ResultShape   `json:"result"`
	Timeout     time.Duration `json:"-"`
}

// Args are the decoded JSON arguments of a single invocation.
type Args map[string]any

type Request struct {
	Name string
	Args Args
}

// Handler performs the action. A *ConflictError return becomes a Conflict
// result; any other error is classified with KindOf.
type Handler func(ctx context.Context, args Args) (any, error)

// TypedHandler receives arguments already bound into P by the executor.
type TypedHandler[P any] func(ctx context.Context, params P) (any, error)

// call is a handler with its arguments bound, ready to run.
type call func(ctx context.Context) (any, error)

// binder turns raw args into a call. It runs before dispatch, so a binding
// failure never reaches the handler.
type binder func(args Args) (call, error)

func (h Handler) binder() binder {
	return func(args Args) (call, error) {
		return func(ctx context.Context) (any, error) { return h(ctx, args) }, nil
	}
}

func (h TypedHandler[P]) binder() binder {
	return func(args Args) (call, error) {
		params, err := Bind[P](args)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) (any, error) { return h(ctx, params) }, nil
	}
}

func (a Args) clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
