package request

import "commerce-actions/internal/action"

// ActionArgs is the JSON object body of an invocation.
type ActionArgs map[string]any

func (a ActionArgs) ToRequest(name string) action.Request {
	args := make(action.Args, len(a))
	for k, v := range a {
		args[k] = v
	}
	return action.Request{Name: name, Args: args}
}
