package action

import (
	"sync"
	"sync/atomic"

	"commerce-actions/internal/pkg/errs"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Action is a resolved registry entry.
type Action struct {
	spec    Spec
	bind    binder
	schemas map[string]*jsonschema.Schema
}

func (a *Action) Spec() Spec {
	return a.spec
}

// Registry maps action names to specs and handlers. It is populated at
// startup and frozen by the first Resolve; after that the map is only read.
type Registry struct {
	mu      sync.Mutex
	frozen  atomic.Bool
	actions map[string]*Action
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]*Action)}
}

func (r *Registry) Register(spec Spec, handler Handler) error {
	if handler == nil {
		return errs.Newf("action %s: handler is required", spec.Name)
	}
	return r.register(spec, handler.binder())
}

// RegisterTyped registers a handler whose arguments the executor binds into
// P, including P's validate tags and Validate method, before dispatch.
func RegisterTyped[P any](r *Registry, spec Spec, handler TypedHandler[P]) error {
	if handler == nil {
		return errs.Newf("action %s: handler is required", spec.Name)
	}
	return r.register(spec, handler.binder())
}

func (r *Registry) register(spec Spec, bind binder) error {
	if spec.Name == "" {
		return errs.New("action name is required")
	}

	schemas := make(map[string]*jsonschema.Schema)
	seen := make(map[string]struct{}, len(spec.Params))
	for _, p := range spec.Params {
		if _, dup := seen[p.Name]; dup {
			return errs.Newf("action %s: parameter %s declared twice", spec.Name, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Schema == "" {
			continue
		}
		if p.Type != TypeObject && p.Type != TypeArray {
			return errs.Newf("action %s: schema on non-structured parameter %s", spec.Name, p.Name)
		}
		compiled, err := compileParamSchema(spec.Name, p)
		if err != nil {
			return errs.Wrapf(err, "action %s", spec.Name)
		}
		schemas[p.Name] = compiled
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return errs.Wrapf(ErrRegistryFrozen, "register %s", spec.Name)
	}
	if _, exists := r.actions[spec.Name]; exists {
		return errs.Wrapf(ErrDuplicateAction, "register %s", spec.Name)
	}

	r.actions[spec.Name] = &Action{spec: spec, bind: bind, schemas: schemas}
	r.order = append(r.order, spec.Name)
	return nil
}

// Resolve looks an action up by name and freezes the registry.
func (r *Registry) Resolve(name string) (*Action, error) {
	if !r.frozen.Load() {
		r.mu.Lock()
		r.frozen.Store(true)
		r.mu.Unlock()
	}

	a, ok := r.actions[name]
	if !ok {
		return nil, errs.Wrapf(ErrUnknownAction, "resolve %q", name)
	}
	return a, nil
}

// Specs lists every registered spec in registration order.
func (r *Registry) Specs() []Spec {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.actions[name].spec)
	}
	return out
}
