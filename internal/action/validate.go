package action

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
)

// validate checks args against the declared params in order and reports
// the first violation. Args with no matching param are rejected after all
// declared params pass.
func (a *Action) validate(args Args) error {
	for _, p := range a.spec.Params {
		v, present := args[p.Name]
		if !present || v == nil {
			if p.Required {
				return InvalidArgument(p.Name, "is required")
			}
			continue
		}

		if !matchesType(p.Type, v) {
			return InvalidArgumentf(p.Name, "must be of type %s", p.Type)
		}

		if len(p.Enum) > 0 {
			s, _ := v.(string)
			if !slices.Contains(p.Enum, s) {
				return InvalidArgumentf(p.Name, "must be one of [%s]", strings.Join(p.Enum, ", "))
			}
		}

		if schema, ok := a.schemas[p.Name]; ok {
			if err := schema.Validate(v); err != nil {
				return schemaViolation(p.Name, err)
			}
		}
	}

	for _, name := range sortedKeys(args) {
		if !declared(a.spec.Params, name) {
			return InvalidArgument(name, "unknown parameter")
		}
	}
	return nil
}

func matchesType(t ParamType, v any) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeNumber:
		_, ok := number(v)
		return ok
	case TypeInteger:
		f, ok := number(v)
		return ok && f == math.Trunc(f)
	case TypeObject:
		_, ok := v.(map[string]any)
		return ok
	case TypeArray:
		_, ok := v.([]any)
		return ok
	default:
		return false
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func declared(params []Param, name string) bool {
	return slices.ContainsFunc(params, func(p Param) bool { return p.Name == name })
}

func sortedKeys(args Args) []string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
