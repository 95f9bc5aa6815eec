package action

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind decodes args into P and checks its validate tags, then P's own
// Validate method when it has one. Every failure is an InvalidArgument.
func Bind[P any](args Args) (P, error) {
	var p P

	raw, err := json.Marshal(args)
	if err != nil {
		return p, InvalidArgument("arguments", "not representable as JSON")
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return p, InvalidArgumentf(te.Field, "must be of type %s", te.Type.Kind())
		}
		return p, InvalidArgument("arguments", err.Error())
	}

	if err := validate.Struct(p); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			return p, fieldError(ves[0])
		}
		return p, InvalidArgument("arguments", err.Error())
	}

	if v, ok := any(&p).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			if KindOf(err) == KindInvalidArgument {
				return p, err
			}
			return p, InvalidArgument("arguments", err.Error())
		}
	}
	return p, nil
}

func fieldError(fe validator.FieldError) error {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return InvalidArgument(field, "is required")
	case "oneof":
		return InvalidArgumentf(field, "must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return InvalidArgumentf(field, "must be greater than %s", fe.Param())
	case "gte", "min":
		return InvalidArgumentf(field, "must be at least %s", fe.Param())
	case "lte", "max":
		return InvalidArgumentf(field, "must be at most %s", fe.Param())
	case "email":
		return InvalidArgument(field, "must be a valid email address")
	case "datetime":
		return InvalidArgumentf(field, "must match layout %s", fe.Param())
	default:
		return InvalidArgumentf(field, "failed %s check", fe.Tag())
	}
}
