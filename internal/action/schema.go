package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func compileParamSchema(action string, p Param) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := fmt.Sprintf("https://commerce-actions.local/schemas/%s/%s.schema.json", action, p.Name)
	if err := c.AddResource(url, strings.NewReader(p.Schema)); err != nil {
		return nil, fmt.Errorf("param %s schema load failed: %w", p.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("param %s schema compile failed: %w", p.Name, err)
	}
	return compiled, nil
}

// schemaViolation renders the deepest cause of a validation error as
// "<field><pointer>: <message>".
func schemaViolation(field string, err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return InvalidArgument(field, err.Error())
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return InvalidArgument(field+ve.InstanceLocation, ve.Message)
}
