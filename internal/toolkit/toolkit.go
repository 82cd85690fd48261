// Package toolkit defines the capability ("tool") contract shared by the
// agent services: a named operation invoked with a JSON body and answered
// with a JSON payload.
package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Handler is the JSON-level entry point of a tool. Domain-level failures are
// carried inside the returned payload; an error return is reserved for
// protocol-level faults (undecodable input, handler panics converted by the
// HTTP layer, and the like).
type Handler func(ctx context.Context, input json.RawMessage) (any, error)

// Field describes one declared input field of a tool, derived from the json
// tags of the tool's input struct.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Tool couples a capability name with its handler and declared input fields.
type Tool struct {
	Name        string
	Description string
	Input       []Field
	Handler     Handler
}

// Definition is the discovery shape served for one tool.
type Definition struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Input       []Field `json:"input"`
}

// Definition returns the discovery shape of the tool.
func (t Tool) Definition() Definition {
	return Definition{
		Name:        t.Name,
		Description: t.Description,
		Input:       t.Input,
	}
}

// NewTool wraps a typed handler with JSON decoding of the input and derives
// the declared input fields from I's json tags. Decode failures are tagged
// ErrInvalidInput so the HTTP layer can answer them as client errors.
func NewTool[I, O any](name, description string, fn func(context.Context, I) (O, error)) Tool {
	var empty I
	return Tool{
		Name:        name,
		Description: description,
		Input:       fieldsOf(reflect.TypeOf(empty)),
		Handler: func(ctx context.Context, input json.RawMessage) (any, error) {
			var in I
			if len(input) > 0 {
				if err := json.Unmarshal(input, &in); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
				}
			}
			return fn(ctx, in)
		},
	}
}

// fieldsOf derives declared input fields from a struct type. Non-struct
// inputs declare no fields.
func fieldsOf(t reflect.Type) []Field {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}

		fields = append(fields, Field{
			Name:     name,
			Type:     jsonTypeName(sf.Type),
			Required: !strings.Contains(opts, "omitempty"),
		})
	}
	return fields
}

// jsonTypeName maps a Go type onto the JSON type vocabulary used in tool
// definitions.
func jsonTypeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "object"
	}
}
