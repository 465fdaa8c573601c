package settings

import (
	"encoding/json"
	"fmt"

	"github.com/amaumene/trackarr/internal/domain"
)

// Setting is one immutable registry entry: a validation predicate over a
// specific value shape, the environment variable consulted when no
// persisted value exists, and a human-readable shape description used only
// in diagnostics.
type Setting struct {
	EnvVar   string
	Shape    string
	validate func(value any) bool
}

// New builds a Setting from a validation predicate, an environment variable
// name and a shape description.
func New(validate func(value any) bool, envVar, shape string) Setting {
	return Setting{EnvVar: envVar, Shape: shape, validate: validate}
}

// Validate reports whether value matches the setting's shape.
func (s Setting) Validate(value any) bool {
	return s.validate(value)
}

// Cast returns value unchanged when it validates and a
// *domain.ShapeMismatchError otherwise. It never coerces and never
// partially accepts.
func (s Setting) Cast(value any) (any, error) {
	if !s.validate(value) {
		return nil, &domain.ShapeMismatchError{Value: diagnostic(value), Shape: s.Shape}
	}
	return value, nil
}

// diagnostic renders a value for error messages, preferring the JSON form
// the store and environment hold.
func diagnostic(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%#v", value)
	}
	return string(raw)
}

func isBool(value any) bool {
	_, ok := value.(bool)
	return ok
}

// NewBool builds a plain boolean flag setting.
func NewBool(envVar string) Setting {
	return New(isBool, envVar, "boolean")
}
