package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInstanceName = errors.New("invalid instance name")
	ErrUnknownSettingKey   = errors.New("unknown setting key")
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrValueNotFound       = errors.New("setting value not found")
)

// ShapeMismatchError reports a value that failed a setting's validation
// predicate. Value carries the offending value's diagnostic representation
// and Shape the setting's expected shape description.
type ShapeMismatchError struct {
	Value string
	Shape string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("value %s does not match expected shape %s", e.Value, e.Shape)
}

// Is makes errors.Is(err, ErrShapeMismatch) match any shape mismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
