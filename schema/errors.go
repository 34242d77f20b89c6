package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the only error kind the calculator returns.
var ErrInvalidInput = errors.New("invalid input")

// FieldViolation describes one out-of-range or off-step input field.
type FieldViolation struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// InvalidInputError collects every violation found in a PreparationInputs record.
type InvalidInputError struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s=%s %s", v.Field, v.Value, v.Reason))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// Is lets errors.Is match against ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
