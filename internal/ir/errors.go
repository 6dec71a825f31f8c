package ir

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a translation failure.
//
// Translation errors include:
//   - Unknown node type: the expression tree holds something other than
//     a Comparison or Logic node
//   - Unknown operator: no registry entry for a comparison token
//   - Schema failures: missing models, relation fields used as scalars,
//     enum or scalar values that do not parse
//
// Every failure aborts the whole translation; there is no partial output.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Selector is the comparison selector being translated, if any.
	Selector string

	// Details contains additional context.
	Details map[string]string
}

// ErrorCode categorizes translation errors.
type ErrorCode string

const (
	// ErrCodeUnknownNodeType indicates a node that is neither Comparison nor Logic.
	ErrCodeUnknownNodeType ErrorCode = "UNKNOWN_NODE_TYPE"

	// ErrCodeUnknownOperator indicates a comparison token missing from the registry.
	ErrCodeUnknownOperator ErrorCode = "UNKNOWN_OPERATOR"

	// ErrCodeModelNotFound indicates a schema model name that does not exist.
	ErrCodeModelNotFound ErrorCode = "MODEL_NOT_FOUND"

	// ErrCodeInvalidFieldKind indicates a relation field used where a scalar is required.
	ErrCodeInvalidFieldKind ErrorCode = "INVALID_FIELD_KIND"

	// ErrCodeInvalidEnumValue indicates a value outside a field's enum members.
	ErrCodeInvalidEnumValue ErrorCode = "INVALID_ENUM_VALUE"

	// ErrCodeInvalidValue indicates a value that does not parse as the field's type.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("%s: %s (selector=%s)", e.Code, e.Message, e.Selector)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the code of the first *Error in err's chain.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// IsCode returns true if err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// NewUnknownNodeTypeError creates an Error for an unsupported node.
func NewUnknownNodeTypeError(node Node) *Error {
	return &Error{
		Code:    ErrCodeUnknownNodeType,
		Message: fmt.Sprintf("unknown node type: %T", node),
	}
}

// NewUnknownOperatorError creates an Error for an unregistered operator.
func NewUnknownOperatorError(selector, operator string) *Error {
	return &Error{
		Code:     ErrCodeUnknownOperator,
		Message:  fmt.Sprintf("unknown comparison operator: %s", operator),
		Selector: selector,
		Details:  map[string]string{"operator": operator},
	}
}

// NewModelNotFoundError creates an Error for a missing schema model.
func NewModelNotFoundError(model string) *Error {
	return &Error{
		Code:    ErrCodeModelNotFound,
		Message: fmt.Sprintf("model %q not found in schema", model),
		Details: map[string]string{"model": model},
	}
}

// NewInvalidFieldKindError creates an Error for a field of the wrong kind.
func NewInvalidFieldKindError(selector, field, kind string) *Error {
	return &Error{
		Code:     ErrCodeInvalidFieldKind,
		Message:  fmt.Sprintf("field %q of kind %s cannot be used here", field, kind),
		Selector: selector,
		Details:  map[string]string{"field": field, "kind": kind},
	}
}

// NewInvalidEnumValueError creates an Error listing the allowed enum members.
func NewInvalidEnumValueError(field, value string, allowed []string) *Error {
	return &Error{
		Code: ErrCodeInvalidEnumValue,
		Message: fmt.Sprintf("invalid value %q for enum field %q, allowed: %s",
			value, field, strings.Join(allowed, ", ")),
		Details: map[string]string{
			"field":   field,
			"value":   value,
			"allowed": strings.Join(allowed, ","),
		},
	}
}

// NewInvalidValueError creates an Error for a value that does not parse as typ.
func NewInvalidValueError(field, typ, value string) *Error {
	return &Error{
		Code:    ErrCodeInvalidValue,
		Message: fmt.Sprintf("invalid %s value %q for field %q", typ, value, field),
		Details: map[string]string{"field": field, "type": typ, "value": value},
	}
}
