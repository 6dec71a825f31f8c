package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/rsqlwhere/internal/ir"
	"github.com/roach88/rsqlwhere/internal/rsql"
	"github.com/roach88/rsqlwhere/internal/schema"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No scenario files found
	ErrCodeLoadFailed  = "E004" // Schema load or parse failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error

	// Translation errors
	ErrCodeSyntax           = "E100" // RSQL syntax error
	ErrCodeUnknownNodeType  = "E101" // Unsupported expression node
	ErrCodeUnknownOperator  = "E102" // Operator not in registry
	ErrCodeModelNotFound    = "E103" // Schema model missing
	ErrCodeInvalidFieldKind = "E104" // Relation used as a value, or scalar used as a relation
	ErrCodeInvalidEnumValue = "E105" // Value outside the enum
	ErrCodeInvalidValue     = "E106" // Value does not parse as the field type

	// History errors
	ErrCodeHistory = "E201" // History store failure
)

// LoadError represents an error that occurred while loading an input file.
type LoadError struct {
	Code    string
	Message string
	Path    string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadSchema loads a schema file and optionally re-roots it at model.
// The resulting root model must exist.
func LoadSchema(path, model string) (*schema.Context, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "schema file not found", Path: path}
	}

	sc, err := schema.Load(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: err.Error(), Path: path}
	}

	if model != "" {
		sc = sc.WithModel(model)
	}
	if sc.Model == "" {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "schema has no root model; pass --model", Path: path}
	}
	if _, ok := sc.FindModel(sc.Model); !ok {
		return nil, &LoadError{Code: ErrCodeModelNotFound, Message: fmt.Sprintf("model %q not found in schema", sc.Model), Path: path}
	}
	return sc, nil
}

// MapTranslationError maps a translation or parse error to a CLI error code.
func MapTranslationError(err error) string {
	var syntaxErr *rsql.SyntaxError
	if errors.As(err, &syntaxErr) {
		return ErrCodeSyntax
	}

	code, ok := ir.CodeOf(err)
	if !ok {
		return ErrCodeGeneric
	}
	switch code {
	case ir.ErrCodeUnknownNodeType:
		return ErrCodeUnknownNodeType
	case ir.ErrCodeUnknownOperator:
		return ErrCodeUnknownOperator
	case ir.ErrCodeModelNotFound:
		return ErrCodeModelNotFound
	case ir.ErrCodeInvalidFieldKind:
		return ErrCodeInvalidFieldKind
	case ir.ErrCodeInvalidEnumValue:
		return ErrCodeInvalidEnumValue
	case ir.ErrCodeInvalidValue:
		return ErrCodeInvalidValue
	default:
		return ErrCodeGeneric
	}
}

// errorDetails returns structured details for err, if it carries any.
func errorDetails(err error) any {
	var irErr *ir.Error
	if errors.As(err, &irErr) {
		details := map[string]string{"code": string(irErr.Code)}
		if irErr.Selector != "" {
			details["selector"] = irErr.Selector
		}
		for k, v := range irErr.Details {
			details[k] = v
		}
		return details
	}

	var syntaxErr *rsql.SyntaxError
	if errors.As(err, &syntaxErr) {
		return map[string]any{"position": syntaxErr.Pos}
	}
	return nil
}
