package coerce

import (
	"encoding/json"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/rsqlwhere/internal/ir"
	"github.com/roach88/rsqlwhere/internal/schema"
)

// Value coerces raw for field, guessing when field is nil.
func Value(field *schema.Field, raw string) (any, error) {
	if field == nil {
		return Guess(raw), nil
	}
	return Field(field, raw)
}

// Field coerces raw to field's declared type.
//
// List fields split raw on commas and coerce every element as the element
// type, returning []any. Relation fields cannot hold a literal and fail with
// INVALID_FIELD_KIND.
func Field(field *schema.Field, raw string) (any, error) {
	if field.Kind == schema.KindObject {
		return nil, ir.NewInvalidFieldKindError("", field.Name, string(field.Kind))
	}
	if !field.IsList {
		return element(field, raw)
	}

	parts := strings.Split(raw, ",")
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		v, err := element(field, part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// List coerces the members of an =in=/=out= argument.
// With a field each member is coerced as the field's element type;
// without one each member goes through Scalar.
func List(field *schema.Field, items []string) ([]any, error) {
	if field != nil && field.Kind == schema.KindObject {
		return nil, ir.NewInvalidFieldKindError("", field.Name, string(field.Kind))
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		if field == nil {
			out = append(out, Scalar(item))
			continue
		}
		v, err := element(field, item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// element coerces a single, non-list value of field's type.
func element(field *schema.Field, raw string) (any, error) {
	if field.Kind == schema.KindEnum {
		if !slices.Contains(field.EnumValues, raw) {
			return nil, ir.NewInvalidEnumValueError(field.Name, raw, field.EnumValues)
		}
		return raw, nil
	}

	invalid := func() error {
		return ir.NewInvalidValueError(field.Name, field.Type, raw)
	}
	trimmed := strings.TrimSpace(raw)

	switch field.Type {
	case schema.TypeInt:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, invalid()
		}
		return n, nil

	case schema.TypeBigInt:
		n, ok := new(big.Int).SetString(trimmed, 10)
		if !ok {
			return nil, invalid()
		}
		return n, nil

	case schema.TypeFloat:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, invalid()
		}
		return f, nil

	case schema.TypeDecimal:
		d, _, err := apd.NewFromString(trimmed)
		if err != nil || d.Form != apd.Finite {
			return nil, invalid()
		}
		return d, nil

	case schema.TypeBoolean:
		switch trimmed {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		default:
			return nil, invalid()
		}

	case schema.TypeDateTime:
		t, ok := parseDate(trimmed)
		if !ok {
			return nil, invalid()
		}
		return t, nil

	case schema.TypeJSON:
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
			return nil, invalid()
		}
		return v, nil

	default:
		// String and types without a literal form (Bytes, Unsupported)
		return raw, nil
	}
}
