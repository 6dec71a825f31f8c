package coerce

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rsqlwhere/internal/ir"
	"github.com/roach88/rsqlwhere/internal/schema"
)

func scalarField(typ string) *schema.Field {
	return &schema.Field{Name: "f", Type: typ, Kind: schema.KindScalar}
}

func TestField_Scalars(t *testing.T) {
	testCases := []struct {
		name string
		typ  string
		raw  string
		want any
	}{
		{name: "int", typ: schema.TypeInt, raw: "42", want: int64(42)},
		{name: "float", typ: schema.TypeFloat, raw: "1.5", want: 1.5},
		{name: "float from int literal", typ: schema.TypeFloat, raw: "2", want: float64(2)},
		{name: "boolean true", typ: schema.TypeBoolean, raw: "true", want: true},
		{name: "boolean one", typ: schema.TypeBoolean, raw: "1", want: true},
		{name: "boolean zero", typ: schema.TypeBoolean, raw: "0", want: false},
		{name: "datetime", typ: schema.TypeDateTime, raw: "2024-03-01T10:00:00Z", want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{name: "json", typ: schema.TypeJSON, raw: `{"k":[1,2]}`, want: map[string]any{"k": []any{float64(1), float64(2)}}},
		{name: "string keeps digits", typ: schema.TypeString, raw: "007", want: "007"},
		{name: "string keeps booleans", typ: schema.TypeString, raw: "true", want: "true"},
		{name: "bytes passthrough", typ: "Bytes", raw: "AQID", want: "AQID"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Field(scalarField(tc.typ), tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestField_BigInt(t *testing.T) {
	got, err := Field(scalarField(schema.TypeBigInt), "123456789012345678901234567890")
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	n, ok := got.(*big.Int)
	require.True(t, ok)
	assert.Zero(t, want.Cmp(n))
}

func TestField_Decimal(t *testing.T) {
	got, err := Field(scalarField(schema.TypeDecimal), "19.990")
	require.NoError(t, err)
	assert.Equal(t, "19.990", got.(interface{ String() string }).String())
}

func TestField_InvalidValues(t *testing.T) {
	testCases := []struct {
		typ string
		raw string
	}{
		{typ: schema.TypeInt, raw: "abc"},
		{typ: schema.TypeInt, raw: "1.5"},
		{typ: schema.TypeBigInt, raw: "12x"},
		{typ: schema.TypeFloat, raw: "NaN"},
		{typ: schema.TypeFloat, raw: "fast"},
		{typ: schema.TypeDecimal, raw: "Infinity"},
		{typ: schema.TypeDecimal, raw: "1,5"},
		{typ: schema.TypeBoolean, raw: "yes"},
		{typ: schema.TypeDateTime, raw: "yesterday"},
		{typ: schema.TypeJSON, raw: "{broken"},
	}

	for _, tc := range testCases {
		t.Run(tc.typ+"/"+tc.raw, func(t *testing.T) {
			_, err := Field(scalarField(tc.typ), tc.raw)
			require.Error(t, err)
			assert.True(t, ir.IsCode(err, ir.ErrCodeInvalidValue), err.Error())
		})
	}
}

func TestField_Enum(t *testing.T) {
	field := &schema.Field{Name: "role", Type: "Role", Kind: schema.KindEnum, EnumValues: []string{"ADMIN", "USER"}}

	got, err := Field(field, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", got)

	_, err = Field(field, "admin")
	require.Error(t, err)
	assert.True(t, ir.IsCode(err, ir.ErrCodeInvalidEnumValue))
	assert.Contains(t, err.Error(), "ADMIN, USER")
}

func TestField_Object(t *testing.T) {
	field := &schema.Field{Name: "posts", Type: "Post", Kind: schema.KindObject, IsList: true}

	_, err := Field(field, "1")
	require.Error(t, err)
	assert.True(t, ir.IsCode(err, ir.ErrCodeInvalidFieldKind))
}

func TestField_List(t *testing.T) {
	field := &schema.Field{Name: "scores", Type: schema.TypeInt, Kind: schema.KindScalar, IsList: true}

	got, err := Field(field, "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)

	_, err = Field(field, "1,two")
	require.Error(t, err)
	assert.True(t, ir.IsCode(err, ir.ErrCodeInvalidValue))
}

func TestValue_GuessesWithoutField(t *testing.T) {
	got, err := Value(nil, "18")
	require.NoError(t, err)
	assert.Equal(t, int64(18), got)
}

func TestList(t *testing.T) {
	got, err := List(nil, []string{"John", "18", "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, []any{"John", int64(18), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, got)

	got, err = List(scalarField(schema.TypeString), []string{"18", "19"})
	require.NoError(t, err)
	assert.Equal(t, []any{"18", "19"}, got)

	tags := &schema.Field{Name: "tags", Type: schema.TypeString, Kind: schema.KindScalar, IsList: true}
	got, err = List(tags, []string{"go", "rust"})
	require.NoError(t, err)
	assert.Equal(t, []any{"go", "rust"}, got)

	_, err = List(scalarField(schema.TypeInt), []string{"1", "x"})
	assert.True(t, ir.IsCode(err, ir.ErrCodeInvalidValue))
}
