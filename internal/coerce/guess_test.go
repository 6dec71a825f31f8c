package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuess(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want any
	}{
		{name: "plain string", raw: "John", want: "John"},
		{name: "true", raw: "true", want: true},
		{name: "mixed case false", raw: "FaLsE", want: false},
		{name: "integer", raw: "18", want: int64(18)},
		{name: "negative integer", raw: "-7", want: int64(-7)},
		{name: "zero", raw: "0", want: int64(0)},
		{name: "float", raw: "3.25", want: 3.25},
		{name: "fraction below one", raw: "0.5", want: 0.5},
		{name: "exponent", raw: "1e3", want: float64(1000)},
		{name: "leading zero kept", raw: "007", want: "007"},
		{name: "signed leading zero kept", raw: "-01", want: "-01"},
		{name: "hex kept", raw: "0x1F", want: "0x1F"},
		{name: "infinity kept", raw: "Infinity", want: "Infinity"},
		{name: "nan kept", raw: "NaN", want: "NaN"},
		{name: "date only", raw: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp", raw: "1970-01-01T15:00:00.000Z", want: time.Date(1970, 1, 1, 15, 0, 0, 0, time.UTC)},
		{name: "timestamp with offset", raw: "2024-03-01T10:30:00+02:00", want: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)},
		{name: "impossible date kept", raw: "2024-13-45", want: "2024-13-45"},
		{name: "date prefix kept", raw: "2024-03-01 and more", want: "2024-03-01 and more"},
		{name: "json array", raw: `["a",1]`, want: []any{"a", float64(1)}},
		{name: "json object", raw: `{"a":true}`, want: map[string]any{"a": true}},
		{name: "malformed json kept", raw: "[oops]", want: "[oops]"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Guess(tc.raw))
		})
	}
}

func TestScalar(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want any
	}{
		{name: "integer", raw: "18", want: int64(18)},
		{name: "leading zero parsed", raw: "007", want: int64(7)},
		{name: "float", raw: "19.99", want: 19.99},
		{name: "date wins", raw: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "boolean stays string", raw: "true", want: "true"},
		{name: "word stays string", raw: "John", want: "John"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Scalar(tc.raw))
		})
	}
}
