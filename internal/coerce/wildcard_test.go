package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternKey(t *testing.T) {
	testCases := []struct {
		value   string
		wantKey string
		wantOK  bool
	}{
		{value: "*John*", wantKey: "contains", wantOK: true},
		{value: "*John", wantKey: "startsWith", wantOK: true},
		{value: "John*", wantKey: "endsWith", wantOK: true},
		{value: "John", wantOK: false},
		{value: "Jo*hn", wantOK: false},
		{value: "*", wantKey: "contains", wantOK: true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			key, ok := PatternKey(tc.value)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantKey, key)
		})
	}
}

func TestWildcardPredicates_Exclusive(t *testing.T) {
	for _, v := range []string{"*a*", "*a", "a*", "a"} {
		matches := 0
		for _, fn := range []func(string) bool{IsLike, IsStartsWith, IsEndsWith} {
			if fn(v) {
				matches++
			}
		}
		assert.LessOrEqual(t, matches, 1, v)
	}
}

func TestConvertWildcards(t *testing.T) {
	assert.Equal(t, "John", ConvertWildcards("*John"))
	assert.Equal(t, "John", ConvertWildcards("John*"))
	assert.Equal(t, "John", ConvertWildcards("*John*"))
	assert.Equal(t, "Jo*hn", ConvertWildcards("*Jo*hn*"))
	assert.Equal(t, "John", ConvertWildcards("John"))
	assert.Equal(t, "", ConvertWildcards("*"))
}
