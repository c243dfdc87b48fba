package cast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    any
		want float64
		ok   bool
	}{
		{"float64", float64(1.5), 1.5, true},
		{"float32", float32(2.5), 2.5, true},
		{"int", 3, 3, true},
		{"int64", int64(-4), -4, true},
		{"int8", int8(7), 7, true},
		{"uint", uint(8), 8, true},
		{"uint64", uint64(12), 12, true},
		{"numeric string", " 2.25 ", 2.25, true},
		{"text", "abc", 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf string", "Inf", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Number(tt.v)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Empty(t, String(nil))
	assert.Equal(t, "x", String("x"))
	assert.Equal(t, "raw", String([]byte("raw")))
	assert.Equal(t, "stringer", String(stringer{}))
	assert.Equal(t, "42", String(42))
	assert.Equal(t, "true", String(true))
}

func TestStrings(t *testing.T) {
	t.Parallel()
	got, ok := Strings([]any{"a", 1, true})
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "1", "true"}, got)

	got, ok = Strings([2]int{3, 4})
	assert.True(t, ok)
	assert.Equal(t, []string{"3", "4"}, got)

	got, ok = Strings("single")
	assert.True(t, ok)
	assert.Equal(t, []string{"single"}, got)

	got, ok = Strings(nil)
	assert.True(t, ok)
	assert.Nil(t, got)

	_, ok = Strings(map[string]int{"a": 1})
	assert.False(t, ok)
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	var nilPtr *int
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "x", false},
		{"zero int", 0, true},
		{"int", 1, false},
		{"false", false, true},
		{"empty slice", []string{}, true},
		{"slice", []int{1}, false},
		{"empty map", map[string]any{}, true},
		{"nil pointer", nilPtr, true},
		{"struct zero", struct{ A int }{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Empty(tt.v))
		})
	}
}
