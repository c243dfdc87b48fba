package cascade

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctions_Registry(t *testing.T) {
	t.Parallel()
	r := NewFunctions()
	r.Add("upper", strings.ToUpper)
	r.Add("lower", strings.ToLower)
	assert.True(t, r.Exists("upper"))
	assert.Equal(t, []string{"lower", "upper"}, r.Names())

	f, err := r.Get("upper")
	require.NoError(t, err)
	assert.Equal(t, "upper", f.Name())

	r.Remove("upper")
	r.Remove("missing")
	assert.False(t, r.Exists("upper"))
	_, err = r.Get("upper")
	require.ErrorIs(t, err, ErrUnknownFunction)
	var uf *UnknownFunctionError
	require.ErrorAs(t, err, &uf)
	assert.Equal(t, "upper", uf.Function)
}

func TestFunctions_AddReplaces(t *testing.T) {
	t.Parallel()
	r := NewFunctions()
	r.Add("v", func() string { return "one" })
	r.Add("v", func() string { return "two" })
	assert.Len(t, r.Names(), 1)
	f, err := r.Get("v")
	require.NoError(t, err)
	got, err := f.Call()
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestFunctions_AddDoesNotValidate(t *testing.T) {
	t.Parallel()
	r := NewFunctions()
	r.Add("notAFunc", 42)
	f, err := r.Get("notAFunc")
	require.NoError(t, err)
	_, err = f.Call()
	assert.ErrorIs(t, err, ErrNotCallable)
}

type structError struct{}

func (structError) Error() string { return "struct failure" }

type pointerError struct{}

func (*pointerError) Error() string { return "pointer failure" }

func TestFunc_Call(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")
	tests := []struct {
		name     string
		callback any
		args     []any
		want     any
		wantErr  error
		errMatch string
	}{
		{"single result", strings.ToUpper, []any{"go"}, "GO", nil, ""},
		{"numeric conversion", func(f float64) float64 { return f * 2 }, []any{3}, float64(6), nil, ""},
		{"nil argument", func(s []string) int { return len(s) }, []any{nil}, 0, nil, ""},
		{"variadic", func(sep string, parts ...string) string { return strings.Join(parts, sep) }, []any{"-", "a", "b"}, "a-b", nil, ""},
		{"variadic empty", func(parts ...string) int { return len(parts) }, nil, 0, nil, ""},
		{"value and nil error", func() (string, error) { return "ok", nil }, nil, "ok", nil, ""},
		{"value and error", func() (string, error) { return "", errBoom }, nil, nil, errBoom, ""},
		{"error only", func() error { return errBoom }, nil, nil, errBoom, ""},
		{"no result", func() {}, nil, nil, nil, ""},
		{"wrong arity", strings.ToUpper, nil, nil, nil, "wants 1 arguments"},
		{"wrong type", strings.ToUpper, []any{42}, nil, nil, "cannot use int"},
		{"bad second result", func() (string, string) { return "", "" }, nil, nil, ErrNotCallable, ""},
		{"not a function", "text", nil, nil, ErrNotCallable, ""},
		{"nil function", (func())(nil), nil, nil, ErrNotCallable, ""},
		{"negative to unsigned", func(n uint) uint { return n }, []any{-1}, nil, nil, "without loss"},
		{"fraction to int", func(n int) int { return n }, []any{2.9}, nil, nil, "without loss"},
		{"whole float to int", func(n int) int { return n }, []any{2.0}, 2, nil, ""},
		{"int overflow", func(n int8) int8 { return n }, []any{300}, nil, nil, "without loss"},
		{"uint overflow", func(n uint8) uint8 { return n }, []any{uint(256)}, nil, nil, "without loss"},
		{"large uint to int", func(n int64) int64 { return n }, []any{uint64(1 << 63)}, nil, nil, "without loss"},
		{"float32 overflow", func(f float32) float32 { return f }, []any{1e40}, nil, nil, "without loss"},
		{"int to float", func(f float32) float32 { return f }, []any{7}, float32(7), nil, ""},
		{"struct error nil", func() (string, structError) { return "ok", structError{} }, nil, nil, nil, "struct failure"},
		{"pointer error nil", func() (string, *pointerError) { return "ok", nil }, nil, "ok", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewFunc(tt.name, tt.callback).Call(tt.args...)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMatch != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMatch)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFunc_CallbackIsStoredAsIs(t *testing.T) {
	t.Parallel()
	cb := func() int { return 1 }
	f := NewFunc("one", cb)
	got, ok := f.Callback().(func() int)
	require.True(t, ok)
	assert.Equal(t, 1, got())
}
