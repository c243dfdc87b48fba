package cascade

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
)

// Func is a named template helper. The callback may be any function value;
// its signature is only examined when the function is called.
type Func struct {
	name     string
	callback any
}

// NewFunc wraps callback under name.
func NewFunc(name string, callback any) *Func {
	return &Func{name: name, callback: callback}
}

// Name returns the registered name.
func (f *Func) Name() string { return f.name }

// Callback returns the wrapped value as registered.
func (f *Func) Callback() any { return f.callback }

var errorType = reflect.TypeFor[error]()

// Call invokes the callback with args. Arguments are coerced to the parameter
// types (nil becomes the zero value; assignable and numeric conversions are
// applied). A trailing error result is returned as the call error.
func (f *Func) Call(args ...any) (any, error) {
	fn := reflect.ValueOf(f.callback)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, fmt.Errorf("%w: %q is %T", ErrNotCallable, f.name, f.callback)
	}
	ft := fn.Type()
	in, err := f.callArgs(ft, args)
	if err != nil {
		return nil, err
	}
	return f.callResult(ft, fn.Call(in))
}

func (f *Func) callArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("cascade: function %q wants at least %d arguments, got %d", f.name, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("cascade: function %q wants %d arguments, got %d", f.name, numIn, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			pt = ft.In(numIn - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		v, err := coerceArg(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("cascade: function %q argument %d: %w", f.name, i, err)
		}
		in[i] = v
	}
	return in, nil
}

func (f *Func) callResult(ft reflect.Type, out []reflect.Value) (any, error) {
	switch ft.NumOut() {
	case 0:
		return nil, nil
	case 1:
		if ft.Out(0) == errorType {
			if out[0].IsNil() {
				return nil, nil
			}
			return nil, out[0].Interface().(error)
		}
		return out[0].Interface(), nil
	case 2:
		if !ft.Out(1).Implements(errorType) {
			return nil, fmt.Errorf("%w: %q second result must be an error", ErrNotCallable, f.name)
		}
		if err := resultError(out[1]); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		return nil, fmt.Errorf("%w: %q returns %d values", ErrNotCallable, f.name, ft.NumOut())
	}
}

func coerceArg(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(pt), nil
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(pt.Kind()) {
		return convertNumber(v, pt)
	}
	if v.Kind() == reflect.String && pt.Kind() == reflect.String {
		return v.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", arg, pt)
}

// resultError returns the error held by v. Only interface and pointer kinds
// can hold a nil error; any other kind is always a non-nil error value.
func resultError(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface().(error)
}

// convertNumber converts v to pt, failing when the value does not fit or
// would lose a fractional part.
func convertNumber(v reflect.Value, pt reflect.Type) (reflect.Value, error) {
	target := reflect.Zero(pt)
	lossy := fmt.Errorf("cannot use %v (%s) as %s without loss", v.Interface(), v.Type(), pt)
	switch {
	case v.CanInt():
		n := v.Int()
		switch {
		case pt.Kind() >= reflect.Int && pt.Kind() <= reflect.Int64:
			if target.OverflowInt(n) {
				return reflect.Value{}, lossy
			}
		case pt.Kind() >= reflect.Uint && pt.Kind() <= reflect.Uint64:
			if n < 0 || target.OverflowUint(uint64(n)) {
				return reflect.Value{}, lossy
			}
		}
	case v.CanUint():
		n := v.Uint()
		switch {
		case pt.Kind() >= reflect.Int && pt.Kind() <= reflect.Int64:
			if n > math.MaxInt64 || target.OverflowInt(int64(n)) {
				return reflect.Value{}, lossy
			}
		case pt.Kind() >= reflect.Uint && pt.Kind() <= reflect.Uint64:
			if target.OverflowUint(n) {
				return reflect.Value{}, lossy
			}
		}
	case v.CanFloat():
		f := v.Float()
		switch {
		case pt.Kind() == reflect.Float32 || pt.Kind() == reflect.Float64:
			if target.OverflowFloat(f) {
				return reflect.Value{}, lossy
			}
		case f != math.Trunc(f) || math.IsNaN(f) || math.IsInf(f, 0):
			return reflect.Value{}, lossy
		case pt.Kind() >= reflect.Int && pt.Kind() <= reflect.Int64:
			if f < math.MinInt64 || f >= math.MaxInt64 || target.OverflowInt(int64(f)) {
				return reflect.Value{}, lossy
			}
		default:
			if f < 0 || f >= math.MaxUint64 || target.OverflowUint(uint64(f)) {
				return reflect.Value{}, lossy
			}
		}
	}
	return v.Convert(pt), nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FunctionSource is the read side of a function registry, handed to renderers.
// Renderers must look functions up through it when they are called so that
// re-registrations made after a template was built still take effect.
type FunctionSource interface {
	Names() []string
	Get(name string) (*Func, error)
}

// Functions is the named helper registry.
type Functions struct {
	funcs map[string]*Func
}

// Ensures Functions implements FunctionSource.
var _ FunctionSource = (*Functions)(nil)

// NewFunctions returns an empty registry.
func NewFunctions() *Functions {
	return &Functions{funcs: make(map[string]*Func)}
}

// Add registers callback under name, replacing any previous registration.
func (r *Functions) Add(name string, callback any) {
	r.funcs[name] = NewFunc(name, callback)
}

// Remove drops name. Unknown names are ignored.
func (r *Functions) Remove(name string) {
	delete(r.funcs, name)
}

// Get returns the function registered as name or an *UnknownFunctionError.
func (r *Functions) Get(name string) (*Func, error) {
	f, ok := r.funcs[name]
	if !ok {
		return nil, &UnknownFunctionError{Function: name}
	}
	return f, nil
}

// Exists reports whether name is registered.
func (r *Functions) Exists(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Functions) Names() []string {
	return slices.Sorted(maps.Keys(r.funcs))
}
