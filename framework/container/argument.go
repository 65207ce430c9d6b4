package container

import (
	"fmt"
	"reflect"
)

// ArgumentMode says where a constructor argument comes from.
type ArgumentMode int

const (
	// AutoArgument procures the argument's declared type from the registry.
	AutoArgument ArgumentMode = iota
	// LiteralArgument passes the stored value as-is.
	LiteralArgument
	// NullArgument passes the zero value of the parameter type, skipping
	// resolution even when the type is registered.
	NullArgument
)

func (m ArgumentMode) String() string {
	switch m {
	case AutoArgument:
		return "auto"
	case LiteralArgument:
		return "literal"
	case NullArgument:
		return "null"
	default:
		return fmt.Sprintf("ArgumentMode(%d)", int(m))
	}
}

// Argument describes one constructor parameter of a Blueprint. It is a
// value type; the zero Argument is an AutoArgument with no declared type and
// is rejected by CreateBlueprint.
type Argument struct {
	typ   reflect.Type
	mode  ArgumentMode
	value reflect.Value
}

// NewArgument builds an Argument declared as t:
//
//	non-nil value          → LiteralArgument
//	nil, explicitNull      → NullArgument
//	nil, !explicitNull     → AutoArgument
//
// A nil t is replaced by the dynamic type of value.
func NewArgument(t reflect.Type, value any, explicitNull bool) Argument {
	if isNil(value) {
		if explicitNull {
			return Argument{typ: t, mode: NullArgument}
		}
		return Argument{typ: t, mode: AutoArgument}
	}
	v := reflect.ValueOf(value)
	if t == nil {
		t = v.Type()
	}
	return Argument{typ: t, mode: LiteralArgument, value: v}
}

// ArgumentOf is NewArgument with the declared type taken from T.
//
//	container.ArgumentOf[demo.NoMean](nil, false)  // auto-resolve
//	container.ArgumentOf[demo.NoMean](nil, true)   // explicit nil
//	container.ArgumentOf(1, false)                 // literal int
func ArgumentOf[T any](value T, explicitNull bool) Argument {
	return NewArgument(reflect.TypeFor[T](), any(value), explicitNull)
}

// Literal declares a literal argument of type T. A nil v is an explicit
// null, never a request to resolve.
func Literal[T any](v T) Argument {
	t := reflect.TypeFor[T]()
	if isNil(any(v)) {
		return Argument{typ: t, mode: NullArgument}
	}
	return Argument{typ: t, mode: LiteralArgument, value: reflect.ValueOf(&v).Elem()}
}

// Null declares an explicit nil (zero value) argument of type T.
func Null[T any]() Argument {
	return Argument{typ: reflect.TypeFor[T](), mode: NullArgument}
}

// Auto declares an argument resolved from the registry as T.
func Auto[T any]() Argument {
	return Argument{typ: reflect.TypeFor[T](), mode: AutoArgument}
}

// Type returns the declared type.
func (a Argument) Type() reflect.Type { return a.typ }

// Mode returns the resolution mode.
func (a Argument) Mode() ArgumentMode { return a.mode }

// Value returns the literal value; ok is false unless Mode is LiteralArgument.
func (a Argument) Value() (v any, ok bool) {
	if a.mode != LiteralArgument {
		return nil, false
	}
	return a.value.Interface(), true
}

func (a Argument) String() string {
	if a.mode == LiteralArgument {
		return fmt.Sprintf("%s(%s=%v)", a.mode, typeName(a.typ), a.value.Interface())
	}
	return fmt.Sprintf("%s(%s)", a.mode, typeName(a.typ))
}

// fits reports whether a can be passed to a parameter of type param.
func (a Argument) fits(param reflect.Type) bool {
	if a.typ == nil || !a.typ.AssignableTo(param) {
		return false
	}
	if a.mode == LiteralArgument && !a.value.Type().AssignableTo(param) {
		return false
	}
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
