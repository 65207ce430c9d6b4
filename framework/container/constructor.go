package container

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// constructor is the single factory func of an implementation:
// func(deps...) Impl or func(deps...) (Impl, error).
type constructor struct {
	fn       reflect.Value
	out      reflect.Type
	variadic bool
	fallible bool
}

func newConstructor(fn any) (constructor, error) {
	if fn == nil {
		return constructor{}, fmt.Errorf("%w: no constructor supplied", ErrNoSuitableConstructor)
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return constructor{}, fmt.Errorf("%w: %s is not a func", ErrNoSuitableConstructor, t)
	}
	if v.IsNil() {
		return constructor{}, fmt.Errorf("%w: nil %s", ErrNoSuitableConstructor, t)
	}
	switch {
	case t.NumOut() == 1 && t.Out(0) != errorType:
	case t.NumOut() == 2 && t.Out(1) == errorType:
	default:
		return constructor{}, fmt.Errorf("%w: %s must return T or (T, error)", ErrNoSuitableConstructor, t)
	}
	return constructor{
		fn:       v,
		out:      t.Out(0),
		variadic: t.IsVariadic(),
		fallible: t.NumOut() == 2,
	}, nil
}

func (c constructor) valid() bool { return c.fn.IsValid() }

func (c constructor) params() []reflect.Type {
	t := c.fn.Type()
	in := make([]reflect.Type, t.NumIn())
	for i := range in {
		in[i] = t.In(i)
	}
	return in
}

// call invokes the constructor. A panic inside it is returned as an error.
func (c constructor) call(args []reflect.Value) (instance reflect.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	var out []reflect.Value
	if c.variadic {
		out = c.fn.CallSlice(args)
	} else {
		out = c.fn.Call(args)
	}
	if c.fallible && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}
	return out[0], nil
}
