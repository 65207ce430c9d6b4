package container

import (
	"fmt"
	"reflect"
)

// Blueprint is an immutable plan for building one implementation: its
// constructor, lifetime, laziness and one Argument per constructor
// parameter, in parameter order.
type Blueprint struct {
	ctor      constructor
	singleton bool
	lazy      bool
	args      []Argument
}

// CreateBlueprint validates args against ctor and returns a Blueprint.
// Nothing is constructed.
//
//	bp, err := container.CreateBlueprint(demo.NewLiteralConstructor, false, true,
//	    container.NewArgument(reflect.TypeFor[int](), 10, false),
//	    container.Literal("TEST"),
//	)
//
// Arguments are matched by position only. A variadic final parameter takes
// one slice-typed argument.
func CreateBlueprint(ctor any, singleton, lazy bool, args ...Argument) (*Blueprint, error) {
	c, err := newConstructor(ctor)
	if err != nil {
		return nil, err
	}

	params := c.params()
	if len(args) != len(params) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArgumentCountMismatch, c.out, len(params), len(args))
	}
	for i, a := range args {
		if !a.fits(params[i]) {
			return nil, fmt.Errorf("%w: %s argument %d is %s, parameter is %s",
				ErrArgumentTypeMismatch, c.out, i, a, params[i])
		}
	}

	return &Blueprint{
		ctor:      c,
		singleton: singleton,
		lazy:      lazy,
		args:      append([]Argument(nil), args...),
	}, nil
}

// MustCreateBlueprint is like CreateBlueprint but panics on error.
func MustCreateBlueprint(ctor any, singleton, lazy bool, args ...Argument) *Blueprint {
	bp, err := CreateBlueprint(ctor, singleton, lazy, args...)
	if err != nil {
		panic(err)
	}
	return bp
}

// Architect hands out blueprints. It holds no state; it exists for callers
// that want to pass a blueprint factory around as a value.
type Architect struct{}

// CreateBlueprint is the package-level CreateBlueprint.
func (Architect) CreateBlueprint(ctor any, singleton, lazy bool, args ...Argument) (*Blueprint, error) {
	return CreateBlueprint(ctor, singleton, lazy, args...)
}

// Target returns the implementation type the blueprint builds.
func (b *Blueprint) Target() reflect.Type { return b.ctor.out }

// Lifetime returns Singleton or Transient.
func (b *Blueprint) Lifetime() Lifetime { return LifetimeOf(b.singleton) }

// Singleton reports whether instances are shared.
func (b *Blueprint) Singleton() bool { return b.singleton }

// Lazy reports whether a singleton waits for the first Procure.
func (b *Blueprint) Lazy() bool { return b.lazy }

// Arguments returns a copy of the argument plan.
func (b *Blueprint) Arguments() []Argument {
	return append([]Argument(nil), b.args...)
}
