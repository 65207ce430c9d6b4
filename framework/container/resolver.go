package container

import (
	"fmt"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
)

// procure resolves contract within one resolution.
func (r *Registry) procure(res *resolution, contract reflect.Type) (reflect.Value, error) {
	reg, err := r.lookup(res, contract)
	if err != nil {
		return reflect.Value{}, err
	}
	return r.instantiate(res, reg)
}

// instantiate applies the registration's lifetime: cached singleton,
// freshly built singleton (cached before return) or a new transient.
func (r *Registry) instantiate(res *resolution, reg *registration) (reflect.Value, error) {
	if reg.lifetime == Transient {
		return r.construct(res, reg)
	}

	if v, ok := reg.cell.load(); ok {
		return v, nil
	}

	// Re-entry on a held cell only happens for a cyclic graph, which then
	// recurses without bound.
	if !res.holds(reg.cell) {
		release := res.acquire(reg.cell)
		defer release()
		if v, ok := reg.cell.load(); ok {
			return v, nil
		}
	}

	v, err := r.construct(res, reg)
	if err != nil {
		return reflect.Value{}, err
	}
	reg.cell.store(v)
	return v, nil
}

// construct assembles the constructor arguments and calls the constructor.
func (r *Registry) construct(res *resolution, reg *registration) (reflect.Value, error) {
	if !reg.ctor.valid() {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoSuitableConstructor, typeName(reg.impl))
	}

	var (
		args []reflect.Value
		err  error
	)
	if reg.blueprint != nil {
		args, err = r.blueprintArguments(res, reg)
	} else {
		args, err = r.autowireArguments(res, reg)
	}
	if err != nil {
		return reflect.Value{}, err
	}

	start := time.Now()
	v, err := reg.ctor.call(args)
	elapsed := time.Since(start)
	if err != nil {
		err = &ConstructionError{Contract: reg.contract, Implementation: reg.impl, Err: err}
	}

	info := reg.info()
	for _, o := range r.observers {
		o.Constructed(info, elapsed, err)
	}
	if err != nil {
		return reflect.Value{}, err
	}

	r.log.WithFields(logrus.Fields{
		"contract":       typeName(reg.contract),
		"implementation": typeName(reg.impl),
		"lifetime":       reg.lifetime.String(),
	}).Debug("container: constructed")
	return v, nil
}

// autowireArguments procures every constructor parameter by its type.
func (r *Registry) autowireArguments(res *resolution, reg *registration) ([]reflect.Value, error) {
	params := reg.ctor.params()
	args := make([]reflect.Value, len(params))
	for i, p := range params {
		v, err := r.procure(res, p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s argument %d: %w", typeName(reg.impl), i, err)
		}
		args[i] = argValue(v, p)
	}
	return args, nil
}

// blueprintArguments follows the blueprint's plan slot by slot.
func (r *Registry) blueprintArguments(res *resolution, reg *registration) ([]reflect.Value, error) {
	params := reg.ctor.params()
	args := make([]reflect.Value, len(params))
	for i, a := range reg.blueprint.args {
		switch a.mode {
		case LiteralArgument:
			args[i] = a.value
		case NullArgument:
			args[i] = reflect.Zero(params[i])
		default:
			v, err := r.procure(res, a.typ)
			if err != nil {
				return nil, fmt.Errorf("resolving %s argument %d: %w", typeName(reg.impl), i, err)
			}
			args[i] = argValue(v, params[i])
		}
	}
	return args, nil
}

// argValue turns a resolved nil into the zero value of the parameter.
func argValue(v reflect.Value, param reflect.Type) reflect.Value {
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return reflect.Zero(param)
	}
	return v
}
