package container

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

// ── Registration ──────────────────────────────────────────────────────────────

// registration is the registry's record for one contract.
type registration struct {
	contract  reflect.Type
	impl      reflect.Type
	ctor      constructor
	lifetime  Lifetime
	lazy      bool
	blueprint *Blueprint
	cell      *instanceCell
}

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry maps contracts to implementations and builds them on demand.
//
// It supports:
//   - Register / RegisterSelf / RegisterBlueprint / RegisterInstance
//   - Procure (generic) / ProcureType (reflect)
//   - singleton and transient lifetimes, eager or lazy singletons
//   - blueprints with literal, explicit-nil and auto-resolved arguments
//   - deferred service providers
//
// A Registry is safe for concurrent use. Constructors must not call back
// into the registry that is building them.
type Registry struct {
	mu sync.RWMutex

	// contract → registration
	registrations map[reflect.Type]*registration

	// contract → loader of a deferred provider
	deferred map[reflect.Type]func() error

	log       logrus.FieldLogger
	observers []Observer
}

// New creates an empty registry.
func New(opts ...RegistryOption) *Registry {
	r := &Registry{
		registrations: make(map[reflect.Type]*registration),
		deferred:      make(map[reflect.Type]func() error),
		log:           logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ── Registration API ──────────────────────────────────────────────────────────

// Register maps contract C to the implementation built by ctor.
//
//	// singleton, built right now, dependencies auto-wired
//	container.Register[demo.NoMean](r, demo.NewNoMeanClass)
//
//	// new instance per request
//	container.Register[demo.Depended](r, demo.NewDependedConstructor, container.AsTransient())
//
//	// built from a blueprint (ctor must be nil)
//	container.Register[demo.Literal](r, nil, container.WithBlueprint(bp))
//
// Registering C again replaces the previous registration. An eager
// singleton whose dependencies are not registered yet is stored and built on
// its first Procure; one whose constructor fails is not registered and the
// error is returned.
func Register[C any](r *Registry, ctor any, opts ...Option) error {
	return r.register(reflect.TypeFor[C](), ctor, buildOptions(opts))
}

// RegisterSelf registers the implementation built by ctor as its own
// contract.
//
//	container.RegisterSelf(r, demo.NewHaveNoMeanConstructor)
//	h, _ := container.Procure[*demo.HaveNoMeanConstructor](r)
//
// With WithBlueprint and a nil ctor, the blueprint's target is the contract.
func RegisterSelf(r *Registry, ctor any, opts ...Option) error {
	o := buildOptions(opts)
	if ctor == nil && o.Blueprint != nil {
		return r.register(o.Blueprint.Target(), nil, o)
	}
	c, err := newConstructor(ctor)
	if err != nil {
		return err
	}
	return r.register(c.out, ctor, o)
}

// RegisterBlueprint maps contract C to the implementation described by bp.
func RegisterBlueprint[C any](r *Registry, bp *Blueprint) error {
	return Register[C](r, nil, WithBlueprint(bp))
}

// RegisterInstance maps contract C to an already-built value, served as a
// singleton.
func RegisterInstance[C any](r *Registry, instance C) {
	contract := reflect.TypeFor[C]()
	v := reflect.ValueOf(&instance).Elem()
	impl := contract
	if !isNil(any(instance)) {
		impl = reflect.TypeOf(any(instance))
	}
	reg := &registration{
		contract: contract,
		impl:     impl,
		lifetime: Singleton,
		cell:     &instanceCell{},
	}
	reg.cell.store(v)
	r.store(reg)
}

// MustRegister is like Register but panics on error.
func MustRegister[C any](r *Registry, ctor any, opts ...Option) {
	if err := Register[C](r, ctor, opts...); err != nil {
		panic(err)
	}
}

func (r *Registry) register(contract reflect.Type, ctor any, o RegistrationOptions) error {
	reg, err := newRegistration(contract, ctor, o)
	if err != nil {
		return err
	}

	if reg.lifetime == Singleton && !reg.lazy {
		fields := logrus.Fields{
			"contract":       typeName(contract),
			"implementation": typeName(reg.impl),
		}
		res := newResolution()
		res.registering = true
		_, err := r.instantiate(res, reg)
		var cerr *ConstructionError
		switch {
		case err == nil:
			r.log.WithFields(fields).Debug("container: eager singleton built")
		case errors.Is(err, ErrUnregisteredContract) && !errors.As(err, &cerr):
			// A dependency is not registered yet; build on first Procure.
			r.log.WithFields(fields).WithError(err).Debug("container: eager singleton deferred")
		default:
			return err
		}
	}

	r.store(reg)
	return nil
}

func newRegistration(contract reflect.Type, ctor any, o RegistrationOptions) (*registration, error) {
	reg := &registration{
		contract: contract,
		lifetime: o.Lifetime,
		cell:     &instanceCell{},
	}

	switch {
	case o.Blueprint != nil && ctor != nil:
		return nil, fmt.Errorf("%w: %s has both a constructor and a blueprint", ErrNoSuitableConstructor, contract)
	case o.Blueprint != nil:
		reg.blueprint = o.Blueprint
		reg.ctor = o.Blueprint.ctor
		reg.lifetime = o.Blueprint.Lifetime()
		reg.lazy = o.Blueprint.lazy
	default:
		c, err := newConstructor(ctor)
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", contract, err)
		}
		reg.ctor = c
	}

	reg.impl = reg.ctor.out
	if !reg.impl.AssignableTo(contract) {
		return nil, fmt.Errorf("%w: %s does not implement %s", ErrContractMismatch, reg.impl, contract)
	}
	return reg, nil
}

// store installs reg, replacing any previous registration of its contract.
func (r *Registry) store(reg *registration) {
	r.mu.Lock()
	_, replaced := r.registrations[reg.contract]
	r.registrations[reg.contract] = reg
	r.mu.Unlock()

	entry := r.log.WithFields(logrus.Fields{
		"contract":       typeName(reg.contract),
		"implementation": typeName(reg.impl),
		"lifetime":       reg.lifetime.String(),
		"lazy":           reg.lazy,
	})
	if replaced {
		entry.Warn("container: registration replaced")
	} else {
		entry.Debug("container: registered")
	}

	info := reg.info()
	for _, o := range r.observers {
		o.Registered(info)
	}
}

// deferContract installs a loader run the first time contract is requested
// while unregistered.
func (r *Registry) deferContract(contract reflect.Type, load func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deferred[contract] = load
}

// ── Procurement ───────────────────────────────────────────────────────────────

// Procure returns an instance satisfying contract C.
//
//	dep, err := container.Procure[demo.Depended](r)
func Procure[C any](r *Registry) (C, error) {
	var zero C
	v, err := r.ProcureType(reflect.TypeFor[C]())
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	c, ok := v.(C)
	if !ok {
		return zero, fmt.Errorf("%w: got %T for %s", ErrContractMismatch, v, reflect.TypeFor[C]())
	}
	return c, nil
}

// MustProcure is like Procure but panics on error.
func MustProcure[C any](r *Registry) C {
	c, err := Procure[C](r)
	if err != nil {
		panic(err)
	}
	return c
}

// ProcureType is the untyped form of Procure.
func (r *Registry) ProcureType(contract reflect.Type) (any, error) {
	v, err := r.procure(newResolution(), contract)
	for _, o := range r.observers {
		o.Procured(contract, err)
	}
	if err != nil {
		return nil, err
	}
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

// lookup finds the registration for contract, running a deferred provider
// first if one is waiting for it. The loader stays installed until it
// returns, so concurrent lookups wait on it instead of missing the contract.
// Eager builds at registration time do not run loaders.
func (r *Registry) lookup(res *resolution, contract reflect.Type) (*registration, error) {
	r.mu.RLock()
	reg, ok := r.registrations[contract]
	load := r.deferred[contract]
	r.mu.RUnlock()
	if ok {
		return reg, nil
	}

	if load != nil && !res.registering {
		if err := load(); err != nil {
			return nil, err
		}
		r.mu.Lock()
		delete(r.deferred, contract)
		reg, ok = r.registrations[contract]
		r.mu.Unlock()
		if ok {
			return reg, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnregisteredContract, typeName(contract))
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Bound reports whether contract has a registration (or a deferred provider).
func (r *Registry) Bound(contract reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, hasReg := r.registrations[contract]
	_, hasDeferred := r.deferred[contract]
	return hasReg || hasDeferred
}

// Resolved reports whether contract holds a cached singleton.
func (r *Registry) Resolved(contract reflect.Type) bool {
	r.mu.RLock()
	reg, ok := r.registrations[contract]
	r.mu.RUnlock()
	return ok && reg.cell.filled()
}

// Contract returns the contract key for C, for APIs that take a reflect.Type.
//
//	r.Bound(container.Contract[demo.NoMean]())
func Contract[C any]() reflect.Type {
	return reflect.TypeFor[C]()
}
