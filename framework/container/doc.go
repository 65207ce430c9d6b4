// Package container provides a dependency-injection registry ("vendor")
// that maps contracts (usually interfaces) to implementations and builds
// object graphs on demand.
//
// # Overview
//
// Every implementation is built by exactly one constructor function,
// handed to the registry at registration time:
//
//	func NewDependedConstructor(n NoMean, l LiteralConstructor) *DependedConstructor
//
// A constructor returns T or (T, error). Its parameters are either resolved
// from the registry by type (auto-wiring) or supplied by a Blueprint.
//
// # Registering
//
//	r := container.New()
//
//	// Singleton (the default), built during Register
//	container.Register[NoMean](r, NewNoMeanClass)
//
//	// Transient: new instance per Procure and per dependency edge
//	container.Register[Depended](r, NewDependedConstructor, container.AsTransient())
//
//	// Self-registration: the contract is the constructor's result type
//	container.RegisterSelf(r, NewHaveNoMeanConstructor)
//
//	// Pre-built value
//	container.RegisterInstance[Clock](r, realClock{})
//
// Registering a contract again replaces the earlier registration. Instances
// already handed out stay valid; they are just no longer served.
//
// # Blueprints
//
// A Blueprint fixes how each constructor parameter is produced:
//
//	bp, err := container.CreateBlueprint(NewComplexConstructor, true, true,
//	    container.Null[NoMean](),              // pass nil, even though NoMean is registered
//	    container.Auto[LiteralConstructor](),  // procure from the registry
//	    container.Auto[Depended](),
//	    container.Literal(1),                  // pass 1
//	)
//	container.RegisterBlueprint[Complex](r, bp)
//
// The blueprint's singleton/lazy flags replace the registration's lifetime.
// A lazy singleton is built on first Procure; an eager one during Register.
//
// # Procuring
//
//	dep, err := container.Procure[Depended](r)
//	if errors.Is(err, container.ErrUnregisteredContract) { ... }
//
// Failures raised by constructors come back as *ConstructionError, which
// matches ErrConstruction. Dependency failures are wrapped with the path
// that led to them.
//
// # Providers
//
//	type StorageProvider struct{ container.BaseProvider }
//
//	func (p *StorageProvider) Register(r *container.Registry) error {
//	    return container.Register[Store](r, NewDiskStore)
//	}
//
//	providers := container.NewProviderRegistry(r)
//	providers.Register(&StorageProvider{})
//	providers.Boot()
//
// Deferred providers (IsDeferred true) register on the first Procure of one
// of their Provides() contracts.
//
// # Cycles
//
// Dependency cycles are not detected. A cyclic graph recurses until the
// goroutine stack is exhausted, which is fatal.
package container
