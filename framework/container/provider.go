package container

import (
	"reflect"
	"sync"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations.
//
// Register is called when the provider is added (or, for deferred
// providers, when one of its contracts is first procured). Boot is called
// after all eager providers are registered, so it may procure anything.
//
//	type StorageProvider struct{ container.BaseProvider }
//
//	func (p *StorageProvider) Register(r *container.Registry) error {
//	    return container.Register[Store](r, NewDiskStore)
//	}
type ServiceProvider interface {
	// Register adds registrations. Do not procure here; use Boot.
	Register(r *Registry) error

	// Boot runs once every eager provider is registered.
	Boot(r *Registry) error

	// Provides lists the contracts a deferred provider registers.
	Provides() []reflect.Type

	// IsDeferred delays Register until a Provides() contract is procured.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider gives no-op Boot, Provides and IsDeferred. Embed it and
// implement Register.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Registry) error   { return nil }
func (p *BaseProvider) Provides() []reflect.Type { return nil }
func (p *BaseProvider) IsDeferred() bool         { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one Registry.
type ProviderRegistry struct {
	mu         sync.Mutex
	r          *Registry
	eager      []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a provider registry bound to r.
func NewProviderRegistry(r *Registry) *ProviderRegistry {
	return &ProviderRegistry{
		r:          r,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider. Eager providers register immediately (and boot
// immediately when the registry has already booted); deferred providers wait
// for the first procurement of one of their contracts. Adding the same
// provider twice is a no-op.
func (p *ProviderRegistry) Register(provider ServiceProvider) error {
	p.mu.Lock()
	if p.registered[provider] {
		p.mu.Unlock()
		return nil
	}
	p.registered[provider] = true
	booted := p.booted
	p.mu.Unlock()

	if provider.IsDeferred() {
		p.deferProvider(provider)
		return nil
	}

	if err := provider.Register(p.r); err != nil {
		return err
	}

	p.mu.Lock()
	p.eager = append(p.eager, provider)
	p.mu.Unlock()

	if booted {
		return provider.Boot(p.r)
	}
	return nil
}

// deferProvider arranges for provider to be registered, once, on the first
// procurement of any contract it provides.
func (p *ProviderRegistry) deferProvider(provider ServiceProvider) {
	var (
		once sync.Once
		err  error
	)
	load := func() error {
		once.Do(func() {
			if err = provider.Register(p.r); err != nil {
				return
			}
			if p.Booted() {
				err = provider.Boot(p.r)
			}
		})
		return err
	}
	for _, contract := range provider.Provides() {
		p.r.deferContract(contract, load)
	}
}

// Boot calls Boot on every eager provider, in registration order. Only the
// first call does anything.
func (p *ProviderRegistry) Boot() error {
	p.mu.Lock()
	if p.booted {
		p.mu.Unlock()
		return nil
	}
	p.booted = true
	providers := append([]ServiceProvider(nil), p.eager...)
	p.mu.Unlock()

	for _, provider := range providers {
		if err := provider.Boot(p.r); err != nil {
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has been called.
func (p *ProviderRegistry) Booted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.booted
}

// Providers returns the eager providers.
func (p *ProviderRegistry) Providers() []ServiceProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ServiceProvider(nil), p.eager...)
}
