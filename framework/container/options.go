package container

import "github.com/sirupsen/logrus"

// RegistrationOptions is everything a registration can be configured with.
// The zero value means: singleton, eager, auto-wired.
type RegistrationOptions struct {
	Lifetime  Lifetime
	Blueprint *Blueprint
}

// Option mutates RegistrationOptions.
type Option func(*RegistrationOptions)

// WithLifetime sets the lifetime of an auto-wired registration.
// A blueprint's own lifetime takes precedence.
func WithLifetime(l Lifetime) Option {
	return func(o *RegistrationOptions) { o.Lifetime = l }
}

// AsSingleton is WithLifetime(Singleton).
func AsSingleton() Option { return WithLifetime(Singleton) }

// AsTransient is WithLifetime(Transient).
func AsTransient() Option { return WithLifetime(Transient) }

// WithBlueprint builds the implementation from bp instead of auto-wiring.
func WithBlueprint(bp *Blueprint) Option {
	return func(o *RegistrationOptions) { o.Blueprint = bp }
}

func buildOptions(opts []Option) RegistrationOptions {
	var o RegistrationOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// WithLogger replaces the registry's logger (logrus.StandardLogger by default).
func WithLogger(l logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithObserver adds an Observer notified of registrations and constructions.
func WithObserver(o Observer) RegistryOption {
	return func(r *Registry) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}
