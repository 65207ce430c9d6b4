package container

import "fmt"

// Lifetime decides whether a registration hands out one shared instance or
// a fresh one per request.
type Lifetime int

const (
	// Singleton is built once, cached, returned to every Procure and every
	// dependency edge that reaches the contract. The zero value, so a
	// registration without options is a singleton.
	Singleton Lifetime = iota

	// Transient is built anew for every Procure and every dependency edge.
	Transient
)

// String returns "singleton" or "transient".
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return fmt.Sprintf("Lifetime(%d)", int(l))
	}
}

// MarshalText renders the lifetime by name (used by the inspector's JSON).
func (l Lifetime) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (l *Lifetime) UnmarshalText(text []byte) error {
	switch string(text) {
	case "singleton":
		*l = Singleton
	case "transient":
		*l = Transient
	default:
		return fmt.Errorf("container: unknown lifetime %q", text)
	}
	return nil
}

// LifetimeOf maps the boolean "isSingleton" flag used by blueprints and
// the two-argument registration form onto a Lifetime.
func LifetimeOf(singleton bool) Lifetime {
	if singleton {
		return Singleton
	}
	return Transient
}
