package container

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Observer is notified of registry activity. Callbacks run synchronously on
// the registering or procuring goroutine and must not call back into the
// registry.
type Observer interface {
	// Registered fires after a registration is stored.
	Registered(info RegistrationInfo)
	// Constructed fires after every constructor call, failed or not.
	Constructed(info RegistrationInfo, elapsed time.Duration, err error)
	// Procured fires once per outermost Procure call.
	Procured(contract reflect.Type, err error)
}

// RegistrationInfo is a read-only snapshot of a registration.
type RegistrationInfo struct {
	Contract       string         `json:"contract"`
	Implementation string         `json:"implementation"`
	Lifetime       Lifetime       `json:"lifetime"`
	Lazy           bool           `json:"lazy"`
	Blueprint      bool           `json:"blueprint"`
	Arguments      []ArgumentInfo `json:"arguments,omitempty"`
	Resolved       bool           `json:"resolved"`
}

// ArgumentInfo describes one blueprint argument.
type ArgumentInfo struct {
	Type  string `json:"type"`
	Mode  string `json:"mode"`
	Value string `json:"value,omitempty"`
}

func (reg *registration) info() RegistrationInfo {
	info := RegistrationInfo{
		Contract:       typeName(reg.contract),
		Implementation: typeName(reg.impl),
		Lifetime:       reg.lifetime,
		Lazy:           reg.lazy,
		Blueprint:      reg.blueprint != nil,
		Resolved:       reg.cell.filled(),
	}
	if reg.blueprint != nil {
		for _, a := range reg.blueprint.args {
			ai := ArgumentInfo{Type: typeName(a.typ), Mode: a.mode.String()}
			if v, ok := a.Value(); ok {
				ai.Value = fmt.Sprint(v)
			}
			info.Arguments = append(info.Arguments, ai)
		}
	}
	return info
}

// Registrations returns a snapshot of every registration, ordered by
// contract name.
func (r *Registry) Registrations() []RegistrationInfo {
	r.mu.RLock()
	out := make([]RegistrationInfo, 0, len(r.registrations))
	for _, reg := range r.registrations {
		out = append(out, reg.info())
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b RegistrationInfo) int {
		return strings.Compare(a.Contract, b.Contract)
	})
	return out
}

// Lookup finds a registration by contract name as printed by reflect
// ("demo.NoMean", "*demo.HaveNoMeanConstructor").
func (r *Registry) Lookup(contract string) (RegistrationInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for t, reg := range r.registrations {
		if t.String() == contract {
			return reg.info(), true
		}
	}
	return RegistrationInfo{}, false
}
