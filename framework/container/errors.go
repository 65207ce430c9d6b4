package container

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnregisteredContract is returned by Procure when nothing is
	// registered for the requested contract.
	ErrUnregisteredContract = errors.New("container: no registration for contract")

	// ErrArgumentCountMismatch is returned by CreateBlueprint when the number
	// of arguments differs from the constructor's parameter count.
	ErrArgumentCountMismatch = errors.New("container: argument count does not match constructor")

	// ErrArgumentTypeMismatch is returned by CreateBlueprint when an argument
	// cannot be passed to the constructor parameter in the same position.
	ErrArgumentTypeMismatch = errors.New("container: argument type does not match constructor parameter")

	// ErrNoSuitableConstructor means a registration has zero constructors or
	// more than one, or the supplied constructor is not a usable func.
	ErrNoSuitableConstructor = errors.New("container: no suitable constructor")

	// ErrConstruction matches every *ConstructionError.
	ErrConstruction = errors.New("container: construction failed")

	// ErrContractMismatch means the implementation does not satisfy the
	// contract it is registered under.
	ErrContractMismatch = errors.New("container: implementation does not satisfy contract")
)

// ConstructionError wraps a failure raised by a constructor itself: a
// returned error or a recovered panic.
type ConstructionError struct {
	Contract       reflect.Type
	Implementation reflect.Type
	Err            error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("container: constructing %s for %s: %v", typeName(e.Implementation), typeName(e.Contract), e.Err)
}

// Unwrap exposes both ErrConstruction and the constructor's own error to
// errors.Is / errors.As.
func (e *ConstructionError) Unwrap() []error {
	return []error{ErrConstruction, e.Err}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
