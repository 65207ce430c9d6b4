// Package demo holds the sample contracts and the walkthrough scenarios run
// by `divendor demo`.
package demo

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-divendor/framework/container"
)

// Report is what a scenario observed.
type Report struct {
	Name  string
	Lines []string
}

func (r *Report) addf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Scenario is one walkthrough.
type Scenario func(log logrus.FieldLogger) (*Report, error)

// Scenarios lists every walkthrough in order.
func Scenarios() []Scenario {
	return []Scenario{AutoWiring, LiteralBlueprint, ComplexBlueprint}
}

// AutoWiring self-registers HaveNoMeanConstructor and lets the registry
// supply its NoMean.
func AutoWiring(log logrus.FieldLogger) (*Report, error) {
	rep := &Report{Name: "auto-wiring"}
	r := container.New(container.WithLogger(log))

	if err := container.Register[NoMean](r, NewNoMeanClass); err != nil {
		return nil, err
	}
	if err := container.RegisterSelf(r, NewHaveNoMeanConstructor); err != nil {
		return nil, err
	}

	h, err := container.Procure[*HaveNoMeanConstructor](r)
	if err != nil {
		return nil, err
	}
	shared, err := container.Procure[NoMean](r)
	if err != nil {
		return nil, err
	}
	rep.addf("HaveNoMeanConstructor.NoMean is %T", h.NoMean)
	rep.addf("NoMean is the shared singleton: %t", h.NoMean == shared)
	return rep, nil
}

// registerLiteralGraph sets up the registrations shared by the blueprint
// scenarios: a transient lazy LiteralConstructor(10, "TEST"), a transient
// DependedConstructor and a singleton NoMean.
func registerLiteralGraph(r *container.Registry) error {
	var architect container.Architect
	bp, err := architect.CreateBlueprint(NewLiteralConstructor, false, true,
		container.NewArgument(reflect.TypeFor[int](), 10, false),
		container.ArgumentOf("TEST", false),
	)
	if err != nil {
		return err
	}
	if err := container.RegisterBlueprint[LiteralConstructor](r, bp); err != nil {
		return err
	}
	if err := container.Register[DependedConstructor](r, NewDependedConstructor, container.AsTransient()); err != nil {
		return err
	}
	return container.Register[NoMean](r, NewNoMeanClass)
}

// LiteralBlueprint procures two transient DependedConstructors: distinct
// instances sharing one NoMean, each with its own LiteralConstructor.
func LiteralBlueprint(log logrus.FieldLogger) (*Report, error) {
	rep := &Report{Name: "literal-blueprint"}
	r := container.New(container.WithLogger(log))
	if err := registerLiteralGraph(r); err != nil {
		return nil, err
	}

	d1, err := container.Procure[DependedConstructor](r)
	if err != nil {
		return nil, err
	}
	d2, err := container.Procure[DependedConstructor](r)
	if err != nil {
		return nil, err
	}

	rep.addf("DependedConstructor instances distinct: %t", d1 != d2)
	rep.addf("NoMean shared: %t", d1.NoConstructor() == d2.NoConstructor())
	rep.addf("LiteralConstructor instances distinct: %t", d1.LiteralConstructor() != d2.LiteralConstructor())
	rep.addf("LiteralConstructor = (%d, %q)", d1.LiteralConstructor().Num(), d1.LiteralConstructor().Str())
	return rep, nil
}

// ComplexBlueprint builds a ComplexConstructor whose blueprint leaves three
// dependencies to the registry and fixes Arg1 to 1.
func ComplexBlueprint(log logrus.FieldLogger) (*Report, error) {
	rep := &Report{Name: "complex-blueprint"}
	r := container.New(container.WithLogger(log))
	if err := registerLiteralGraph(r); err != nil {
		return nil, err
	}

	bp, err := container.CreateBlueprint(NewComplexConstructor, true, true,
		container.ArgumentOf[NoMean](nil, false),
		container.ArgumentOf[LiteralConstructor](nil, false),
		container.Auto[DependedConstructor](),
		container.ArgumentOf(1, false),
	)
	if err != nil {
		return nil, err
	}
	if err := container.RegisterBlueprint[ComplexConstructor](r, bp); err != nil {
		return nil, err
	}
	rep.addf("ComplexConstructor built before Procure: %t", r.Resolved(container.Contract[ComplexConstructor]()))

	c, err := container.Procure[ComplexConstructor](r)
	if err != nil {
		return nil, err
	}
	rep.addf("ComplexConstructor.Arg1 = %d", c.Arg1())
	rep.addf("ComplexConstructor.DependedConstructor resolved: %t", c.DependedConstructor() != nil)
	rep.addf("ComplexConstructor.LiteralConstructor = (%d, %q)", c.LiteralConstructor().Num(), c.LiteralConstructor().Str())
	return rep, nil
}

// Populate registers every demo contract on r: NoMean,
// HaveNoMeanConstructor, the literal graph and a lazy ComplexConstructor.
func Populate(r *container.Registry) error {
	if err := registerLiteralGraph(r); err != nil {
		return err
	}
	if err := container.RegisterSelf(r, NewHaveNoMeanConstructor); err != nil {
		return err
	}
	bp, err := container.CreateBlueprint(NewComplexConstructor, true, true,
		container.Auto[NoMean](),
		container.Auto[LiteralConstructor](),
		container.Auto[DependedConstructor](),
		container.Literal(1),
	)
	if err != nil {
		return err
	}
	return container.RegisterBlueprint[ComplexConstructor](r, bp)
}
