package container_test

import "errors"

// ── fixtures ──────────────────────────────────────────────────────────────────

type Greeter interface{ Greet() string }

type englishGreeter struct{ _ byte }

func newEnglishGreeter() *englishGreeter { return &englishGreeter{} }
func (g *englishGreeter) Greet() string  { return "hello" }

type frenchGreeter struct{ _ byte }

func newFrenchGreeter() *frenchGreeter { return &frenchGreeter{} }
func (g *frenchGreeter) Greet() string { return "bonjour" }

type Clock interface{ Now() int }

type fixedClock struct{ t int }

func (c fixedClock) Now() int { return c.t }

// Service depends on a Greeter and a Clock.
type Service struct {
	Greeter Greeter
	Clock   Clock
}

func newService(g Greeter, c Clock) *Service {
	return &Service{Greeter: g, Clock: c}
}

// Pair has two Greeter slots, used for sibling transient edges.
type Pair struct {
	Left, Right Greeter
}

func newPair(l, r Greeter) *Pair { return &Pair{Left: l, Right: r} }

// Labelled takes a literal string and an int.
type Labelled struct {
	Label string
	Count int
	Greet Greeter
}

func newLabelled(label string, count int, g Greeter) *Labelled {
	return &Labelled{Label: label, Count: count, Greet: g}
}

var errBoom = errors.New("boom")

func newFailing() (*englishGreeter, error) { return nil, errBoom }

func newPanicking() *englishGreeter { panic("constructor exploded") }

// counter counts constructor calls.
type counter struct{ n int }

func (c *counter) greeter() func() *englishGreeter {
	return func() *englishGreeter {
		c.n++
		return &englishGreeter{}
	}
}
