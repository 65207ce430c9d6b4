package demo

// NoMean is an empty contract.
type NoMean interface{}

// NoMeanClass implements NoMean. It carries a field so that distinct
// instances have distinct addresses.
type NoMeanClass struct{ _ byte }

func NewNoMeanClass() *NoMeanClass { return &NoMeanClass{} }

// HaveNoMeanConstructor receives a NoMean through its constructor.
type HaveNoMeanConstructor struct {
	NoMean NoMean
}

func NewHaveNoMeanConstructor(noMean NoMean) *HaveNoMeanConstructor {
	return &HaveNoMeanConstructor{NoMean: noMean}
}

// LiteralConstructor holds an int and a string.
type LiteralConstructor interface {
	Num() int
	Str() string
}

type literalConstructor struct {
	num int
	str string
}

func NewLiteralConstructor(num int, str string) LiteralConstructor {
	return &literalConstructor{num: num, str: str}
}

func (l *literalConstructor) Num() int    { return l.num }
func (l *literalConstructor) Str() string { return l.str }

// DependedConstructor holds a NoMean and a LiteralConstructor.
type DependedConstructor interface {
	NoConstructor() NoMean
	LiteralConstructor() LiteralConstructor
}

type dependedConstructor struct {
	noMean  NoMean
	literal LiteralConstructor
}

func NewDependedConstructor(noMean NoMean, literal LiteralConstructor) *dependedConstructor {
	return &dependedConstructor{noMean: noMean, literal: literal}
}

func (d *dependedConstructor) NoConstructor() NoMean                  { return d.noMean }
func (d *dependedConstructor) LiteralConstructor() LiteralConstructor { return d.literal }

// ComplexConstructor mixes resolved dependencies with a literal int.
type ComplexConstructor interface {
	NoConstructor() NoMean
	LiteralConstructor() LiteralConstructor
	DependedConstructor() DependedConstructor
	Arg1() int
}

type complexConstructor struct {
	noMean   NoMean
	literal  LiteralConstructor
	depended DependedConstructor
	arg1     int
}

func NewComplexConstructor(noMean NoMean, literal LiteralConstructor, depended DependedConstructor, arg1 int) *complexConstructor {
	return &complexConstructor{noMean: noMean, literal: literal, depended: depended, arg1: arg1}
}

func (c *complexConstructor) NoConstructor() NoMean                    { return c.noMean }
func (c *complexConstructor) LiteralConstructor() LiteralConstructor   { return c.literal }
func (c *complexConstructor) DependedConstructor() DependedConstructor { return c.depended }
func (c *complexConstructor) Arg1() int                                { return c.arg1 }
