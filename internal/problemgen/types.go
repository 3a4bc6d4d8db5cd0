package problemgen

import "fmt"

// Operator is one of the four arithmetic operations a question can use.
// The zero value is not a valid operator.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
)

// Operators returns the four operators in menu order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSub, OpMul, OpDiv}
}

// Symbol returns the operator as printed in question text.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "x"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// String returns the operator name, e.g. "addition".
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	case OpDiv:
		return "division"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Valid reports whether o is one of the four known operators.
func (o Operator) Valid() bool {
	return o >= OpAdd && o <= OpDiv
}

// Apply evaluates a <o> b. Division is integer division; callers are
// expected to have checked divisibility.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		panic(fmt.Sprintf("problemgen: apply on invalid %v", o))
	}
}

// Bound is the inclusive range operands are drawn from.
type Bound struct {
	Min int
	Max int
}

// Validate checks that the bound can produce operands for every operator.
// Min must be at least 1 so that division never sees a zero divisor.
func (b Bound) Validate() error {
	if b.Min < 1 {
		return fmt.Errorf("%w: min %d < 1", ErrInvalidBound, b.Min)
	}
	if b.Min > b.Max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidBound, b.Min, b.Max)
	}
	return nil
}

// Contains reports whether n lies within the bound.
func (b Bound) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

func (b Bound) String() string {
	return fmt.Sprintf("[%d,%d]", b.Min, b.Max)
}

// Question represents a generated arithmetic question ready for display.
type Question struct {
	// Text is the prompt shown to the learner, e.g. "7 - 3 = ?".
	Text string

	Operator Operator

	// A and B are the operands in display order. For subtraction A >= B,
	// for division A is an exact multiple of B.
	A int
	B int

	// Answer is the precomputed integer result.
	Answer int

	// Bound is the operand range the question was drawn from.
	Bound Bound
}

// newQuestion builds a question and its display text.
func newQuestion(op Operator, a, b int, bound Bound) *Question {
	return &Question{
		Text:     fmt.Sprintf("%d %s %d = ?", a, op.Symbol(), b),
		Operator: op,
		A:        a,
		B:        b,
		Answer:   op.Apply(a, b),
		Bound:    bound,
	}
}
