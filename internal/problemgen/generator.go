package problemgen

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationExhausted is returned when no operand pair satisfying a
	// question's constraint was found within the configured attempts.
	ErrGenerationExhausted = errors.New("generation exhausted")

	// ErrInvalidBound is returned for a bound that cannot yield operands.
	ErrInvalidBound = errors.New("invalid bound")

	// ErrUnknownOperator is returned for an operator outside Add/Sub/Mul/Div.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Generator produces arithmetic questions from an OperandSource.
type Generator struct {
	src OperandSource
	cfg Config
}

// New creates a Generator drawing operands from src.
func New(src OperandSource, cfg Config) *Generator {
	if cfg.MaxDivisionAttempts <= 0 {
		cfg.MaxDivisionAttempts = DefaultConfig().MaxDivisionAttempts
	}
	return &Generator{src: src, cfg: cfg}
}

// Generate produces a single question for op with operands drawn from b.
// All configured validators run before the question is returned.
func (g *Generator) Generate(op Operator, b Bound) (*Question, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	var q *Question
	switch op {
	case OpAdd, OpMul:
		a, c := g.src.Next(b), g.src.Next(b)
		q = newQuestion(op, a, c, b)
	case OpSub:
		a, c := g.src.Next(b), g.src.Next(b)
		if a-c < 0 {
			a, c = c, a
		}
		q = newQuestion(op, a, c, b)
	case OpDiv:
		var err error
		q, err = g.division(b)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOperator, op)
	}

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// GenerateRandom picks one of the four operators uniformly and delegates
// to Generate.
func (g *Generator) GenerateRandom(b Bound) (*Question, error) {
	ops := Operators()
	op := Operator(g.src.Next(Bound{Min: int(ops[0]), Max: int(ops[len(ops)-1])}))
	if !op.Valid() {
		return nil, fmt.Errorf("%w: drew %d", ErrUnknownOperator, int(op))
	}
	return g.Generate(op, b)
}

// division redraws operand pairs until the dividend is an exact multiple
// of the divisor.
func (g *Generator) division(b Bound) (*Question, error) {
	for attempt := 0; attempt < g.cfg.MaxDivisionAttempts; attempt++ {
		a, c := g.src.Next(b), g.src.Next(b)
		if c != 0 && a%c == 0 {
			return newQuestion(OpDiv, a, c, b), nil
		}
	}
	return nil, fmt.Errorf("%w: no exact division in %v after %d attempts",
		ErrGenerationExhausted, b, g.cfg.MaxDivisionAttempts)
}
