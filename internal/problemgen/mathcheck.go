package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the
// question text and compares it to the precomputed answer.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := computeAnswer(q.Text)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot compute %q: %s", q.Text, err),
		}
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", computed, q.Answer),
		}
	}
	return nil
}

// questionRe matches the rendered question text, e.g. "12 x 3 = ?".
var questionRe = regexp.MustCompile(`^(\d+) ([+\-x/]) (\d+) = \?$`)

// computeAnswer extracts the expression from question text and evaluates it.
func computeAnswer(text string) (int, error) {
	m := questionRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("no arithmetic expression found")
	}

	a, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	b, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, err
	}

	switch m[2] {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "x":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		if a%b != 0 {
			return 0, fmt.Errorf("inexact division")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", m[2])
	}
}
