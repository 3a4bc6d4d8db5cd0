package problemgen

import "fmt"

// StructuralValidator checks operator, operand range and the per-operator
// shape constraints: no negative differences and no remainders.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.Text == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	if !q.Operator.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("invalid operator %d", int(q.Operator)),
		}
	}
	if !q.Bound.Contains(q.A) || !q.Bound.Contains(q.B) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("operands %d, %d outside %v", q.A, q.B, q.Bound),
		}
	}

	switch q.Operator {
	case OpSub:
		if q.A < q.B {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("negative difference %d - %d", q.A, q.B),
			}
		}
	case OpDiv:
		if q.B == 0 || q.A%q.B != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%d is not a multiple of %d", q.A, q.B),
			}
		}
	}
	return nil
}
