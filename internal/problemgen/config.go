package problemgen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxDivisionAttempts caps the number of operand pairs drawn while
	// looking for an exact division.
	MaxDivisionAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
		},
		MaxDivisionAttempts: 1000,
	}
}
