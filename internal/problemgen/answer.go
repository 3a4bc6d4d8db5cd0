package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Verdict is the outcome of grading a learner's answer.
type Verdict int

const (
	VerdictCorrect Verdict = iota + 1
	VerdictIncorrect
	// VerdictMalformed means the input was not a whole number. It counts
	// as an incorrect answer.
	VerdictMalformed
)

// Correct reports whether the verdict counts as a right answer.
func (v Verdict) Correct() bool {
	return v == VerdictCorrect
}

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Grade compares the learner's raw input against the question's answer.
//
// Normalization rules:
// - All blanks are removed ("1 2" reads as 12)
// - An optional leading sign is accepted
// - Leading zeros are ignored ("007" matches 7)
// - Anything that is not a base-10 integer is malformed
func Grade(raw string, q *Question) Verdict {
	n, err := ParseAnswer(raw)
	if err != nil {
		return VerdictMalformed
	}
	if n == q.Answer {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

// ParseAnswer normalizes raw learner input into an integer.
func ParseAnswer(raw string) (int, error) {
	s := strings.Join(strings.Fields(raw), "")
	if s == "" {
		return 0, fmt.Errorf("empty answer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}
	return n, nil
}
