package session

// Score holds the running answer totals of a session. Counters only grow.
type Score struct {
	Right int
	Wrong int
}

// Record adds one answer. Malformed input is recorded as wrong.
func (s *Score) Record(correct bool) {
	if correct {
		s.Right++
		return
	}
	s.Wrong++
}

// Total returns the number of answers recorded.
func (s Score) Total() int {
	return s.Right + s.Wrong
}

// Accuracy returns Right / Total, or 0 before the first answer.
func (s Score) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Right) / float64(s.Total())
}
