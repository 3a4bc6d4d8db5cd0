package problemgen

import "sync"

// SequenceSource is a deterministic OperandSource for testing.
// It returns scripted values in FIFO order and records every bound it was
// asked to draw from. Once the script is exhausted it returns b.Min.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	Bounds []Bound
}

var _ OperandSource = (*SequenceSource)(nil)

// NewSequenceSource creates a SequenceSource that replays values.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Next(b Bound) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Bounds = append(s.Bounds, b)
	if len(s.values) == 0 {
		return b.Min
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

// Push appends values to the end of the script.
func (s *SequenceSource) Push(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// LastBound returns the most recently requested bound.
func (s *SequenceSource) LastBound() (Bound, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Bounds) == 0 {
		return Bound{}, false
	}
	return s.Bounds[len(s.Bounds)-1], true
}

// Remaining returns the number of scripted values not yet consumed.
func (s *SequenceSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}
