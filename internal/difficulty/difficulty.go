package difficulty

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathgame/internal/problemgen"
)

// StreakThreshold is the number of same-outcome answers in a row that
// moves the upper bound by one.
const StreakThreshold = 3

// Defaults used when no configuration overrides them.
const (
	DefaultStartMin = 1
	DefaultStartMax = 4
	DefaultMaxLevel = 10
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid difficulty config")

// State tracks the operand bound and the current answer streak.
// At most one of the two streak counters is non-zero.
type State struct {
	Bound            problemgen.Bound
	ConsecutiveRight int
	ConsecutiveWrong int
}

// Apply returns the state after one answer. It is a pure function.
//
// Three correct answers in a row raise Bound.Max by one, clamped at
// maxLevel. Three incorrect answers in a row lower it by one, clamped at
// startMax. The counter that reached the threshold resets to zero.
// Bound.Min never changes.
func Apply(s State, wasCorrect bool, startMax, maxLevel int) State {
	if wasCorrect {
		s.ConsecutiveRight++
		s.ConsecutiveWrong = 0
		if s.ConsecutiveRight >= StreakThreshold {
			s.Bound.Max = min(s.Bound.Max+1, maxLevel)
			s.ConsecutiveRight = 0
		}
		return s
	}

	s.ConsecutiveWrong++
	s.ConsecutiveRight = 0
	if s.ConsecutiveWrong >= StreakThreshold {
		s.Bound.Max = max(s.Bound.Max-1, startMax)
		s.ConsecutiveWrong = 0
	}
	return s
}

// Config holds the bound limits for a session.
type Config struct {
	StartMin int
	StartMax int
	MaxLevel int
}

// DefaultConfig returns the standard [1,4] start bound growing up to 10.
func DefaultConfig() Config {
	return Config{
		StartMin: DefaultStartMin,
		StartMax: DefaultStartMax,
		MaxLevel: DefaultMaxLevel,
	}
}

// Validate checks that the limits describe a usable range.
func (c Config) Validate() error {
	if c.StartMin < 1 {
		return fmt.Errorf("%w: start min %d < 1", ErrInvalidConfig, c.StartMin)
	}
	if c.StartMax < c.StartMin {
		return fmt.Errorf("%w: start max %d < start min %d", ErrInvalidConfig, c.StartMax, c.StartMin)
	}
	if c.MaxLevel < c.StartMax {
		return fmt.Errorf("%w: max level %d < start max %d", ErrInvalidConfig, c.MaxLevel, c.StartMax)
	}
	return nil
}

// Initial returns the state a new session starts in.
func (c Config) Initial() State {
	return State{Bound: problemgen.Bound{Min: c.StartMin, Max: c.StartMax}}
}

// Apply updates s using the configured limits.
func (c Config) Apply(s State, wasCorrect bool) State {
	return Apply(s, wasCorrect, c.StartMax, c.MaxLevel)
}

// Level is a 1-based display level: 1 at the start bound, rising by one
// for every step Bound.Max has climbed.
func (c Config) Level(s State) int {
	return s.Bound.Max - c.StartMax + 1
}

// MaxedOut reports whether the bound has reached MaxLevel.
func (c Config) MaxedOut(s State) bool {
	return s.Bound.Max >= c.MaxLevel
}
