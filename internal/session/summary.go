package session

import (
	"fmt"
	"time"
)

// Summary holds the end-of-session results.
type Summary struct {
	Mode  Mode
	Right int
	Wrong int

	// ElapsedSeconds is how much of the countdown was used. Only set for
	// TimeAttack.
	ElapsedSeconds int

	// Duration is the wall-clock length of the session.
	Duration time.Duration

	// Reason records why the session ended, e.g. "time-up".
	Reason string
}

// Accuracy returns Right / (Right + Wrong), or 0 when nothing was answered.
func (s Summary) Accuracy() float64 {
	return Score{Right: s.Right, Wrong: s.Wrong}.Accuracy()
}

// String renders the summary text handed to Display.ShowSummary.
func (s Summary) String() string {
	if s.Mode == ModeTimeAttack {
		return fmt.Sprintf("You got %d answer(s) correct in %d seconds!", s.Right, s.ElapsedSeconds)
	}
	return fmt.Sprintf("You got:\n\n%d answer(s) correct.\n%d answer(s) wrong.", s.Right, s.Wrong)
}

// BuildSummary creates a Summary from a session snapshot.
func BuildSummary(state State, cfg Config, now time.Time) Summary {
	sum := Summary{
		Mode:  state.Mode,
		Right: state.Score.Right,
		Wrong: state.Score.Wrong,
	}
	if !state.StartedAt.IsZero() {
		sum.Duration = now.Sub(state.StartedAt)
	}
	if state.Timed() {
		sum.ElapsedSeconds = cfg.TimeAttackSeconds - state.RemainingSeconds
	}
	return sum
}
