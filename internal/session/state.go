package session

import (
	"fmt"
	"time"

	"github.com/abhisek/mathgame/internal/difficulty"
	"github.com/abhisek/mathgame/internal/problemgen"
)

// Mode selects the continuation rules of a session.
type Mode int

const (
	ModeStandard   Mode = iota + 1 // Unlimited questions, learner-chosen operator
	ModeTimeAttack                 // Random operators against the countdown
	ModeSurvival                   // Random operators, ends on the first mistake
)

// String returns the mode's flag spelling, e.g. "timeattack".
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeTimeAttack:
		return "timeattack"
	case ModeSurvival:
		return "survival"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Title returns the mode name for headers.
func (m Mode) Title() string {
	switch m {
	case ModeStandard:
		return "Standard"
	case ModeTimeAttack:
		return "Time Attack"
	case ModeSurvival:
		return "Survival"
	default:
		return m.String()
	}
}

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhaseActive Phase = iota + 1 // Accepting answers
	PhaseEnded                   // Terminal; summary emitted
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a snapshot of one play session.
type State struct {
	// ID identifies the session in logs and in scheduled timer messages.
	ID string

	Choice Choice
	Mode   Mode

	Difficulty difficulty.State
	Score      Score

	// Current is the question awaiting an answer. It is left pointing at
	// the last question once the session has ended.
	Current *problemgen.Question

	// RemainingSeconds counts down in TimeAttack. It is zero and unused
	// in other modes; see Timed.
	RemainingSeconds int

	Phase Phase

	// LastVerdict and LastResult describe the most recent submission.
	// Both are zero before the first answer.
	LastVerdict problemgen.Verdict
	LastResult  string

	StartedAt time.Time
}

// Timed reports whether the session runs against the countdown.
func (s State) Timed() bool {
	return s.Mode == ModeTimeAttack
}

// Ended reports whether the session has reached its terminal phase.
func (s State) Ended() bool {
	return s.Phase == PhaseEnded
}
