package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathgame/internal/difficulty"
	"github.com/abhisek/mathgame/internal/problemgen"
)

// ErrInvalidChoice is returned by Start for a malformed Choice.
var ErrInvalidChoice = errors.New("invalid session choice")

// Messages shown to the learner.
const (
	MsgCorrect          = "That is correct, well done!"
	MsgIncorrectFormat  = "Not right, the correct answer was: %d"
	MsgMalformed        = "Not right, enter a whole number!"
	MsgGenerationFailed = "Could not generate a question."
)

// End reasons recorded in the summary and logs.
const (
	ReasonTimeUp           = "time-up"
	ReasonMistake          = "mistake"
	ReasonQuit             = "quit"
	ReasonGenerationFailed = "generation-failed"
)

// Options configures Start. Zero fields fall back to defaults.
type Options struct {
	Config  Config
	Source  problemgen.OperandSource
	Display Display
	Logger  *slog.Logger

	// Now returns the current time; used for summary durations.
	Now func() time.Time
}

// Session owns the state of one play session. All entry points are
// serialized, so answers and timer ticks may arrive from different
// goroutines.
type Session struct {
	mu      sync.Mutex
	id      string
	cfg     Config
	gen     *problemgen.Generator
	display Display
	logger  *slog.Logger
	now     func() time.Time

	state   State
	summary Summary
	done    chan struct{}
}

// Start creates a session for choice and poses its first question.
// A failure to generate the first question is returned as an error and
// nothing is shown.
func Start(choice Choice, opts Options) (*Session, error) {
	if !choice.valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidChoice, choice)
	}

	cfg := opts.Config
	if cfg.Difficulty == (difficulty.Config{}) {
		cfg.Difficulty = difficulty.DefaultConfig()
	}
	if cfg.TimeAttackSeconds == 0 {
		cfg.TimeAttackSeconds = DefaultTimeAttackSeconds
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	src := opts.Source
	if src == nil {
		src = problemgen.NewTimeSeededSource()
	}
	display := opts.Display
	if display == nil {
		display = NopDisplay{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	genCfg := problemgen.DefaultConfig()
	if cfg.MaxDivisionAttempts > 0 {
		genCfg.MaxDivisionAttempts = cfg.MaxDivisionAttempts
	}

	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("session_id", id, "mode", choice.Mode.String(), "choice", choice.Key)

	s := &Session{
		id:      id,
		cfg:     cfg,
		gen:     problemgen.New(src, genCfg),
		display: display,
		logger:  logger,
		now:     now,
		done:    make(chan struct{}),
		state: State{
			ID:         id,
			Choice:     choice,
			Mode:       choice.Mode,
			Difficulty: cfg.Difficulty.Initial(),
			Phase:      PhaseActive,
			StartedAt:  now(),
		},
	}
	if s.state.Timed() {
		s.state.RemainingSeconds = cfg.TimeAttackSeconds
	}

	q, err := choice.generate(s.gen, s.state.Difficulty.Bound)
	if err != nil {
		logger.Error("first question generation failed", "error", err)
		return nil, fmt.Errorf("generate first question: %w", err)
	}
	s.state.Current = q

	logger.Info("session started", "bound", s.state.Difficulty.Bound.String())

	display.ShowInfo(s.infoText())
	if s.state.Timed() {
		display.ShowTime(timeText(s.state.RemainingSeconds))
	}
	display.ShowQuestion(q.Text)
	return s, nil
}

// Submit grades raw against the current question, updates score and
// difficulty, and either poses the next question or ends the session.
// Answers submitted after the session ended are ignored.
func (s *Session) Submit(raw string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseActive {
		return s.state
	}

	q := s.state.Current
	verdict := problemgen.Grade(raw, q)
	correct := verdict.Correct()

	s.state.Score.Record(correct)
	s.state.Difficulty = s.cfg.Difficulty.Apply(s.state.Difficulty, correct)
	s.state.LastVerdict = verdict
	s.state.LastResult = resultText(verdict, q.Answer)

	s.logger.Debug("answer graded",
		"question", q.Text,
		"verdict", verdict.String(),
		"right", s.state.Score.Right,
		"wrong", s.state.Score.Wrong,
		"bound_max", s.state.Difficulty.Bound.Max,
	)

	s.display.ShowResult(s.state.LastResult)

	if s.state.Mode == ModeSurvival && !correct {
		s.endLocked(ReasonMistake)
		return s.state
	}

	next, err := s.state.Choice.generate(s.gen, s.state.Difficulty.Bound)
	if err != nil {
		s.logger.Error("question generation failed", "error", err)
		s.display.ShowInfo(MsgGenerationFailed)
		s.endLocked(ReasonGenerationFailed)
		return s.state
	}
	s.state.Current = next
	s.display.ShowQuestion(next.Text)
	return s.state
}

// Tick advances the TimeAttack countdown by one step. At zero the
// session ends, so a countdown from N ends on the (N+1)th tick. Ticks
// for untimed or ended sessions are no-ops.
func (s *Session) Tick() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseActive || !s.state.Timed() {
		return s.state
	}
	if s.state.RemainingSeconds <= 0 {
		s.endLocked(ReasonTimeUp)
		return s.state
	}
	s.state.RemainingSeconds--
	s.display.ShowTime(timeText(s.state.RemainingSeconds))
	return s.state
}

// End ends the session if it is still active and returns the summary
// text. It is safe to call more than once; the summary is only shown
// the first time.
func (s *Session) End() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase == PhaseActive {
		s.endLocked(ReasonQuit)
	}
	return s.summary.String()
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Summary returns the end-of-session summary once the session has ended.
func (s *Session) Summary() (Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary, s.state.Phase == PhaseEnded
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns the effective configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) endLocked(reason string) {
	s.state.Phase = PhaseEnded
	s.summary = BuildSummary(s.state, s.cfg, s.now())
	s.summary.Reason = reason

	s.logger.Info("session ended",
		"reason", reason,
		"right", s.summary.Right,
		"wrong", s.summary.Wrong,
		"duration", s.summary.Duration,
	)

	s.display.ShowSummary(s.summary.String())
	close(s.done)
}

func (s *Session) infoText() string {
	switch s.state.Mode {
	case ModeTimeAttack:
		return fmt.Sprintf("Random sums in %d seconds!", s.cfg.TimeAttackSeconds)
	case ModeSurvival:
		return "Get one wrong, you lose!"
	default:
		return "Answer as many as you can!"
	}
}

func resultText(v problemgen.Verdict, answer int) string {
	switch v {
	case problemgen.VerdictCorrect:
		return MsgCorrect
	case problemgen.VerdictMalformed:
		return MsgMalformed
	default:
		return fmt.Sprintf(MsgIncorrectFormat, answer)
	}
}

func timeText(remaining int) string {
	return fmt.Sprintf("Time: %d", remaining)
}
