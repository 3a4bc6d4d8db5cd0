package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathgame/internal/problemgen"
)

func startSession(t *testing.T, key string, src problemgen.OperandSource) (*Session, *Recorder) {
	t.Helper()
	return startWith(t, key, Options{Source: src})
}

func startWith(t *testing.T, key string, opts Options) (*Session, *Recorder) {
	t.Helper()
	c, ok := ChoiceByKey(key)
	require.True(t, ok, "unknown choice %q", key)
	rec := &Recorder{}
	opts.Display = rec
	s, err := Start(c, opts)
	require.NoError(t, err)
	return s, rec
}

func TestStart_StandardAddition(t *testing.T) {
	s, rec := startSession(t, "add", problemgen.NewSequenceSource(2, 3))

	st := s.State()
	assert.Equal(t, PhaseActive, st.Phase)
	assert.Equal(t, ModeStandard, st.Mode)
	assert.Equal(t, "2 + 3 = ?", st.Current.Text)
	assert.Equal(t, problemgen.Bound{Min: 1, Max: 4}, st.Difficulty.Bound)
	assert.False(t, st.Timed())
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, st.ID, s.ID())

	assert.Equal(t, []Event{
		{Kind: EventInfo, Text: "Answer as many as you can!"},
		{Kind: EventQuestion, Text: "2 + 3 = ?"},
	}, rec.Events())
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	s, rec := startSession(t, "add", problemgen.NewSequenceSource(2, 3))

	st := s.Submit("5")

	assert.Equal(t, 1, st.Score.Right)
	assert.Equal(t, 0, st.Score.Wrong)
	assert.Equal(t, 1, st.Difficulty.ConsecutiveRight)
	assert.Equal(t, 4, st.Difficulty.Bound.Max)
	assert.Equal(t, problemgen.VerdictCorrect, st.LastVerdict)
	assert.Equal(t, PhaseActive, st.Phase)

	result, _ := rec.Last(EventResult)
	assert.Equal(t, "That is correct, well done!", result)
	assert.Equal(t, 2, rec.Count(EventQuestion))
}

func TestSubmit_MalformedAnswer(t *testing.T) {
	s, rec := startSession(t, "add", problemgen.NewSequenceSource(2, 3))

	st := s.Submit("abc")

	assert.Equal(t, 0, st.Score.Right)
	assert.Equal(t, 1, st.Score.Wrong)
	assert.Equal(t, 1, st.Difficulty.ConsecutiveWrong)
	assert.Equal(t, problemgen.VerdictMalformed, st.LastVerdict)
	assert.Equal(t, PhaseActive, st.Phase, "malformed input must not stall the session")

	result, _ := rec.Last(EventResult)
	assert.Equal(t, "Not right, enter a whole number!", result)
	assert.Equal(t, 2, rec.Count(EventQuestion))
}

func TestSubmit_WrongAnswerShowsCorrection(t *testing.T) {
	s, rec := startSession(t, "add", problemgen.NewSequenceSource(2, 3))

	s.Submit("4")

	result, _ := rec.Last(EventResult)
	assert.Equal(t, "Not right, the correct answer was: 5", result)
}

func TestSubmit_ThreeCorrectWidensBound(t *testing.T) {
	src := problemgen.NewSequenceSource(2, 3, 1, 1, 1, 2)
	s, _ := startSession(t, "add", src)

	s.Submit("5")
	s.Submit("2")
	st := s.Submit("3")

	assert.Equal(t, 5, st.Difficulty.Bound.Max)
	assert.Equal(t, 0, st.Difficulty.ConsecutiveRight)
	assert.Equal(t, problemgen.Bound{Min: 1, Max: 5}, st.Current.Bound)

	last, ok := src.LastBound()
	require.True(t, ok)
	assert.Equal(t, problemgen.Bound{Min: 1, Max: 5}, last, "fourth question drawn from [1,5]")
}

func TestSubmit_SameRuleForEveryOperator(t *testing.T) {
	for _, key := range []string{"add", "sub", "mul", "div", "random"} {
		t.Run(key, func(t *testing.T) {
			s, _ := startSession(t, key, problemgen.NewRandSource(11))
			for i := 0; i < 3; i++ {
				s.Submit(answerOf(s))
			}
			assert.Equal(t, 5, s.State().Difficulty.Bound.Max)
		})
	}
}

func TestSurvival_FirstMistakeEnds(t *testing.T) {
	// Operator draw (1 = addition) precedes the operands.
	src := problemgen.NewSequenceSource(1, 2, 3)
	s, rec := startSession(t, "survival", src)
	require.Equal(t, "2 + 3 = ?", s.State().Current.Text)

	st := s.Submit("4")

	assert.Equal(t, PhaseEnded, st.Phase)
	assert.Equal(t, 0, st.Score.Right)
	assert.Equal(t, 1, st.Score.Wrong)
	assert.Equal(t, 1, rec.Count(EventQuestion), "no question after the mistake")
	assert.Len(t, src.Bounds, 3, "generator not consulted again")

	summary, _ := rec.Last(EventSummary)
	assert.Equal(t, "You got:\n\n0 answer(s) correct.\n1 answer(s) wrong.", summary)

	sum, ended := s.Summary()
	assert.True(t, ended)
	assert.Equal(t, ReasonMistake, sum.Reason)

	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed")
	}
}

func TestSurvival_MalformedEnds(t *testing.T) {
	s, _ := startSession(t, "survival", problemgen.NewSequenceSource(1, 2, 3))
	assert.True(t, s.Submit("two").Ended())
}

func TestSurvival_CorrectContinues(t *testing.T) {
	s, rec := startSession(t, "survival", problemgen.NewSequenceSource(1, 2, 3))

	st := s.Submit("5")

	assert.Equal(t, PhaseActive, st.Phase)
	assert.Equal(t, 2, rec.Count(EventQuestion))
	assert.Equal(t, "Get one wrong, you lose!", rec.Events()[0].Text)
}

func TestTimeAttack_SixteenTicksEnd(t *testing.T) {
	s, rec := startSession(t, "timeattack", problemgen.NewSequenceSource())

	st := s.State()
	require.True(t, st.Timed())
	require.Equal(t, 15, st.RemainingSeconds)
	assert.Equal(t, []Event{
		{Kind: EventInfo, Text: "Random sums in 15 seconds!"},
		{Kind: EventTime, Text: "Time: 15"},
		{Kind: EventQuestion, Text: "1 + 1 = ?"},
	}, rec.Events())

	for i := 1; i <= 15; i++ {
		st = s.Tick()
		require.Equal(t, PhaseActive, st.Phase, "tick %d", i)
		require.Equal(t, 15-i, st.RemainingSeconds)
	}
	last, _ := rec.Last(EventTime)
	assert.Equal(t, "Time: 0", last)

	st = s.Tick()
	assert.Equal(t, PhaseEnded, st.Phase)

	summary, _ := rec.Last(EventSummary)
	assert.Equal(t, "You got 0 answer(s) correct in 15 seconds!", summary)

	sum, _ := s.Summary()
	assert.Equal(t, ReasonTimeUp, sum.Reason)
	assert.Equal(t, 15, sum.ElapsedSeconds)
}

func TestTimeAttack_AnswersDoNotAffectTimer(t *testing.T) {
	s, _ := startSession(t, "timeattack", problemgen.NewSequenceSource())

	ticks := 0
	for !s.State().Ended() {
		switch ticks % 3 {
		case 0:
			s.Submit("2")
		case 1:
			s.Submit("7")
		}
		s.Tick()
		ticks++
		require.LessOrEqual(t, ticks, 16)
	}

	assert.Equal(t, 16, ticks)
	st := s.State()
	assert.Equal(t, 6, st.Score.Right)
	assert.Equal(t, 5, st.Score.Wrong)
}

func TestTimeAttack_LateTickIgnored(t *testing.T) {
	s, rec := startSession(t, "timeattack", problemgen.NewSequenceSource())
	for i := 0; i < 16; i++ {
		s.Tick()
	}
	timeEvents := rec.Count(EventTime)

	s.Tick()
	st := s.Tick()

	assert.Equal(t, PhaseEnded, st.Phase)
	assert.Equal(t, timeEvents, rec.Count(EventTime))
	assert.Equal(t, 1, rec.Count(EventSummary))
}

func TestTimeAttack_EndEarlyReportsElapsed(t *testing.T) {
	s, _ := startSession(t, "timeattack", problemgen.NewSequenceSource())
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	s.Submit("2")

	assert.Equal(t, "You got 1 answer(s) correct in 5 seconds!", s.End())
}

func TestTick_UntimedIsNoop(t *testing.T) {
	s, rec := startSession(t, "add", problemgen.NewSequenceSource(2, 3))

	st := s.Tick()

	assert.Equal(t, PhaseActive, st.Phase)
	assert.Equal(t, 0, st.RemainingSeconds)
	assert.Equal(t, 0, rec.Count(EventTime))
}

func TestEnd_Idempotent(t *testing.T) {
	s, rec := startSession(t, "add", problemgen.NewSequenceSource(2, 3))
	s.Submit("5")

	first := s.End()
	second := s.End()

	assert.Equal(t, "You got:\n\n1 answer(s) correct.\n0 answer(s) wrong.", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, rec.Count(EventSummary))

	sum, _ := s.Summary()
	assert.Equal(t, ReasonQuit, sum.Reason)
}

func TestSubmit_AfterEndIgnored(t *testing.T) {
	s, rec := startSession(t, "add", problemgen.NewSequenceSource(2, 3))
	s.End()
	events := len(rec.Events())

	st := s.Submit("5")

	assert.Equal(t, 0, st.Score.Total())
	assert.Len(t, rec.Events(), events)
}

func TestSubmit_GenerationFailureEndsGracefully(t *testing.T) {
	src := problemgen.NewSequenceSource(4, 2, 3, 2, 3, 2, 3, 2)
	s, rec := startWith(t, "div", Options{
		Source: src,
		Config: Config{MaxDivisionAttempts: 3},
	})
	require.Equal(t, "4 / 2 = ?", s.State().Current.Text)

	st := s.Submit("2")

	assert.Equal(t, PhaseEnded, st.Phase)
	assert.Equal(t, 1, st.Score.Right)
	info, _ := rec.Last(EventInfo)
	assert.Equal(t, MsgGenerationFailed, info)
	assert.Equal(t, 1, rec.Count(EventSummary))

	sum, _ := s.Summary()
	assert.Equal(t, ReasonGenerationFailed, sum.Reason)
}

func TestStart_GenerationFailureReturnsError(t *testing.T) {
	c, _ := ChoiceByKey("div")
	rec := &Recorder{}

	_, err := Start(c, Options{
		Source:  problemgen.NewSequenceSource(3, 2, 3, 2, 3, 2),
		Display: rec,
		Config:  Config{MaxDivisionAttempts: 3},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, problemgen.ErrGenerationExhausted))
	assert.Empty(t, rec.Events())
}

func TestStart_Rejects(t *testing.T) {
	_, err := Start(Choice{}, Options{})
	assert.ErrorIs(t, err, ErrInvalidChoice)

	_, err = Start(Choice{Mode: ModeSurvival, Operator: problemgen.OpAdd}, Options{})
	assert.ErrorIs(t, err, ErrInvalidChoice)

	c, _ := ChoiceByKey("add")
	_, err = Start(c, Options{Config: Config{TimeAttackSeconds: -1}})
	assert.Error(t, err)
}

func TestSummary_DurationUsesClock(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := func() time.Time { return now }

	s, _ := startWith(t, "add", Options{Source: problemgen.NewSequenceSource(2, 3), Now: clock})
	now = now.Add(42 * time.Second)
	s.End()

	sum, ok := s.Summary()
	require.True(t, ok)
	assert.Equal(t, 42*time.Second, sum.Duration)
}

func TestSession_LogsWithSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, _ := startWith(t, "add", Options{Source: problemgen.NewSequenceSource(2, 3), Logger: logger})
	s.Submit("5")
	s.End()

	out := buf.String()
	assert.Contains(t, out, `"session_id":"`+s.ID()+`"`)
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "answer graded")
	assert.Contains(t, out, "session ended")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestRunTimer_ConcurrentSubmitsAndTicks(t *testing.T) {
	s, rec := startSession(t, "timeattack", problemgen.NewRandSource(5))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, RunTimer(ctx, s, time.Millisecond))
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-s.Done():
				return
			default:
				s.Submit(answerOf(s))
			}
		}
	}()

	require.Eventually(t, func() bool { return s.State().Ended() }, 5*time.Second, 5*time.Millisecond)
	wg.Wait()

	assert.Equal(t, 1, rec.Count(EventSummary))
	assert.Equal(t, 15, rec.Count(EventTime)-1, "initial time plus 15 decrements")
}

func TestRunTimer_ContextCancel(t *testing.T) {
	s, _ := startSession(t, "timeattack", problemgen.NewSequenceSource())
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- RunTimer(ctx, s, time.Hour) }()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("RunTimer did not return after cancel")
	}
	assert.Equal(t, PhaseActive, s.State().Phase)
}

func TestRunTimer_StopsWhenSessionEnds(t *testing.T) {
	s, _ := startSession(t, "timeattack", problemgen.NewSequenceSource())

	errCh := make(chan error, 1)
	go func() { errCh <- RunTimer(context.Background(), s, time.Hour) }()
	s.End()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RunTimer did not return after End")
	}
}

func TestRunTimer_UntimedReturnsImmediately(t *testing.T) {
	s, _ := startSession(t, "add", problemgen.NewSequenceSource(2, 3))
	assert.NoError(t, RunTimer(context.Background(), s, time.Hour))
}

// answerOf returns the correct answer to the current question.
func answerOf(s *Session) string {
	q := s.State().Current
	if q == nil {
		return ""
	}
	return strconv.Itoa(q.Answer)
}
