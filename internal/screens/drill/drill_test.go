package drill

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathgame/internal/problemgen"
	"github.com/abhisek/mathgame/internal/router"
	"github.com/abhisek/mathgame/internal/screens/summary"
	"github.com/abhisek/mathgame/internal/session"
)

func mustChoice(t *testing.T, key string) session.Choice {
	t.Helper()
	c, ok := session.ChoiceByKey(key)
	require.True(t, ok, "choice %q", key)
	return c
}

func newDrill(t *testing.T, key string, cfg session.Config, values ...int) *DrillScreen {
	t.Helper()
	src := problemgen.NewSequenceSource(values...)
	d := New(mustChoice(t, key), Deps{
		Config:    cfg,
		NewSource: func() problemgen.OperandSource { return src },
	})
	d.Init()
	return d
}

func typeText(d *DrillScreen, text string) {
	for _, r := range text {
		d.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter(d *DrillScreen) tea.Cmd {
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func summaryFrom(t *testing.T, cmd tea.Cmd) session.Summary {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	ss, ok := msg.Screen.(*summary.SummaryScreen)
	require.True(t, ok, "expected summary screen, got %T", msg.Screen)
	return ss.Summary()
}

func TestDrill_InitShowsFirstQuestion(t *testing.T) {
	d := newDrill(t, "add", session.Config{}, 2, 3)

	require.NotNil(t, d.Session())
	assert.Equal(t, "Addition", d.Title())
	view := d.View(80, 24)
	assert.Contains(t, view, "2 + 3 = ?")
	assert.Contains(t, view, "Answer as many as you can!")
}

func TestDrill_CorrectAnswer(t *testing.T) {
	d := newDrill(t, "add", session.Config{}, 2, 3, 4, 4)

	typeText(d, "5")
	cmd := enter(d)
	assert.Nil(t, cmd)

	st := d.Session().State()
	assert.Equal(t, 1, st.Score.Right)
	assert.Equal(t, 0, st.Score.Wrong)
	assert.Contains(t, d.Status(), "✓ 1")

	view := d.View(80, 24)
	assert.Contains(t, view, session.MsgCorrect)
	assert.Contains(t, view, "4 + 4 = ?")
	assert.Empty(t, d.input.Value(), "input is cleared after submit")
}

func TestDrill_WrongAnswerShowsCorrection(t *testing.T) {
	d := newDrill(t, "mul", session.Config{}, 3, 4)

	typeText(d, "7")
	enter(d)

	assert.Equal(t, 1, d.Session().State().Score.Wrong)
	assert.Contains(t, d.View(80, 24), "Not right, the correct answer was: 12")
}

func TestDrill_EmptyEnterIgnored(t *testing.T) {
	d := newDrill(t, "add", session.Config{}, 2, 3)

	cmd := enter(d)
	assert.Nil(t, cmd)
	assert.Zero(t, d.Session().State().Score.Total())
}

func TestDrill_SurvivalMistakeShowsSummary(t *testing.T) {
	// Operator draw 1 is addition.
	d := newDrill(t, "survival", session.Config{}, 1, 2, 3)

	typeText(d, "9")
	sum := summaryFrom(t, enter(d))

	assert.Equal(t, session.ReasonMistake, sum.Reason)
	assert.Equal(t, 0, sum.Right)
	assert.Equal(t, 1, sum.Wrong)
}

func TestDrill_TimeAttackCountdown(t *testing.T) {
	d := New(mustChoice(t, "timeattack"), Deps{
		Config: session.Config{TimeAttackSeconds: 2},
		NewSource: func() problemgen.OperandSource {
			return problemgen.NewSequenceSource(1, 2, 3)
		},
	})
	require.NotNil(t, d.Init(), "timed drills schedule a tick")

	id := d.Session().ID()

	_, cmd := d.Update(tickMsg{SessionID: id})
	assert.NotNil(t, cmd, "countdown keeps ticking")
	assert.Equal(t, 1, d.Session().State().RemainingSeconds)

	_, cmd = d.Update(tickMsg{SessionID: id})
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, d.Session().State().RemainingSeconds)

	_, cmd = d.Update(tickMsg{SessionID: id})
	sum := summaryFrom(t, cmd)
	assert.Equal(t, session.ReasonTimeUp, sum.Reason)
	assert.Equal(t, 2, sum.ElapsedSeconds)
}

func TestDrill_StaleTickIgnored(t *testing.T) {
	d := newDrill(t, "timeattack", session.Config{TimeAttackSeconds: 5}, 1, 2, 3)

	_, cmd := d.Update(tickMsg{SessionID: "other"})
	assert.Nil(t, cmd)
	assert.Equal(t, 5, d.Session().State().RemainingSeconds)
}

func TestDrill_UntimedHasNoTick(t *testing.T) {
	src := problemgen.NewSequenceSource(2, 3)
	d := New(mustChoice(t, "add"), Deps{
		NewSource: func() problemgen.OperandSource { return src },
	})
	d.Init()

	assert.False(t, d.Session().State().Timed())
	assert.NotContains(t, d.View(80, 24), "Time ")
}

func TestDrill_EscEndsSession(t *testing.T) {
	d := newDrill(t, "add", session.Config{}, 2, 3)
	assert.True(t, d.HandlesEscape())

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	sum := summaryFrom(t, cmd)
	assert.Equal(t, session.ReasonQuit, sum.Reason)
	assert.True(t, d.Session().State().Ended())
}

func TestDrill_KeysIgnoredAfterEnd(t *testing.T) {
	d := newDrill(t, "add", session.Config{}, 2, 3)
	d.Session().End()

	typeText(d, "5")
	assert.Nil(t, enter(d))
	assert.Zero(t, d.Session().State().Score.Total())
}

func TestDrill_CloseEndsSession(t *testing.T) {
	d := newDrill(t, "add", session.Config{}, 2, 3)
	d.Close()

	sum, ok := d.Session().Summary()
	require.True(t, ok)
	assert.Equal(t, session.ReasonQuit, sum.Reason)
}

func TestDrill_StartFailure(t *testing.T) {
	d := newDrill(t, "div", session.Config{MaxDivisionAttempts: 1}, 3, 2)

	assert.Nil(t, d.Session())
	assert.True(t, strings.Contains(d.View(80, 24), "Error"))
	assert.Equal(t, "any key", d.KeyHints()[0].Key)

	_, cmd := d.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestPanel_RecordsLatestText(t *testing.T) {
	p := &panel{}
	p.ShowQuestion("1 + 1 = ?")
	p.ShowQuestion("2 + 2 = ?")
	p.ShowTime("Time: 3")
	p.ShowResult("ok")
	p.ShowInfo("info")
	p.ShowSummary("done")

	assert.Equal(t, "2 + 2 = ?", p.question)
	assert.Equal(t, "Time: 3", p.time)
	assert.Equal(t, "ok", p.result)
	assert.Equal(t, "info", p.info)
	assert.Equal(t, "done", p.summary)
}
