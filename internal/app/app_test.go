package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathgame/internal/problemgen"
	"github.com/abhisek/mathgame/internal/router"
	"github.com/abhisek/mathgame/internal/screens/drill"
	"github.com/abhisek/mathgame/internal/screens/home"
	"github.com/abhisek/mathgame/internal/screens/summary"
	"github.com/abhisek/mathgame/internal/screens/welcome"
	"github.com/abhisek/mathgame/internal/session"
)

func testOptions() Options {
	return Options{Drill: drill.Deps{
		NewSource: func() problemgen.OperandSource {
			return problemgen.NewSequenceSource(2, 3)
		},
	}}
}

// send delivers msg and, if the screen answers with a navigation
// request, applies it too. Commands from the new screen's Init are not run.
func send(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

// started returns a model past the welcome splash.
func started(t *testing.T) AppModel {
	t.Helper()
	m := newAppModel(testOptions())
	m = send(m, tea.KeyPressMsg{Code: ' ', Text: " "})
	_, ok := m.router.Active().(*home.HomeScreen)
	require.True(t, ok, "expected home after the splash, got %T", m.router.Active())
	return m
}

func TestApp_OpensOnWelcome(t *testing.T) {
	m := newAppModel(testOptions())
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
	assert.NotNil(t, m.Init(), "the splash animation starts ticking")
}

func TestApp_PlayAndQuitDrill(t *testing.T) {
	m := started(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	d, ok := m.router.Active().(*drill.DrillScreen)
	require.True(t, ok)
	require.NotNil(t, d.Session())

	// Esc is handled by the drill: it ends the game and shows the summary
	// in place of the drill.
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.Equal(t, 2, m.router.Depth())
	s, ok := m.router.Active().(*summary.SummaryScreen)
	require.True(t, ok, "expected summary, got %T", m.router.Active())
	assert.Equal(t, session.ReasonQuit, s.Summary().Reason)
	assert.True(t, d.Session().State().Ended())
}

func TestApp_EscAtHomeIsNoop(t *testing.T) {
	m := started(t)
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestApp_CtrlCQuitsAndEndsSession(t *testing.T) {
	m := started(t)
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	d := m.router.Active().(*drill.DrillScreen)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.True(t, d.Session().State().Ended())
}

func TestApp_View(t *testing.T) {
	m := newAppModel(testOptions())
	assert.Empty(t, m.render(), "no content before the first size message")

	m = send(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small!")

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = send(m, tea.KeyPressMsg{Code: ' ', Text: " "})
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	view := m.render()
	assert.Contains(t, view, "MathGame")
	assert.Contains(t, view, "2 + 3 = ?")
	assert.Contains(t, view, "Submit")
}
