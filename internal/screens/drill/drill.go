package drill

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathgame/internal/problemgen"
	"github.com/abhisek/mathgame/internal/router"
	"github.com/abhisek/mathgame/internal/screen"
	"github.com/abhisek/mathgame/internal/screens/summary"
	"github.com/abhisek/mathgame/internal/session"
	"github.com/abhisek/mathgame/internal/ui/components"
	"github.com/abhisek/mathgame/internal/ui/layout"
)

// Deps are the collaborators a drill needs. NewSource is called once per
// session; nil means a time-seeded source.
type Deps struct {
	Config    session.Config
	Logger    *slog.Logger
	NewSource func() problemgen.OperandSource
}

// DrillScreen runs one session for a menu choice.
type DrillScreen struct {
	choice session.Choice
	deps   Deps

	sess   *session.Session
	panel  *panel
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)
var _ screen.EscapeHandler = (*DrillScreen)(nil)
var _ screen.Closer = (*DrillScreen)(nil)

// New creates a DrillScreen. The session starts when the screen is pushed.
func New(choice session.Choice, deps Deps) *DrillScreen {
	return &DrillScreen{
		choice: choice,
		deps:   deps,
		panel:  &panel{},
		input:  components.NewTextInput("Type your answer...", 12),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	var src problemgen.OperandSource
	if d.deps.NewSource != nil {
		src = d.deps.NewSource()
	}

	s, err := session.Start(d.choice, session.Options{
		Config:  d.deps.Config,
		Source:  src,
		Display: d.panel,
		Logger:  d.deps.Logger,
	})
	if err != nil {
		d.errMsg = err.Error()
		return nil
	}
	d.sess = s

	cmds := []tea.Cmd{d.input.Init()}
	if s.State().Timed() {
		cmds = append(cmds, tickCmd(s.ID(), s.Config().TickInterval))
	}
	return tea.Batch(cmds...)
}

func (d *DrillScreen) Title() string {
	return d.choice.Label
}

func (d *DrillScreen) HandlesEscape() bool {
	return true
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "End game"},
	}
}

// Status shows the running score and difficulty level in the header.
func (d *DrillScreen) Status() string {
	if d.sess == nil {
		return ""
	}
	st := d.sess.State()
	level := d.sess.Config().Difficulty.Level(st.Difficulty)
	return fmt.Sprintf("✓ %d  ✗ %d  LV %d  ", st.Score.Right, st.Score.Wrong, level)
}

// Close ends a session that is still running when the screen is discarded.
func (d *DrillScreen) Close() {
	if d.sess != nil {
		d.sess.End()
	}
}

// Session returns the running session, or nil if it failed to start.
func (d *DrillScreen) Session() *session.Session {
	return d.sess
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return d.handleTick(msg)
	case tea.KeyPressMsg:
		return d.handleKey(msg)
	}

	if d.sess != nil && !d.sess.State().Ended() {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DrillScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if d.sess == nil || msg.SessionID != d.sess.ID() {
		return d, nil
	}
	if d.sess.State().Ended() {
		return d, nil
	}

	st := d.sess.Tick()
	if st.Ended() {
		return d, d.finish()
	}
	return d, tickCmd(d.sess.ID(), d.sess.Config().TickInterval)
}

func (d *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if d.errMsg != "" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if d.sess == nil || d.sess.State().Ended() {
		return d, nil
	}

	switch msg.String() {
	case "esc":
		d.sess.End()
		return d, d.finish()
	case "enter":
		answer := d.input.Value()
		if answer == "" {
			return d, nil
		}
		st := d.sess.Submit(answer)
		d.input.Mark(st.LastVerdict.Correct())
		if st.Ended() {
			return d, d.finish()
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// finish swaps the drill for its summary screen.
func (d *DrillScreen) finish() tea.Cmd {
	sum, ok := d.sess.Summary()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func tickCmd(sessionID string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{SessionID: sessionID, At: t}
	})
}
