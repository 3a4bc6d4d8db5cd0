package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathgame/internal/problemgen"
	"github.com/abhisek/mathgame/internal/router"
	"github.com/abhisek/mathgame/internal/screen"
	"github.com/abhisek/mathgame/internal/screens/drill"
	"github.com/abhisek/mathgame/internal/screens/history"
	"github.com/abhisek/mathgame/internal/screens/summary"
	"github.com/abhisek/mathgame/internal/session"
	"github.com/abhisek/mathgame/internal/ui/components"
	"github.com/abhisek/mathgame/internal/ui/layout"
)

// fullMenuHeight is the terminal height from which bordered buttons fit.
const fullMenuHeight = 48

// ExitLabel is the last menu entry.
const ExitLabel = "EXIT GAME"

// Stats tallies the games played since the program started.
type Stats struct {
	Played int
	Best   int
	Last   *session.Summary
	Games  []session.Summary
}

// Record adds a finished game.
func (s *Stats) Record(sum session.Summary) {
	s.Played++
	if sum.Right > s.Best {
		s.Best = sum.Right
	}
	s.Last = &sum
	s.Games = append(s.Games, sum)
}

// HomeScreen is the mode-selection menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	menuTags   []string
	stats      Stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a HomeScreen whose entries start drills with deps.
func New(deps drill.Deps) *HomeScreen {
	choices := session.Choices()

	items := make([]components.MenuItem, 0, len(choices)+1)
	labels := make([]string, 0, len(choices)+1)
	tags := make([]string, 0, len(choices)+1)
	for _, c := range choices {
		label := strings.ToUpper(c.Label)
		labels = append(labels, label)
		tags = append(tags, modeTag(c, deps.Config))
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(c, deps)}
			}
		}})
	}
	labels = append(labels, ExitLabel)
	tags = append(tags, "")
	items = append(items, components.MenuItem{Label: ExitLabel, Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: labels,
		menuTags:   tags,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(summary.DismissedMsg); ok {
		h.stats.Record(msg.Summary)
		return h, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok && msg.String() == "h" {
		games := h.stats.Games
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(games)}
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area below the header and above the footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, width, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.Mascot(), mascotCaption(h.stats), cw))
	}

	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	if termHeight >= fullMenuHeight {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menuTags, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menuTags, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Play"},
		{Key: "h", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Status shows the best score of this run in the header.
func (h *HomeScreen) Status() string {
	if h.stats.Played == 0 {
		return ""
	}
	return fmt.Sprintf("BEST %d  ", h.stats.Best)
}

// Stats returns the tally of finished games.
func (h *HomeScreen) Stats() Stats {
	return h.stats
}

// modeTag is the short rule shown next to a menu entry: the operator for
// single-operator drills, the countdown for TimeAttack, one life for Survival.
func modeTag(c session.Choice, cfg session.Config) string {
	switch {
	case c.Mode == session.ModeTimeAttack:
		secs := cfg.TimeAttackSeconds
		if secs <= 0 {
			secs = session.DefaultTimeAttackSeconds
		}
		return fmt.Sprintf("%ds", secs)
	case c.Mode == session.ModeSurvival:
		return "1 LIFE"
	case c.Random:
		ops := problemgen.Operators()
		syms := make([]string, len(ops))
		for i, op := range ops {
			syms[i] = op.Symbol()
		}
		return strings.Join(syms, "")
	default:
		return c.Operator.Symbol()
	}
}

// Mascot picks the mascot mood from the last finished game.
func (h *HomeScreen) Mascot() MascotVariant {
	last := h.stats.Last
	switch {
	case last == nil:
		return MascotIdle
	case last.Right > 0 && last.Accuracy() >= 0.8:
		return MascotCelebrating
	case last.Wrong > last.Right:
		return MascotAlert
	default:
		return MascotIdle
	}
}
