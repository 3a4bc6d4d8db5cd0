package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgame/internal/router"
	"github.com/abhisek/mathgame/internal/screen"
	"github.com/abhisek/mathgame/internal/session"
	"github.com/abhisek/mathgame/internal/ui/layout"
	"github.com/abhisek/mathgame/internal/ui/theme"
)

// HistoryScreen lists the games finished since the program started,
// newest first.
type HistoryScreen struct {
	games    []session.Summary
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for games given in the order they were played.
func New(games []session.Summary) *HistoryScreen {
	newest := make([]session.Summary, len(games))
	for i, g := range games {
		newest[len(games)-1-i] = g
	}
	return &HistoryScreen{
		games:    newest,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
		case "enter":
			if len(s.games) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.games) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Pick a mode and play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.games {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+Line(len(s.games)-i, g))))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render(indent(g.String(), "    "))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Line formats one game for the list.
func Line(n int, g session.Summary) string {
	mins := int(g.Duration.Minutes())
	secs := int(g.Duration.Seconds()) % 60
	return fmt.Sprintf("#%d  %-11s  ✓ %d  ✗ %d  %3.0f%%  %d:%02d  %s",
		n, g.Mode.Title(), g.Right, g.Wrong, g.Accuracy()*100, mins, secs, g.Reason)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
