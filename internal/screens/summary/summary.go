package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgame/internal/router"
	"github.com/abhisek/mathgame/internal/screen"
	"github.com/abhisek/mathgame/internal/session"
	"github.com/abhisek/mathgame/internal/ui/components"
	"github.com/abhisek/mathgame/internal/ui/layout"
	"github.com/abhisek/mathgame/internal/ui/theme"
)

// DismissedMsg is sent to the screen below once the summary is closed.
type DismissedMsg struct {
	Summary session.Summary
}

// SummaryScreen displays the end-of-session summary.
type SummaryScreen struct {
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

// Summary returns the summary being shown.
func (s *SummaryScreen) Summary() session.Summary {
	return s.summary
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, tea.Sequence(s.dismissCmds()...)
		}
	}
	return s, nil
}

// dismissCmds pops the summary and then tells the screen below how the
// session went.
func (s *SummaryScreen) dismissCmds() []tea.Cmd {
	sum := s.summary
	return []tea.Cmd{
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return DismissedMsg{Summary: sum} },
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline(sum)))
	b.WriteString("\n\n")

	card := components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.Text).Render(sum.String()),
		components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	stats := fmt.Sprintf("Mode: %s        Accuracy: %.0f%%        Played: %d:%02d",
		sum.Mode.Title(), sum.Accuracy()*100, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))

	return b.String()
}

func headline(sum session.Summary) string {
	switch sum.Reason {
	case session.ReasonTimeUp:
		return "Time's up!"
	case session.ReasonMistake:
		return "Game over!"
	case session.ReasonGenerationFailed:
		return "Something went wrong."
	default:
		return "Well played!"
	}
}
