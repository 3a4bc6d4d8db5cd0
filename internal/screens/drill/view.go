package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgame/internal/problemgen"
	"github.com/abhisek/mathgame/internal/ui/components"
	"github.com/abhisek/mathgame/internal/ui/layout"
	"github.com/abhisek/mathgame/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	if d.errMsg != "" {
		return renderError(width, d.errMsg)
	}
	if d.sess == nil {
		return renderLoading(width)
	}
	return d.renderQuestionView(width)
}

// renderQuestionView renders the banner, countdown, question, answer
// field and the result of the previous answer.
func (d *DrillScreen) renderQuestionView(width int) string {
	st := d.sess.State()
	cw := components.ContentWidth(width)

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + st.Mode.Title())

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Range %d-%d", st.Difficulty.Bound.Min, st.Difficulty.Bound.Max))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if d.panel.info != "" {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.ArcadeCyan), width, d.panel.info))
		b.WriteString("\n\n")
	}

	if st.Timed() {
		bar := components.NewCountdownBar(st.RemainingSeconds, d.sess.Config().TimeAttackSeconds, cw)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	b.WriteString(layout.Centered(questionStyle, width, d.panel.question))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle(), width, "Answer: "+d.input.View()))
	b.WriteString("\n\n")

	if d.panel.result != "" {
		style := theme.Incorrect
		if st.LastVerdict == problemgen.VerdictCorrect {
			style = theme.Correct
		}
		b.WriteString(layout.Centered(style, width, d.panel.result))
	}

	return b.String()
}

func renderLoading(width int) string {
	return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "\n\n\n  Getting ready...")
}

func renderError(width int, errMsg string) string {
	return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width, fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
