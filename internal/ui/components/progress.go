package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgame/internal/ui/theme"
)

// LowThreshold is the fraction below which a bar switches to the warning
// colour.
const LowThreshold = 0.25

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewCountdownBar creates a bar showing how much of a countdown is left.
func NewCountdownBar(remaining, total, width int) ProgressBar {
	pct := 0.0
	if total > 0 {
		pct = float64(remaining) / float64(total)
	}
	return ProgressBar{
		Label:   fmt.Sprintf("Time %2ds", remaining),
		Percent: pct,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	barWidth := p.Width - lipgloss.Width(result)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := theme.ProgressFilled
	if p.Percent < LowThreshold {
		fill = theme.ProgressLow
	}

	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	return result
}
