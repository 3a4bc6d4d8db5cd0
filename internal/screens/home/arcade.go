package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgame/internal/screens/welcome"
	"github.com/abhisek/mathgame/internal/ui/components"
	"github.com/abhisek/mathgame/internal/ui/theme"
)

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw, width int, compact bool) string {
	if compact {
		width = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(width-6, theme.ArcadeYellow))
}

// renderStatsBar renders this run's tallies in a bordered box matching
// content width.
func renderStatsBar(stats Stats, cw int, compact bool) string {
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	playedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	lastStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var text string
	if compact {
		text = fmt.Sprintf("%s %s %s",
			bestStyle.Render(fmt.Sprintf("★%d", stats.Best)),
			playedStyle.Render(fmt.Sprintf("▶%d", stats.Played)),
			lastText(stats, true, lastStyle, dimStyle),
		)
	} else {
		text = fmt.Sprintf("%s  %s  %s",
			bestStyle.Render(fmt.Sprintf("★ BEST %d", stats.Best)),
			playedStyle.Render(fmt.Sprintf("▶ %d PLAYED", stats.Played)),
			lastText(stats, false, lastStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

func lastText(stats Stats, compact bool, active, dim lipgloss.Style) string {
	if stats.Last == nil {
		if compact {
			return dim.Render("⚡-")
		}
		return dim.Render("⚡ NO GAMES YET")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d/%d", stats.Last.Right, stats.Last.Right+stats.Last.Wrong))
	}
	return active.Render(fmt.Sprintf("⚡ LAST %d/%d", stats.Last.Right, stats.Last.Right+stats.Last.Wrong))
}

// buttonWidth is the fixed width for menu buttons; it fits the longest
// label plus its tag.
const buttonWidth = 30

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items, tags []string, selected int, cw int) string {
	buttons := make([]string, 0, len(items))
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, tags[i], i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items, tags []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		text := fmt.Sprintf("%-15s %-6s", label, tags[i])
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + text + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + text)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot and its caption centered at content width.
func renderMascotBox(variant MascotVariant, caption string, cw int) string {
	text := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(caption)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant) + "\n" + text)
}

// mascotCaption is what the mascot says about the last game.
func mascotCaption(stats Stats) string {
	last := stats.Last
	switch {
	case last == nil:
		return "Pick a game!"
	case last.Right > 0 && last.Accuracy() >= 0.8:
		return fmt.Sprintf("%d right! Nice work!", last.Right)
	case last.Wrong > last.Right:
		return "Shake it off and try again!"
	default:
		return fmt.Sprintf("%d right last time.", last.Right)
	}
}
