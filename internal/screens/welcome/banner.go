package welcome

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// BannerArt is the block-letter MATHGAME title, split over two rows.
const BannerArt = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝
  ██████╗  █████╗ ███╗   ███╗███████╗
 ██╔════╝ ██╔══██╗████╗ ████║██╔════╝
 ██║  ███╗███████║██╔████╔██║█████╗
 ██║   ██║██╔══██║██║╚██╔╝██║██╔══╝
 ╚██████╔╝██║  ██║██║ ╚═╝ ██║███████╗
  ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝`

// BannerCompact is the one-line fallback for narrow or short terminals.
const BannerCompact = "M · A · T · H · G · A · M · E"

// BannerWidth is the number of columns BannerArt needs.
var BannerWidth = lipgloss.Width(BannerArt)

// RenderBanner returns the banner in fg, falling back to the compact form
// when width cannot hold the block letters.
func RenderBanner(width int, fg color.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Bold(true)

	if width < BannerWidth+2 {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt)
}
