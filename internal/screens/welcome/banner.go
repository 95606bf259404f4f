package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/ui/theme"
)

const bannerArt = ` ___ _  _   _   _  _ _____ ___  __  __
| _ \ || | /_\ | \| |_   _/ _ \|  \/  |
|  _/ __ |/ _ \| .' | | || (_) | |\/| |
|_| |_||_/_/ \_\_|\_| |_| \___/|_|  |_|
      _    ___ ___   ___ ___ ___
     | |  | __|   \ / __| __| _ \
     | |__| _|| |) | (_ | _||   /
     |____|___|___/ \___|___|_|_\`

const bannerCompact = "P H A N T O M   L E D G E R"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
