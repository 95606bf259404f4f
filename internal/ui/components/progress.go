package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	// Suffix is drawn after the bar. Empty shows the percentage.
	Suffix string
	Width  int
	// Fill overrides the filled color. Nil uses the theme default.
	Fill color.Color
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := p.Suffix
	if suffix == "" {
		suffix = fmt.Sprintf("%d%%", int(p.Percent*100))
	}
	suffix = "  " + suffix

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	fill := theme.ProgressFilled
	if p.Fill != nil {
		fill = fill.Background(p.Fill)
	}

	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)

	return result
}
