package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/favsongs/internal/shared"
)

var defaultPalette = NewPalette("#7D56F4", "#04B575", "#FF0000", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	selected lipgloss.Style
	err      lipgloss.Style
	muted    lipgloss.Style
}

func NewPalette(t, s, e, m string) *Palette {
	return &Palette{
		title:    NewBold(t),
		selected: NewBold(s),
		err:      NewBold(e),
		muted:    NewEm(m),
	}
}

// PaletteFromConfig builds a [Palette] from configured colors, falling back to the defaults for empty values.
func PaletteFromConfig(c shared.ColorsConfig) *Palette {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return NewPalette(
		pick(c.Title, "#7D56F4"),
		pick(c.Selected, "#04B575"),
		pick(c.Error, "#FF0000"),
		pick(c.Muted, "#626262"),
	)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
