package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = newPalette()

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
	label    lipgloss.Style
	selected lipgloss.Style
	modal    lipgloss.Style
	card     lipgloss.Style
}

func newPalette() *Palette {
	return &Palette{
		title:    NewBold("#7D56F4").MarginBottom(1),
		ok:       NewBold("#04B575"),
		err:      NewBold("#FF5555"),
		warn:     NewStyle("#FFA500"),
		help:     NewEm("#626262"),
		label:    NewBold("#CCCCCC"),
		selected: NewBold("#7D56F4").Reverse(true),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2),
		card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
	}
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
