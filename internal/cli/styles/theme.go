// Package styles provides the lipgloss styles used by the rpmview CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a Theme is built from.
type Palette struct {
	Base    lipgloss.Color
	Raised  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color
}

// DarkPalette is the default palette.
var DarkPalette = Palette{
	Base:    lipgloss.Color("#0a0a0b"),
	Raised:  lipgloss.Color("#2d2d2d"),
	Text:    lipgloss.Color("#ffffff"),
	Muted:   lipgloss.Color("#909090"),
	Accent:  lipgloss.Color("#a78bfa"),
	Border:  lipgloss.Color("#333333"),
	Error:   lipgloss.Color("#ef4444"),
	Warning: lipgloss.Color("#f59e0b"),
	Success: lipgloss.Color("#4ade80"),
}

// Theme holds the styles rendered by commands and the picker.
type Theme struct {
	Palette

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Box lipgloss.Style
}

// NewTheme returns a theme built from DarkPalette.
func NewTheme() *Theme {
	return NewThemeFromPalette(DarkPalette)
}

// NewThemeFromPalette builds every style from p.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Theme{
		Palette: p,

		Title:        fg(p.Text).Bold(true),
		Normal:       fg(p.Text),
		Subtle:       fg(p.Muted),
		Highlight:    fg(p.Accent).Bold(true),
		ErrorStyle:   fg(p.Error).Bold(true),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Success),

		ListItem:         fg(p.Text).PaddingLeft(2),
		ListItemSelected: fg(p.Accent).Background(p.Raised).PaddingLeft(2).Bold(true),

		Badge:      fg(p.Base).Background(p.Accent).Padding(0, 1),
		BadgeMuted: fg(p.Text).Background(p.Raised).Padding(0, 1),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
	}
}
