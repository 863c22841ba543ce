// SPDX-License-Identifier: GPL-3.0-only
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bascanada/termstyle/pkg/term"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#3B82F6") // Blue
	ColorSuccess   = lipgloss.Color("#22C55E") // Green
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorBg        = lipgloss.Color("#1F2937") // Dark background
	ColorText      = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted = lipgloss.Color("#9CA3AF") // Muted text
)

// Capability tier colors
var levelColors = map[term.Level]lipgloss.Color{
	term.LevelNone:      ColorMuted,
	term.LevelBasic:     ColorSecondary,
	term.Level256:       ColorPrimary,
	term.LevelTrueColor: ColorSuccess,
}

// Styles contains all UI styles
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style

	// Catalog list styles
	Entry         lipgloss.Style
	EntrySelected lipgloss.Style
	Name          lipgloss.Style
	NameSelected  lipgloss.Style

	// Status styles
	StatusBar lipgloss.Style
	Escape    lipgloss.Style
	FlagOn    lipgloss.Style
	FlagOff   lipgloss.Style
	HelpBar   lipgloss.Style
}

// DefaultStyles creates the default style set
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle(),

		Header: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorText).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Entry: lipgloss.NewStyle().
			PaddingLeft(2),

		EntrySelected: lipgloss.NewStyle().
			PaddingLeft(0),

		Name: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(16),

		NameSelected: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Width(16),

		StatusBar: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorTextMuted).
			Padding(0, 1),

		Escape: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		FlagOn: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		FlagOff: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		HelpBar: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorMuted).
			Padding(0, 1),
	}
}

// GetLevelStyle returns a badge style for the given capability tier
func GetLevelStyle(level term.Level) lipgloss.Style {
	color, ok := levelColors[level]
	if !ok {
		color = ColorMuted
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true)
}
