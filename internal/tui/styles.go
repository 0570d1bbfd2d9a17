// Package tui provides the interactive menu browser for hydramenu.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/chrisbarrett/hydramenu/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorKey         lipgloss.Color
	colorWarning     lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Context list styles
	ItemStyle         lipgloss.Style
	ItemSelectedStyle lipgloss.Style
	ItemCountStyle    lipgloss.Style

	// Menu document styles
	MenuStyle lipgloss.Style
	KeyStyle  lipgloss.Style

	// Filter input
	FilterStyle lipgloss.Style

	// Status message
	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}

	s.colorBg = theme.Color(t.Bg)
	s.colorBgHighlight = theme.Color(t.BgHighlight)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)
	s.colorKey = theme.Color(t.Key)
	s.colorWarning = theme.Color(t.Warning)

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.ItemStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.ItemSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Bold(true)
	s.ItemCountStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.MenuStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)
	s.KeyStyle = lipgloss.NewStyle().
		Foreground(s.colorKey).
		Bold(true)

	s.FilterStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)
	s.WarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.AppStyle = lipgloss.NewStyle().
		Padding(1, 2)

	return s
}

// RenderKey highlights a trigger key inside a decorated menu document.
func (s *Styles) RenderKey(key string) string {
	return s.KeyStyle.Render(key)
}
