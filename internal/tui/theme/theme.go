// Package theme provides color themes for the TUI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Selected row, subtle highlight
	Fg          string // Primary foreground
	FgMuted     string // Separators, muted elements
	Accent      string // Title, borders
	Key         string // Trigger keys in menu text
	Warning     string // Warnings, missing menus
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

var themes = map[string]*Theme{
	"mocha": {
		Name:        "mocha",
		Bg:          "#1e1e2e",
		BgHighlight: "#313244",
		Fg:          "#cdd6f4",
		FgMuted:     "#6c7086",
		Accent:      "#89b4fa",
		Key:         "#f9e2af",
		Warning:     "#fab387",
	},
	"latte": {
		Name:        "latte",
		Bg:          "#eff1f5",
		BgHighlight: "#ccd0da",
		Fg:          "#4c4f69",
		FgMuted:     "#9ca0b0",
		Accent:      "#1e66f5",
		Key:         "#df8e1d",
		Warning:     "#fe640b",
	},
	"plain": {
		Name:        "plain",
		Bg:          "#000000",
		BgHighlight: "#333333",
		Fg:          "#ffffff",
		FgMuted:     "#888888",
		Accent:      "#00afff",
		Key:         "#ffff00",
		Warning:     "#ffaf00",
	},
}

// Load returns the named theme, falling back to mocha for unknown names.
func Load(name string) *Theme {
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return themes["mocha"]
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"latte", "mocha", "plain"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	_, ok := themes[strings.ToLower(name)]
	return ok
}
