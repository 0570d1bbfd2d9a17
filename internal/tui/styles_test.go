// Package tui provides the interactive menu browser for hydramenu.
package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/chrisbarrett/hydramenu/internal/tui/theme"
)

func TestNewStylesUsesThemeColors(t *testing.T) {
	th := theme.Load("mocha")
	s := NewStyles(th)

	if string(s.colorKey) != th.Key {
		t.Fatalf("colorKey = %q, want %q", s.colorKey, th.Key)
	}
	if string(s.colorWarning) != th.Warning {
		t.Fatalf("colorWarning = %q, want %q", s.colorWarning, th.Warning)
	}
}

func TestRenderKeyHighlights(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	s := NewStyles(theme.Load("mocha"))
	out := s.RenderKey("a")
	if !strings.Contains(out, "a") {
		t.Fatalf("key text missing from %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected styled output, got %q", out)
	}
}
