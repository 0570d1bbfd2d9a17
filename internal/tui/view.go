package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrisbarrett/hydramenu/internal/menu"
)

// View renders the TUI.
func (m Model) View() string {
	var body string
	switch m.mode {
	case ModeMenu:
		body = m.renderMenu()
	default:
		body = m.renderList()
	}
	return m.styles.AppStyle.Render(body)
}

// renderList renders the context list with the filter and help footer.
func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.styles.TitleStyle.Render("hydramenu"))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	visible := m.visibleContexts()
	if len(visible) == 0 {
		b.WriteString(m.styles.ItemCountStyle.Render("No menus defined"))
		b.WriteString("\n")
	}
	for i, ctx := range visible {
		label := fmt.Sprintf("%-24s", string(ctx))
		count := m.styles.ItemCountStyle.Render(fmt.Sprintf("%d heads", m.service.HeadCount(ctx)))
		if i == m.cursor {
			b.WriteString(m.styles.ItemSelectedStyle.Render("> " + label))
		} else {
			b.WriteString(m.styles.ItemStyle.Render("  " + label))
		}
		b.WriteString(" ")
		b.WriteString(count)
		b.WriteString("\n")
	}

	help := "j/k move · enter open · / filter · q quit"
	return lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		m.renderStatus(),
		m.styles.HelpStyle.Render(help),
	)
}

// renderMenu renders the open menu's decorated document.
func (m Model) renderMenu() string {
	title := m.styles.TitleStyle.Render(string(m.active))
	doc := ""
	if m.compiled != nil {
		doc = m.styles.MenuStyle.Render(menu.Decorate(m.compiled.Doc, m.styles.RenderKey))
	}

	help := "press a key · q/esc close · ctrl+y copy · ctrl+c quit"
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		doc,
		m.renderStatus(),
		m.styles.HelpStyle.Render(help),
	)
}

// renderStatus renders the transient status line, warning-styled for errors.
func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	if strings.HasPrefix(m.statusMsg, "Error:") {
		return m.styles.WarningStyle.Render(m.statusMsg)
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}
