package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/tui/commands"
)

// abortCommand is the display name of the synthetic bindings that close a
// menu without running anything.
const abortCommand = "abort"

// handleKeyMsg routes a key press to the handler for the current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch m.mode {
	case ModeMenu:
		return m.handleMenuKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleFilterKey feeds key presses into the filter input.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		m.clampCursor()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

// handleListKey handles navigation in the context list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleContexts()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if len(visible) > 0 {
			m.cursor = len(visible) - 1
		}
		return m, nil

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.clampCursor()
		}
		return m, nil

	case "enter", "l", "right":
		ctx, ok := m.selectedContext()
		if !ok {
			return m, nil
		}
		return m, commands.OpenMenu(m.service, ctx)
	}

	return m, nil
}

// handleMenuKey dispatches a key press against the open menu's bindings.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.running || m.compiled == nil {
		return m, nil
	}

	key := msg.String()

	if key == "ctrl+y" {
		return m, commands.CopyDoc(menu.Decorate(m.compiled.Doc, nil))
	}

	cmd, ok := m.compiled.Lookup(key)
	if !ok {
		m.statusMsg = fmt.Sprintf("%s is not bound", key)
		m.statusTime = time.Now().Add(2 * time.Second)
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})
	}

	if cmd.Name == abortCommand {
		m.mode = ModeList
		m.compiled = nil
		m.statusMsg = ""
		return m, nil
	}

	LogKeyDispatch(m.active, key, cmd.Name)
	m.running = true
	m.statusMsg = fmt.Sprintf("Running %s...", cmd.Name)
	return m, commands.RunCommand(m.repo, m.active, key, cmd)
}
