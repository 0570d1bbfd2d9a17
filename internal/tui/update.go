package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisbarrett/hydramenu/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.MenuOpenedMsg:
		LogMenuOpened(msg.Context, len(msg.Compiled.Bindings))
		m.mode = ModeMenu
		m.active = msg.Context
		m.compiled = msg.Compiled
		m.statusMsg = ""
		return m, nil

	case commands.CommandDoneMsg:
		LogCommandDone(msg.Context, msg.Key, msg.Name)
		m.running = false
		m.mode = ModeList
		m.compiled = nil
		m.statusMsg = fmt.Sprintf("Ran %s", msg.Name)
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ErrMsg:
		LogError("update", msg.Err)
		m.err = msg.Err
		m.running = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Handle filter input when filtering
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.clampCursor()
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
