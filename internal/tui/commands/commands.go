// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisbarrett/hydramenu/internal/history"
	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
)

// MenuOpenedMsg is sent when a context's menu has been compiled and handed
// over for display.
type MenuOpenedMsg struct {
	Context  registry.Context
	Compiled *menu.Compiled
}

// CommandDoneMsg is sent when a dispatched head command has finished.
type CommandDoneMsg struct {
	Context registry.Context
	Key     string
	Name    string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// capture is a registry.Dispatcher that holds the compiled menu it receives.
type capture struct {
	compiled *menu.Compiled
}

func (c *capture) Dispatch(_ registry.Context, compiled *menu.Compiled) {
	c.compiled = compiled
}

// OpenMenu activates the context's menu and delivers the compiled artifact.
func OpenMenu(service *registry.Service, ctx registry.Context) tea.Cmd {
	return func() tea.Msg {
		var cap capture
		if err := service.Activate(ctx, &cap); err != nil {
			return ErrMsg{Err: fmt.Errorf("opening menu %q: %w", ctx, err)}
		}
		return MenuOpenedMsg{Context: ctx, Compiled: cap.compiled}
	}
}

// RunCommand executes a head command and records the invocation.
func RunCommand(repo history.Repository, menuCtx registry.Context, key string, cmd menu.Command) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if cmd.Run != nil {
			if err := cmd.Run(ctx); err != nil {
				return ErrMsg{Err: fmt.Errorf("running %s: %w", cmd.Name, err)}
			}
		}

		if repo != nil {
			inv := &history.Invocation{
				Context:   string(menuCtx),
				Key:       key,
				Command:   cmd.Name,
				InvokedAt: time.Now(),
			}
			if err := repo.Record(ctx, inv); err != nil {
				return ErrMsg{Err: fmt.Errorf("recording invocation: %w", err)}
			}
		}

		return CommandDoneMsg{Context: menuCtx, Key: key, Name: cmd.Name}
	}
}

// CopyDoc copies the plain menu text to the system clipboard.
func CopyDoc(doc string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(doc); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Menu copied to clipboard"}
	}
}
