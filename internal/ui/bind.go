package ui

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chrisbarrett/hydramenu/internal/config"
	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
)

// BindMenus registers every definition from a menu file with the service.
// Heads are grouped by column, preserving file order within each column.
func BindMenus(s *registry.Service, mf *config.MenuFile) {
	for _, m := range mf.Menus {
		ctx := registry.Context(m.Context)
		if m.Prefix != "" {
			s.SetPrefix(ctx, m.Prefix)
		}
		for _, column := range columnOrder(m.Heads) {
			var bindings []registry.Binding
			for _, h := range m.Heads {
				if h.Column != column {
					continue
				}
				bindings = append(bindings, registry.Binding{
					Key:     h.Key,
					Command: shellCommand(h.Run),
					Hint:    headHint(h),
				})
			}
			s.AddHeads(ctx, column, bindings)
		}
	}
}

// columnOrder returns the distinct column names in first-seen file order.
func columnOrder(heads []config.HeadDef) []string {
	var order []string
	seen := make(map[string]bool)
	for _, h := range heads {
		if !seen[h.Column] {
			seen[h.Column] = true
			order = append(order, h.Column)
		}
	}
	return order
}

func headHint(h config.HeadDef) menu.Hint {
	if h.HintCmd != "" {
		return menu.DynamicHint(func() string {
			return evalHintCmd(h.HintCmd)
		})
	}
	if h.Hint != "" {
		return menu.StaticHint(h.Hint)
	}
	return menu.Hint{}
}

// shellCommand wraps a shell command line as an opaque command handle. The
// display name is the command's basename so hint fallback stays short.
func shellCommand(run string) menu.Command {
	return menu.Command{
		Name: commandName(run),
		Run: func(ctx context.Context) error {
			cmd := exec.CommandContext(ctx, "sh", "-c", run)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			return cmd.Run()
		},
	}
}

// commandName derives a display name from a shell command line.
func commandName(run string) string {
	fields := strings.Fields(run)
	if len(fields) == 0 {
		return run
	}
	return filepath.Base(fields[0])
}

// evalHintCmd runs a dynamic hint command and returns its trimmed output.
// Failures degrade to an empty hint rather than breaking the menu.
func evalHintCmd(hintCmd string) string {
	out, err := exec.Command("sh", "-c", hintCmd).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
