package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
)

func (a *App) renderCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "render <context>",
		Short: "Render the menu for a context",
		Long: `Compile the menu for a context and print it.

Keys are highlighted unless --no-color is given. With --raw the internal
layout text is printed unprocessed, markers included.`,
		Example: `  hydramenu render main
  hydramenu render main --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.bindMenus(); err != nil {
				return err
			}

			compiled, err := a.service.GetOrCompile(registry.Context(args[0]))
			if err != nil {
				return err
			}

			if w := menuWidth(compiled.Doc); w > termWidth() {
				colorWarn.Fprintf(os.Stderr, "warning: menu is %d columns wide, terminal has %d\n", w, termWidth())
			}

			if raw {
				fmt.Print(compiled.Doc)
				return nil
			}
			fmt.Print(menu.Decorate(compiled.Doc, formatKey))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the unprocessed layout text")
	return cmd
}

// menuWidth returns the widest visible line of a rendered menu.
func menuWidth(doc string) int {
	w := 0
	for _, line := range strings.Split(doc, "\n") {
		if v := menu.VisibleLen(line); v > w {
			w = v
		}
	}
	return w
}
