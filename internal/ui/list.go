package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List defined menu contexts",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.bindMenus(); err != nil {
				return err
			}

			contexts := a.service.Contexts()
			if len(contexts) == 0 {
				fmt.Println("No menus defined.")
				return nil
			}

			fmt.Println(formatHeader("Contexts"))
			for _, ctx := range contexts {
				n := a.service.HeadCount(ctx)
				fmt.Printf("  %s %s\n", ctx, formatMuted(fmt.Sprintf("(%d heads)", n)))
			}
			return nil
		},
	}
}
