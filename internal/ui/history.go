package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently invoked menu commands",
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.openRepo()
			if err != nil {
				return err
			}

			invocations, err := repo.ListRecent(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			if len(invocations) == 0 {
				fmt.Println("No invocations recorded yet.")
				return nil
			}

			for _, inv := range invocations {
				fmt.Printf("  %s  %s %s %s\n",
					formatMuted(inv.InvokedAt.Format("2006-01-02 15:04")),
					inv.Context,
					formatKey("["+inv.Key+"]"),
					inv.Command,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of invocations to show")
	return cmd
}
