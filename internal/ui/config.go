package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisbarrett/hydramenu/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			printConfig(a.config)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default config and sample menu files",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInit(a.config)
		},
	})

	return cmd
}

func runConfigInit(cfg *config.Config) error {
	configPath := config.DefaultConfigPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n", configPath)
	} else {
		fmt.Printf("Config already exists: %s\n", configPath)
	}

	if _, err := os.Stat(cfg.Menus.Path); os.IsNotExist(err) {
		if err := config.WriteSampleMenus(cfg.Menus.Path); err != nil {
			return fmt.Errorf("writing sample menus: %w", err)
		}
		fmt.Printf("Created %s\n", cfg.Menus.Path)
	} else {
		fmt.Printf("Menus file already exists: %s\n", cfg.Menus.Path)
	}

	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("Configuration"))
	fmt.Printf("  theme:        %s\n", cfg.UI.Theme)
	fmt.Printf("  menus path:   %s\n", cfg.Menus.Path)
	fmt.Printf("  history path: %s\n", cfg.Storage.HistoryPath)
}
