// Package ui implements the command line interface for hydramenu.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrisbarrett/hydramenu/internal/config"
	"github.com/chrisbarrett/hydramenu/internal/db"
	"github.com/chrisbarrett/hydramenu/internal/history"
	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
	"github.com/chrisbarrett/hydramenu/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	service *registry.Service
	repo    history.Repository
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}
	a.service = registry.NewService(registry.Options{
		Formatter:   menu.LiveFormatter,
		Diagnostics: NewDiagnostics(),
	})

	a.root = &cobra.Command{
		Use:   "hydramenu",
		Short: "A keyboard-driven command menu for the terminal",
		Long: `Hydramenu renders grouped key bindings as aligned multi-column menus.

Menus are defined per context in a TOML file; running hydramenu without a
subcommand opens the interactive menu browser where a single key press runs
the bound command.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.bindMenus(); err != nil {
				return err
			}
			repo, err := a.openRepo()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(a.service, repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to a file in the current directory)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.historyCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("hydramenu %s (commit: %s)\n", Version, Commit)
		},
	}
}

// bindMenus loads the menu definition file and registers its bindings.
func (a *App) bindMenus() error {
	mf, err := config.LoadMenus(a.config.Menus.Path)
	if err != nil {
		return fmt.Errorf("loading menus: %w", err)
	}
	BindMenus(a.service, mf)
	return nil
}

// openRepo opens the invocation history repository, caching it on the App.
func (a *App) openRepo() (history.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := db.New(a.config.Storage.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	a.repo = repo
	return repo, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases resources held by the application.
func (a *App) Close() error {
	if a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
