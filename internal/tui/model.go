// Package tui provides the interactive menu browser for hydramenu.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisbarrett/hydramenu/internal/config"
	"github.com/chrisbarrett/hydramenu/internal/history"
	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
	"github.com/chrisbarrett/hydramenu/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeList Mode = iota // Browsing the context list
	ModeMenu             // A compiled menu is open; keys dispatch heads
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	service *registry.Service
	repo    history.Repository
	config  *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Context list state
	contexts []registry.Context
	cursor   int

	// Filter input
	filter    textinput.Model
	filtering bool

	// Open menu state
	mode     Mode
	active   registry.Context
	compiled *menu.Compiled
	running  bool // True while a head command executes

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// New creates a new TUI model.
func New(service *registry.Service, repo history.Repository, cfg *config.Config) Model {
	filter := textinput.New()
	filter.Placeholder = "filter contexts"
	filter.Prompt = "/"
	filter.CharLimit = 64

	t := theme.Load(cfg.UI.Theme)
	styles := NewStyles(t)

	filter.PromptStyle = styles.FilterStyle
	filter.TextStyle = styles.ItemStyle

	return Model{
		service:  service,
		repo:     repo,
		config:   cfg,
		theme:    t,
		styles:   styles,
		contexts: service.Contexts(),
		mode:     ModeList,
		filter:   filter,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// visibleContexts returns the context list narrowed by the current filter.
func (m Model) visibleContexts() []registry.Context {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.contexts
	}
	out := make([]registry.Context, 0, len(m.contexts))
	for _, ctx := range m.contexts {
		if strings.Contains(strings.ToLower(string(ctx)), query) {
			out = append(out, ctx)
		}
	}
	return out
}

// selectedContext returns the context under the cursor, if any.
func (m Model) selectedContext() (registry.Context, bool) {
	visible := m.visibleContexts()
	if len(visible) == 0 || m.cursor < 0 || m.cursor >= len(visible) {
		return "", false
	}
	return visible[m.cursor], true
}

// clampCursor keeps the cursor inside the visible context list.
func (m *Model) clampCursor() {
	visible := m.visibleContexts()
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the TUI.
func Run(service *registry.Service, repo history.Repository, cfg *config.Config) error {
	return RunWithDebug(service, repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(service *registry.Service, repo history.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(service, repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
