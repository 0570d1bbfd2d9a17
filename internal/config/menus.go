package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// MenuFile is a parsed menu definition file.
type MenuFile struct {
	Menus []MenuDef `toml:"menu"`
}

// MenuDef defines the heads registered under one context.
type MenuDef struct {
	Context string    `toml:"context"`
	Prefix  string    `toml:"prefix"`
	Heads   []HeadDef `toml:"head"`
}

// HeadDef is one key binding in a menu definition file. Run is a shell
// command; HintCmd, when set, makes the hint dynamic (evaluated by the host
// at display time).
type HeadDef struct {
	Column  string `toml:"column"`
	Key     string `toml:"key"`
	Hint    string `toml:"hint"`
	HintCmd string `toml:"hint_cmd"`
	Run     string `toml:"run"`
}

// LoadMenus reads and validates a menu definition file.
func LoadMenus(path string) (*MenuFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menus file: %w", err)
	}

	var mf MenuFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing menus file: %w", err)
	}

	if err := mf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menus file: %w", err)
	}

	return &mf, nil
}

// Validate checks the structural requirements of the definitions. Key
// collisions are not checked here; the registry reports those as
// diagnostics when the definitions are bound.
func (mf *MenuFile) Validate() error {
	if len(mf.Menus) == 0 {
		return fmt.Errorf("no menus defined")
	}
	for _, m := range mf.Menus {
		if m.Context == "" {
			return fmt.Errorf("menu without a context")
		}
		if len(m.Heads) == 0 {
			return fmt.Errorf("menu %q has no heads", m.Context)
		}
		for _, h := range m.Heads {
			if h.Key == "" {
				return fmt.Errorf("menu %q: head without a key", m.Context)
			}
			if h.Column == "" {
				return fmt.Errorf("menu %q: head %q without a column", m.Context, h.Key)
			}
			if h.Run == "" {
				return fmt.Errorf("menu %q: head %q without a command", m.Context, h.Key)
			}
		}
	}
	return nil
}

// SampleMenus is written when initializing a fresh menus file.
const SampleMenus = `# hydramenu menu definitions

[[menu]]
context = "main"

  [[menu.head]]
  column = "Files"
  key = "o"
  hint = "open"
  run = "xdg-open ."

  [[menu.head]]
  column = "Files"
  key = "e"
  hint = "editor"
  run = "$EDITOR"

  [[menu.head]]
  column = "System"
  key = "t"
  hint_cmd = "date +%H:%M"
  run = "date"
`

// WriteSampleMenus creates a menus file with sample content, refusing to
// overwrite an existing one.
func WriteSampleMenus(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("menus file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating menus directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(SampleMenus), 0o644); err != nil {
		return fmt.Errorf("writing menus file: %w", err)
	}
	return nil
}
