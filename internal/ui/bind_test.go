package ui

import (
	"strings"
	"testing"

	"github.com/chrisbarrett/hydramenu/internal/config"
	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
)

func TestBindMenus(t *testing.T) {
	mf := &config.MenuFile{
		Menus: []config.MenuDef{
			{
				Context: "files",
				Prefix:  "Files Menu",
				Heads: []config.HeadDef{
					{Column: "Open", Key: "o", Hint: "open", Run: "xdg-open ."},
					{Column: "Save", Key: "s", Hint: "save", Run: "true"},
					{Column: "Open", Key: "e", Run: "/usr/bin/vim ."},
				},
			},
		},
	}

	s := registry.NewService(registry.Options{})
	BindMenus(s, mf)

	compiled, err := s.GetOrCompile("files")
	if err != nil {
		t.Fatalf("GetOrCompile: %v", err)
	}

	for _, key := range []string{"o", "s", "e"} {
		if _, ok := compiled.Lookup(key); !ok {
			t.Errorf("key %q not bound", key)
		}
	}
	if !strings.HasPrefix(compiled.Doc, "\nFiles Menu") {
		t.Errorf("doc missing prefix: %q", compiled.Doc)
	}
	// Head without a hint falls back to the command basename.
	if !strings.Contains(compiled.Doc, "[_e_] vim") {
		t.Errorf("fallback hint missing:\n%s", compiled.Doc)
	}
}

func TestBindMenus_DynamicHint(t *testing.T) {
	mf := &config.MenuFile{
		Menus: []config.MenuDef{
			{
				Context: "sys",
				Heads: []config.HeadDef{
					{Column: "Clock", Key: "t", HintCmd: "echo 12:00", Run: "date"},
				},
			},
		},
	}

	s := registry.NewService(registry.Options{})
	BindMenus(s, mf)

	compiled, err := s.GetOrCompile("sys")
	if err != nil {
		t.Fatalf("GetOrCompile: %v", err)
	}
	// Dynamic hints render as placeholders; evaluation is the host's job.
	if !strings.Contains(compiled.Doc, "?t?") {
		t.Errorf("dynamic placeholder missing:\n%s", compiled.Doc)
	}
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		run  string
		want string
	}{
		{run: "xdg-open .", want: "xdg-open"},
		{run: "/usr/bin/vim file.txt", want: "vim"},
		{run: "true", want: "true"},
		{run: "", want: ""},
	}

	for _, tt := range tests {
		if got := commandName(tt.run); got != tt.want {
			t.Errorf("commandName(%q) = %q, want %q", tt.run, got, tt.want)
		}
	}
}

func TestShellCommandName(t *testing.T) {
	cmd := shellCommand("echo hello world")
	if cmd.Name != "echo" {
		t.Errorf("Name = %q, want echo", cmd.Name)
	}
	if cmd.Run == nil {
		t.Fatal("Run is nil")
	}
}

func TestHeadHint(t *testing.T) {
	if h := headHint(config.HeadDef{Hint: "open"}); h.Kind() != menu.HintStatic {
		t.Errorf("static hint kind = %v", h.Kind())
	}
	if h := headHint(config.HeadDef{HintCmd: "date"}); h.Kind() != menu.HintDynamic {
		t.Errorf("dynamic hint kind = %v", h.Kind())
	}
	if h := headHint(config.HeadDef{}); !h.IsAbsent() {
		t.Error("expected absent hint")
	}
}
