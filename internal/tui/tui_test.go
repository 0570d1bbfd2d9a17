// Package tui provides the interactive menu browser for hydramenu.
package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisbarrett/hydramenu/internal/config"
	"github.com/chrisbarrett/hydramenu/internal/history"
	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
)

var errSentinel = errors.New("boom")

// memRepo is an in-memory history.Repository for tests.
type memRepo struct {
	invocations []*history.Invocation
}

func (r *memRepo) Record(_ context.Context, inv *history.Invocation) error {
	inv.ID = int64(len(r.invocations) + 1)
	r.invocations = append(r.invocations, inv)
	return nil
}

func (r *memRepo) ListRecent(_ context.Context, limit int) ([]*history.Invocation, error) {
	out := make([]*history.Invocation, 0, limit)
	for i := len(r.invocations) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.invocations[i])
	}
	return out, nil
}

func (r *memRepo) Close() error { return nil }

func newTestService(ran *[]string) *registry.Service {
	record := func(name string) menu.Command {
		return menu.Command{
			Name: name,
			Run: func(context.Context) error {
				if ran != nil {
					*ran = append(*ran, name)
				}
				return nil
			},
		}
	}

	s := registry.NewService(registry.Options{})
	s.AddHeads("go-mode", "Build", []registry.Binding{
		{Key: "t", Command: record("run-tests")},
		{Key: "b", Command: record("build")},
	})
	s.AddHeads("text-mode", "Edit", []registry.Binding{
		{Key: "s", Command: record("sort-lines")},
	})
	return s
}

func newTestModel(ran *[]string) (Model, *memRepo) {
	repo := &memRepo{}
	m := New(newTestService(ran), repo, config.Default())
	return m, repo
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModelLoadsContextsSorted(t *testing.T) {
	m, _ := newTestModel(nil)

	if len(m.contexts) != 2 {
		t.Fatalf("contexts = %d, want 2", len(m.contexts))
	}
	if m.contexts[0] != "go-mode" || m.contexts[1] != "text-mode" {
		t.Fatalf("contexts = %v, want [go-mode text-mode]", m.contexts)
	}
	if m.mode != ModeList {
		t.Fatalf("mode = %d, want ModeList", m.mode)
	}
}

func TestVisibleContextsFilter(t *testing.T) {
	m, _ := newTestModel(nil)
	m.filter.SetValue("text")

	visible := m.visibleContexts()
	if len(visible) != 1 {
		t.Fatalf("visible = %v, want one entry", visible)
	}
	if visible[0] != "text-mode" {
		t.Fatalf("visible[0] = %q, want text-mode", visible[0])
	}
}

func TestSelectedContextOutOfRange(t *testing.T) {
	m, _ := newTestModel(nil)
	m.filter.SetValue("no-such-context")

	if _, ok := m.selectedContext(); ok {
		t.Fatal("expected no selection with empty visible list")
	}
}
