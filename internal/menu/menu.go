// Package menu implements the column layout engine for key menus: it turns
// grouped head entries (key, command, hint) into an aligned multi-column
// block of text.
package menu

import "context"

// HintKind discriminates the hint variants of a head.
type HintKind int

const (
	// HintAbsent means the head renders no visible line.
	HintAbsent HintKind = iota
	// HintStatic is a fixed text label resolved at definition time.
	HintStatic
	// HintDynamic is re-evaluated by the host at display time; the layout
	// engine renders a placeholder for it.
	HintDynamic
)

// Hint is the optional descriptive label shown next to a head's key.
// The zero value is the absent hint.
type Hint struct {
	kind HintKind
	text string
	eval func() string
}

// StaticHint returns a fixed text hint.
func StaticHint(text string) Hint {
	return Hint{kind: HintStatic, text: text}
}

// DynamicHint returns a hint whose text is produced by eval at display time.
func DynamicHint(eval func() string) Hint {
	return Hint{kind: HintDynamic, eval: eval}
}

// Kind returns the hint variant.
func (h Hint) Kind() HintKind { return h.kind }

// Text returns the static hint text. Empty for absent and dynamic hints.
func (h Hint) Text() string { return h.text }

// Eval resolves a dynamic hint. It returns the empty string for other kinds.
func (h Hint) Eval() string {
	if h.kind != HintDynamic || h.eval == nil {
		return ""
	}
	return h.eval()
}

// IsAbsent reports whether the hint renders nothing.
func (h Hint) IsAbsent() bool { return h.kind == HintAbsent }

// Command is an opaque handle to external behavior. The layout engine and
// registry never invoke Run; they only read Name for fallback hints and
// diagnostics. Execution belongs to the host.
type Command struct {
	Name string
	Run  func(ctx context.Context) error
}

// Option is one ordered key-value pair attached to a head. Options are
// carried through untouched; the engine does not interpret them.
type Option struct {
	Name  string
	Value string
}

// Head is one key-triggered entry in a menu.
type Head struct {
	Key     string
	Command Command
	Hint    Hint
	Options []Option
}

// Column is a named, ordered group of heads rendered as one aligned block.
type Column struct {
	Name  string
	Heads []Head
}

// KeyBinding pairs a trigger key with its command for live dispatch.
type KeyBinding struct {
	Key     string
	Command Command
}

// Compiled is a rendered menu: the document text plus the flattened
// key-to-command bindings. It is immutable once produced; recompilation
// replaces it wholesale.
type Compiled struct {
	Doc      string
	Bindings []KeyBinding
}

// Lookup returns the command bound to key, if any.
func (c *Compiled) Lookup(key string) (Command, bool) {
	for _, b := range c.Bindings {
		if b.Key == key {
			return b.Command, true
		}
	}
	return Command{}, false
}
