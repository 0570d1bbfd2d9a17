// Package registry maintains per-context key bindings and the lazily
// compiled menu artifacts derived from them. Mutating a context's bindings
// drops its cached artifact; the next access recompiles.
package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/chrisbarrett/hydramenu/internal/menu"
)

// ErrNotFound is returned when a context has no registered bindings.
var ErrNotFound = errors.New("registry: no menu defined for context")

// Context identifies the scope a set of heads applies to, e.g. a mode name.
type Context string

// The abort heads appended to every compiled menu. They participate in key
// dispatch but are never rendered.
const (
	abortKey  = "q"
	escapeKey = "esc"
)

// Binding is one incoming head definition for AddHeads.
type Binding struct {
	Key     string
	Command menu.Command
	Hint    menu.Hint
	Options []menu.Option
}

// Diagnostics receives non-fatal events the registry reports outward.
type Diagnostics interface {
	// Collision is called when a key is already bound in the context; the
	// offending binding has been skipped and existing keeps the key.
	Collision(ctx Context, key string, existing menu.Command)
	// MissingMenu is called when activation finds no bindings for ctx.
	MissingMenu(ctx Context)
}

// Dispatcher receives a compiled menu's bindings for live key resolution.
// The input mechanism behind it is the host's concern.
type Dispatcher interface {
	Dispatch(ctx Context, compiled *menu.Compiled)
}

// Options configures menu compilation.
type Options struct {
	// Prefix is prepended to the composed text before post-processing.
	Prefix string
	// Formatter overrides menu.DefaultFormatter for head lines.
	Formatter menu.Formatter
	// Process post-processes the document text. A leading newline is
	// enforced on its result.
	Process func(string) string
	// Diagnostics receives collision and missing-menu events. Defaults to
	// a no-op sink.
	Diagnostics Diagnostics
}

// entry is one registered head tagged with its column.
type entry struct {
	column string
	head   menu.Head
}

// Service owns the binding registry and the compiled cache. Both stores are
// keyed by Context but lifecycled independently: bindings live until
// RemoveAll, cached artifacts only until the next mutation. The mutex keeps
// mutation and invalidation atomic for concurrent hosts.
type Service struct {
	mu       sync.Mutex
	binds    map[Context][]entry // newest first
	cache    map[Context]*menu.Compiled
	prefixes map[Context]string
	opts     Options
	compiles int
}

// NewService returns a Service with empty stores.
func NewService(opts Options) *Service {
	if opts.Diagnostics == nil {
		opts.Diagnostics = nopDiagnostics{}
	}
	return &Service{
		binds:    make(map[Context][]entry),
		cache:    make(map[Context]*menu.Compiled),
		prefixes: make(map[Context]string),
		opts:     opts,
	}
}

type nopDiagnostics struct{}

func (nopDiagnostics) Collision(Context, string, menu.Command) {}
func (nopDiagnostics) MissingMenu(Context)                     {}

// AddHeads registers bindings under a column for the context. Keys colliding
// with an already-registered head (including earlier bindings in the same
// call) are skipped with a diagnostic; the existing binding wins. The
// context's cached artifact is invalidated.
func (s *Service) AddHeads(ctx Context, column string, bindings []Binding) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range bindings {
		hint, opts := deriveHint(b)
		if existing, ok := s.lookupLocked(ctx, b.Key); ok {
			s.opts.Diagnostics.Collision(ctx, b.Key, existing)
			continue
		}
		head := menu.Head{Key: b.Key, Command: b.Command, Hint: hint, Options: opts}
		s.binds[ctx] = append([]entry{{column: column, head: head}}, s.binds[ctx]...)
	}
	delete(s.cache, ctx)
}

// deriveHint resolves a binding's hint: an explicit hint wins unless it is
// an options-marker (a static ":name" keyword), which is folded into the
// options instead; otherwise the command's display name is used.
func deriveHint(b Binding) (menu.Hint, []menu.Option) {
	opts := b.Options
	switch b.Hint.Kind() {
	case menu.HintDynamic:
		return b.Hint, opts
	case menu.HintStatic:
		text := b.Hint.Text()
		if !strings.HasPrefix(text, ":") {
			return b.Hint, opts
		}
		opts = append([]menu.Option{{Name: strings.TrimPrefix(text, ":")}}, opts...)
	}
	return menu.StaticHint(b.Command.Name), opts
}

func (s *Service) lookupLocked(ctx Context, key string) (menu.Command, bool) {
	for _, e := range s.binds[ctx] {
		if e.head.Key == key {
			return e.head.Command, true
		}
	}
	return menu.Command{}, false
}

// SetPrefix sets a per-context title prepended to the composed text,
// overriding the service-wide prefix. The cached artifact is invalidated.
func (s *Service) SetPrefix(ctx Context, prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefixes[ctx] = prefix
	delete(s.cache, ctx)
}

// RemoveAll drops the context's bindings, prefix, and cached artifact
// unconditionally.
func (s *Service) RemoveAll(ctx Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.binds, ctx)
	delete(s.prefixes, ctx)
	delete(s.cache, ctx)
}

// Invalidate drops only the cached artifact, leaving bindings intact.
func (s *Service) Invalidate(ctx Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, ctx)
}

// Contexts returns the registered context identifiers, sorted.
func (s *Service) Contexts() []Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Context, 0, len(s.binds))
	for ctx := range s.binds {
		out = append(out, ctx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HeadCount returns the number of registered heads for the context.
func (s *Service) HeadCount(ctx Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.binds[ctx])
}

// GetOrCompile returns the compiled menu for the context, rebuilding it only
// when no cached artifact exists. ErrNotFound is returned when the context
// has no bindings at all.
func (s *Service) GetOrCompile(ctx Context) (*menu.Compiled, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCompileLocked(ctx)
}

func (s *Service) getOrCompileLocked(ctx Context) (*menu.Compiled, error) {
	if c, ok := s.cache[ctx]; ok {
		return c, nil
	}
	entries, ok := s.binds[ctx]
	if !ok {
		return nil, ErrNotFound
	}

	columns := groupColumns(entries)
	doc, err := menu.Compose(columns, s.opts.Formatter)
	if err != nil {
		return nil, err
	}
	doc = s.finishDoc(ctx, doc)

	bindings := make([]menu.KeyBinding, 0, len(entries)+2)
	for _, c := range columns {
		for _, h := range c.Heads {
			bindings = append(bindings, menu.KeyBinding{Key: h.Key, Command: h.Command})
		}
	}
	abort := menu.Command{Name: "abort"}
	bindings = append(bindings,
		menu.KeyBinding{Key: abortKey, Command: abort},
		menu.KeyBinding{Key: escapeKey, Command: abort},
	)

	compiled := &menu.Compiled{Doc: doc, Bindings: bindings}
	s.cache[ctx] = compiled
	s.compiles++
	return compiled, nil
}

// groupColumns groups the flat newest-first entry list by column tag.
// Column order follows first appearance in the newest-first scan; heads
// within a column are restored to original insertion order.
func groupColumns(entries []entry) []menu.Column {
	order := make([]string, 0, 4)
	byName := make(map[string]int)
	for _, e := range entries {
		if _, seen := byName[e.column]; !seen {
			byName[e.column] = len(order)
			order = append(order, e.column)
		}
	}

	columns := make([]menu.Column, len(order))
	for i, name := range order {
		columns[i].Name = name
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		idx := byName[e.column]
		columns[idx].Heads = append(columns[idx].Heads, e.head)
	}
	return columns
}

// finishDoc applies the prefix and post-processor, then enforces a leading
// newline so the menu always starts on its own line.
func (s *Service) finishDoc(ctx Context, doc string) string {
	prefix, ok := s.prefixes[ctx]
	if !ok {
		prefix = s.opts.Prefix
	}
	doc = prefix + doc
	if s.opts.Process != nil {
		doc = s.opts.Process(doc)
	}
	if !strings.HasPrefix(doc, "\n") {
		doc = "\n" + doc
	}
	return doc
}

// Activate resolves the context's compiled menu and hands it to the
// dispatcher for live key resolution. A context without bindings reports a
// missing menu and returns ErrNotFound.
func (s *Service) Activate(ctx Context, d Dispatcher) error {
	compiled, err := s.GetOrCompile(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.opts.Diagnostics.MissingMenu(ctx)
		}
		return err
	}
	d.Dispatch(ctx, compiled)
	return nil
}

// CompileCount reports how many times a menu has been compiled. Cached hits
// do not count.
func (s *Service) CompileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compiles
}
