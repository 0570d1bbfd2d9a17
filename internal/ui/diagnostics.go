package ui

import (
	"os"

	"github.com/chrisbarrett/hydramenu/internal/menu"
	"github.com/chrisbarrett/hydramenu/internal/registry"
)

// Diagnostics reports registry events on stderr.
type Diagnostics struct{}

// NewDiagnostics returns the stderr diagnostics sink.
func NewDiagnostics() Diagnostics {
	return Diagnostics{}
}

// Collision reports a skipped binding whose key is already taken.
func (Diagnostics) Collision(ctx registry.Context, key string, existing menu.Command) {
	colorWarn.Fprintf(os.Stderr, "warning: %s: key %q is already bound to %s; skipping\n", ctx, key, existing.Name)
}

// MissingMenu reports an activation against an undefined context.
func (Diagnostics) MissingMenu(ctx registry.Context) {
	colorWarn.Fprintf(os.Stderr, "warning: no menu defined for context %q\n", ctx)
}
