package figure

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/specialistvlad/figcore/internal/ctxlog"
)

// Context carries everything one defaults-supply pass needs besides the
// input itself: the logger, the active template, the provenance being
// recorded and the uid source. It replaces any ambient state, so several
// figures can be resolved independently.
type Context struct {
	ctx context.Context

	// Provenance receives one entry per coerced leaf.
	Provenance Provenance

	// LayoutTemplate is the layout part of the active template, or nil.
	LayoutTemplate map[string]any
	// DataTemplates maps a trace type to its template entries.
	DataTemplates map[string][]map[string]any

	// NewUID returns the uid default for the trace at input index i.
	NewUID func(i int) string

	seen map[string]int
}

// NewContext creates a resolution context. The logger is taken from ctx.
func NewContext(ctx context.Context) *Context {
	return &Context{
		ctx:        ctx,
		Provenance: Provenance{},
		NewUID:     func(int) string { return NewUID() },
		seen:       map[string]int{},
	}
}

// Context returns the context.Context the resolution runs under.
func (c *Context) Context() context.Context {
	return c.ctx
}

// Logger returns the logger carried by the context.
func (c *Context) Logger() *slog.Logger {
	return ctxlog.FromContext(c.ctx)
}

// NextTraceTemplate returns the template entry for the next trace of type
// typ. Entries are applied cyclically: the n-th trace of a type receives
// entry n modulo the number of entries.
func (c *Context) NextTraceTemplate(typ string) map[string]any {
	entries := c.DataTemplates[typ]
	n := c.seen[typ]
	c.seen[typ] = n + 1
	if len(entries) == 0 {
		return nil
	}
	return entries[n%len(entries)]
}

// NewUID generates a fresh, lexically sortable trace uid.
func NewUID() string {
	return ulid.Make().String()
}
