package coerce

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Coercer coerces attributes of one container instance: a trace, a legend,
// one menu button. It is cheap to create and must not be shared.
type Coercer struct {
	attrs  *schema.Container
	in     map[string]any
	out    map[string]any
	tmpl   map[string]any
	prov   figure.Provenance
	prefix attrpath.Path
	logger *slog.Logger
	err    error
}

// Option configures a Coercer.
type Option func(*Coercer)

// WithTemplate makes values of tmpl the fallback for missing or invalid
// input values. tmpl has the same shape as the input.
func WithTemplate(tmpl map[string]any) Option {
	return func(c *Coercer) { c.tmpl = tmpl }
}

// WithProvenance records the source of every written leaf in prov, under
// prefix (e.g. "layout.legend2" or "data[0]").
func WithProvenance(prov figure.Provenance, prefix attrpath.Path) Option {
	return func(c *Coercer) {
		c.prov = prov
		c.prefix = prefix
	}
}

// WithContext takes the logger from ctx.
func WithContext(ctx context.Context) Option {
	return func(c *Coercer) { c.logger = ctxlog.FromContext(ctx) }
}

// New creates a coercer reading in and writing out, both shaped like attrs.
// A nil input is treated as empty; a nil output panics on first write.
func New(attrs *schema.Container, in, out map[string]any, opts ...Option) *Coercer {
	c := &Coercer{attrs: attrs, in: in, out: out, logger: ctxlog.Discard()}
	if c.in == nil {
		c.in = map[string]any{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Coerce is the one-shot form of Coercer.Coerce.
func Coerce(in, out map[string]any, attrs *schema.Container, path string, dflt any) (any, error) {
	c := New(attrs, in, out)
	v := c.Coerce(path, dflt)
	return v, c.Err()
}

// Coerce resolves the attribute at path, writes it into the output and
// returns the written value. It returns nil when the attribute is omitted.
func (c *Coercer) Coerce(path string, dflt any) any {
	v, _ := c.Coerce2(path, dflt)
	return v
}

// Coerce2 is Coerce that also reports whether the value was explicitly
// provided, by the user or by the template, rather than defaulted.
func (c *Coercer) Coerce2(path string, dflt any) (any, bool) {
	p, err := attrpath.Parse(path)
	if err != nil {
		c.fail(&UnknownAttributeError{Container: c.attrs.Name, Path: path, Cause: err})
		return nil, false
	}
	v, src := c.CoercePath(p, dflt)
	return v, src == figure.SourceUser || src == figure.SourceTemplate
}

// CoercePath is Coerce for a pre-parsed path. It also returns the source of
// the value; the source is meaningless when the value is nil.
func (c *Coercer) CoercePath(p attrpath.Path, dflt any) (any, figure.Source) {
	leaf, err := schema.ResolveLeaf(c.attrs, p)
	if err != nil {
		c.fail(&UnknownAttributeError{Container: c.attrs.Name, Path: p.String(), Cause: err})
		return nil, figure.SourceDefault
	}

	if raw, ok := attrpath.Get(c.in, p); ok && raw != nil {
		if v, valid := Valid(leaf, raw); valid {
			return c.write(p, v, figure.SourceUser), figure.SourceUser
		}
		c.logger.Debug("Ignoring invalid attribute value.", "container", c.attrs.Name, "path", p.String(), "value", raw)
	}

	if raw, ok := attrpath.Get(c.tmpl, p); ok && raw != nil && !leaf.NoTemplate {
		if v, valid := Valid(leaf, raw); valid {
			return c.write(p, v, figure.SourceTemplate), figure.SourceTemplate
		}
		c.logger.Debug("Ignoring invalid template value.", "container", c.attrs.Name, "path", p.String(), "value", raw)
	}

	if dflt != nil {
		if v, valid := Valid(leaf, dflt); valid {
			return c.write(p, v, figure.SourceDefault), figure.SourceDefault
		}
	}

	if leaf.Default != nil {
		return c.write(p, figure.CloneValue(leaf.Default), figure.SourceDefault), figure.SourceDefault
	}
	return nil, figure.SourceDefault
}

// CoerceFont coerces the family, size and color of the font container at
// prefix, defaulting each to the matching entry of dflt. It returns the
// resolved font.
func (c *Coercer) CoerceFont(prefix string, dflt map[string]any) map[string]any {
	for _, attr := range []string{"family", "size", "color"} {
		c.Coerce(prefix+"."+attr, dflt[attr])
	}
	p, err := attrpath.Parse(prefix)
	if err != nil {
		return nil
	}
	return attrpath.GetMap(c.out, p)
}

// Input returns the raw input value at path.
func (c *Coercer) Input(path string) (any, bool) {
	p, err := attrpath.Parse(path)
	if err != nil {
		return nil, false
	}
	return attrpath.Get(c.in, p)
}

// Output returns the resolved value at path.
func (c *Coercer) Output(path string) (any, bool) {
	p, err := attrpath.Parse(path)
	if err != nil {
		return nil, false
	}
	return attrpath.Get(c.out, p)
}

// Explicit reports whether the resolved value at path came from the user or
// the template. It needs provenance to answer.
func (c *Coercer) Explicit(path string) bool {
	p, err := attrpath.Parse(path)
	if err != nil || c.prov == nil {
		return false
	}
	src, ok := c.prov.Source(c.prefix.Join(p).String())
	return ok && (src == figure.SourceUser || src == figure.SourceTemplate)
}

// Set writes a derived value that no coercion produced. It is recorded as a
// default.
func (c *Coercer) Set(path string, v any) {
	p, err := attrpath.Parse(path)
	if err != nil {
		c.fail(fmt.Errorf("invalid path '%s': %w", path, err))
		return
	}
	c.write(p, v, figure.SourceDefault)
}

// Delete removes a resolved value and its provenance.
func (c *Coercer) Delete(path string) {
	p, err := attrpath.Parse(path)
	if err != nil {
		return
	}
	attrpath.Delete(c.out, p)
	if c.prov != nil {
		c.prov.Forget(c.prefix.Join(p).String())
	}
}

// In returns the input tree.
func (c *Coercer) In() map[string]any { return c.in }

// Out returns the output tree.
func (c *Coercer) Out() map[string]any { return c.out }

// Template returns the template tree, or nil.
func (c *Coercer) Template() map[string]any { return c.tmpl }

// Attributes returns the schema the coercer validates against.
func (c *Coercer) Attributes() *schema.Container { return c.attrs }

// Logger returns the coercer's logger.
func (c *Coercer) Logger() *slog.Logger { return c.logger }

// Err returns the first error met by this coercer.
func (c *Coercer) Err() error { return c.err }

func (c *Coercer) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Coercer) write(p attrpath.Path, v any, src figure.Source) any {
	if err := attrpath.Set(c.out, p, v); err != nil {
		c.fail(err)
		return v
	}
	if c.prov != nil {
		c.prov.Record(c.prefix.Join(p), src)
	}
	return v
}
