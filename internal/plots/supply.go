package plots

import (
	"context"
	"fmt"

	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/layoututil"
	"github.com/specialistvlad/figcore/internal/registry"
	"github.com/specialistvlad/figcore/internal/schema"
	"github.com/specialistvlad/figcore/internal/template"
)

// Supplier resolves figures against a registry.
type Supplier struct {
	reg *registry.Registry
}

// NewSupplier creates a supplier over a populated registry.
func NewSupplier(reg *registry.Registry) *Supplier {
	return &Supplier{reg: reg}
}

// Registry returns the registry the supplier resolves against.
func (s *Supplier) Registry() *registry.Registry { return s.reg }

// LayoutAttributes returns the merged layout schema.
func (s *Supplier) LayoutAttributes() *schema.Container { return s.reg.LayoutAttributes() }

// TraceAttributes returns the schema of a trace type.
func (s *Supplier) TraceAttributes(traceType string) *schema.Container {
	return s.reg.TraceAttributes(traceType)
}

// SupplyOption tunes one Supply call.
type SupplyOption func(*figure.Context)

// WithUIDs sets the source of default trace uids.
func WithUIDs(uid func(i int) string) SupplyOption {
	return func(rc *figure.Context) { rc.NewUID = uid }
}

// Supply runs the full defaults-supply pipeline: layout globals, traces,
// trace-type layout attributes, then every component in registration order.
// The input figure is never modified.
func (s *Supplier) Supply(ctx context.Context, fig *figure.Figure, opts ...SupplyOption) (*figure.Resolved, error) {
	logger := ctxlog.FromContext(ctx)
	rc := figure.NewContext(ctx)
	for _, opt := range opts {
		opt(rc)
	}

	layoutIn := map[string]any{}
	var dataIn []map[string]any
	if fig != nil {
		if fig.Layout != nil {
			layoutIn = fig.Layout
		}
		dataIn = fig.Data
	}

	if raw, ok := layoutIn["template"]; ok && raw != nil {
		if t, valid := template.FromValue(raw); valid {
			rc.LayoutTemplate = t.Layout
			rc.DataTemplates = t.Data
		} else {
			logger.Debug("Ignoring malformed layout template.")
		}
	}

	layoutOut := map[string]any{}
	if err := s.supplyLayoutGlobals(rc, layoutIn, layoutOut); err != nil {
		return nil, err
	}

	fullData := make([]map[string]any, len(dataIn))
	for i, traceIn := range dataIn {
		traceOut, err := s.supplyTrace(rc, traceIn, i, layoutOut)
		if err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
		fullData[i] = traceOut
	}

	for _, tt := range s.reg.TraceTypes() {
		if tt.SupplyLayoutDefaults == nil || !hasVisibleOfType(fullData, tt.Name) {
			continue
		}
		if err := tt.SupplyLayoutDefaults(rc, layoutIn, layoutOut, fullData); err != nil {
			return nil, fmt.Errorf("trace type %s layout defaults: %w", tt.Name, err)
		}
	}

	for _, c := range s.reg.Components() {
		if err := c.SupplyLayoutDefaults(rc, layoutIn, layoutOut, fullData); err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Name, err)
		}
	}

	logger.Debug("Figure resolved.", "traces", len(fullData), "layout_keys", len(layoutOut))
	return &figure.Resolved{Data: fullData, Layout: layoutOut, Provenance: rc.Provenance}, nil
}

// Resolve is Supply with default options.
func (s *Supplier) Resolve(ctx context.Context, fig *figure.Figure) (*figure.Resolved, error) {
	return s.Supply(ctx, fig)
}

func (s *Supplier) supplyLayoutGlobals(rc *figure.Context, layoutIn, layoutOut map[string]any) error {
	c := layoututil.LayoutCoercer(rc, s.reg.LayoutAttributes(), layoutIn, layoutOut)

	font := c.CoerceFont("font", nil)
	c.Coerce("title.text", nil)
	c.Coerce("title.x", nil)
	c.Coerce("title.xanchor", nil)
	c.CoerceFont("title.font", map[string]any{
		"family": font["family"],
		"size":   scale(font["size"], 1.4),
		"color":  font["color"],
	})

	for _, attr := range []string{
		"paper_bgcolor", "plot_bgcolor", "autosize", "width", "height",
		"margin.l", "margin.r", "margin.t", "margin.b", "margin.pad", "margin.autoexpand",
		"colorway", "separators", "hovermode", "dragmode", "uirevision",
	} {
		c.Coerce(attr, nil)
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	return nil
}

func (s *Supplier) supplyTrace(rc *figure.Context, traceIn map[string]any, i int, layoutOut map[string]any) (map[string]any, error) {
	if traceIn == nil {
		traceIn = map[string]any{}
	}
	traceOut := map[string]any{"index": i}
	prefix := figure.TracePath(i)

	base := coerce.New(s.reg.BaseTraceAttributes(), traceIn, traceOut,
		coerce.WithProvenance(rc.Provenance, prefix),
		coerce.WithContext(rc.Context()),
	)
	typ, _ := base.Coerce("type", nil).(string)
	tt, known := s.reg.TraceType(typ)

	c := coerce.New(s.reg.TraceAttributes(typ), traceIn, traceOut,
		coerce.WithTemplate(rc.NextTraceTemplate(typ)),
		coerce.WithProvenance(rc.Provenance, prefix),
		coerce.WithContext(rc.Context()),
	)
	c.Coerce("uid", rc.NewUID(i))

	if !known {
		rc.Logger().Debug("Unknown trace type, hiding trace.", "trace", i, "type", typ)
		c.Set("visible", false)
		return traceOut, c.Err()
	}

	if visible := c.Coerce("visible", nil); visible == false {
		return traceOut, c.Err()
	}

	if err := tt.SupplyDefaults(rc, c, defaultColor(layoutOut, i), layoutOut); err != nil {
		return nil, err
	}
	if traceOut["visible"] == false {
		// The type found nothing to draw, e.g. no data.
		layoututil.Hide(c, "type", "uid", "index")
		return traceOut, c.Err()
	}

	if tt.HasLegend {
		c.Coerce("showlegend", nil)
		c.Coerce("legend", nil)
		c.Coerce("legendgroup", nil)
		c.Coerce("legendrank", nil)
	}
	c.Coerce("name", nil)
	c.Coerce("opacity", nil)
	if tt.Cartesian {
		c.Coerce("xaxis", nil)
		c.Coerce("yaxis", nil)
	}
	return traceOut, c.Err()
}

// defaultColor picks the colorway entry for trace i.
func defaultColor(layoutOut map[string]any, i int) string {
	colorway, _ := layoutOut["colorway"].([]any)
	if len(colorway) == 0 {
		return "#444"
	}
	c, _ := colorway[i%len(colorway)].(string)
	return c
}

func hasVisibleOfType(fullData []map[string]any, typ string) bool {
	for _, trace := range fullData {
		if trace["type"] == typ && figure.IsVisible(trace) {
			return true
		}
	}
	return false
}

func scale(v any, factor float64) any {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return f * factor
}
