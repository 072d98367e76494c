package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/figcore/internal/coerce"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/schema"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// SupplyLayoutFunc is a defaults-supply routine for layout attributes. It
// reads the sparse layoutIn and writes into layoutOut. fullData holds the
// already resolved traces.
type SupplyLayoutFunc func(rc *figure.Context, layoutIn, layoutOut map[string]any, fullData []map[string]any) error

// SupplyTraceFunc is a trace type's defaults-supply routine. c coerces
// against the type's trace schema with the trace's template applied.
type SupplyTraceFunc func(rc *figure.Context, c *coerce.Coercer, defaultColor string, layoutOut map[string]any) error

// Component is a layout-level visual component.
type Component struct {
	Name string
	// Attributes holds the root-level layout attributes the component owns,
	// e.g. "showlegend" and the numbered "legend" container.
	Attributes           *schema.Container
	SupplyLayoutDefaults SupplyLayoutFunc
}

// TraceType is a kind of data series.
type TraceType struct {
	Name           string
	Attributes     *schema.Container
	HasLegend      bool
	Cartesian      bool
	SupplyDefaults SupplyTraceFunc

	// LayoutAttributes and SupplyLayoutDefaults are optional. The layout
	// routine only runs when a visible trace of this type exists.
	LayoutAttributes     *schema.Container
	SupplyLayoutDefaults SupplyLayoutFunc
}

// Registry holds the registered components and trace types of a single
// application instance. It is read-only once registration is complete.
type Registry struct {
	baseTrace  *schema.Container
	layout     *schema.Container
	components []*Component
	byName     map[string]*Component
	traceTypes map[string]*TraceType
	traceOrder []string
	traceAttrs map[string]*schema.Container
	conflicts  []string
}

// New creates a registry over the base layout and base trace schemas.
func New(baseLayout, baseTrace *schema.Container) *Registry {
	return &Registry{
		baseTrace:  baseTrace,
		layout:     baseLayout,
		byName:     make(map[string]*Component),
		traceTypes: make(map[string]*TraceType),
		traceAttrs: make(map[string]*schema.Container),
	}
}

// RegisterComponent registers a layout component. Registering two components
// with the same name is a programmer error.
func (r *Registry) RegisterComponent(c *Component) {
	if _, exists := r.byName[c.Name]; exists {
		panic(fmt.Sprintf("component with name '%s' already registered", c.Name))
	}
	slog.Debug("Registering component.", "name", c.Name)
	r.byName[c.Name] = c
	r.components = append(r.components, c)
	r.mergeLayout(c.Name, c.Attributes)
}

// RegisterTraceType registers a trace type. Registering two types with the
// same name is a programmer error.
func (r *Registry) RegisterTraceType(t *TraceType) {
	if _, exists := r.traceTypes[t.Name]; exists {
		panic(fmt.Sprintf("trace type with name '%s' already registered", t.Name))
	}
	slog.Debug("Registering trace type.", "name", t.Name)
	r.traceTypes[t.Name] = t
	r.traceOrder = append(r.traceOrder, t.Name)

	merged, conflicts := r.baseTrace.Merge(t.Attributes)
	for _, name := range conflicts {
		r.conflicts = append(r.conflicts, fmt.Sprintf("trace type '%s': attribute '%s' is already defined by the base trace attributes", t.Name, name))
	}
	r.traceAttrs[t.Name] = merged
	r.mergeLayout("trace type "+t.Name, t.LayoutAttributes)
}

func (r *Registry) mergeLayout(owner string, attrs *schema.Container) {
	if attrs == nil {
		return
	}
	merged, conflicts := r.layout.Merge(attrs)
	for _, name := range conflicts {
		r.conflicts = append(r.conflicts, fmt.Sprintf("%s: layout attribute '%s' is already defined", owner, name))
	}
	r.layout = merged
}

// Components returns the components in registration order.
func (r *Registry) Components() []*Component {
	out := make([]*Component, len(r.components))
	copy(out, r.components)
	return out
}

// Component looks up a component by name.
func (r *Registry) Component(name string) (*Component, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// TraceType looks up a trace type by name.
func (r *Registry) TraceType(name string) (*TraceType, bool) {
	t, ok := r.traceTypes[name]
	return t, ok
}

// TraceTypes returns the trace types in registration order.
func (r *Registry) TraceTypes() []*TraceType {
	out := make([]*TraceType, 0, len(r.traceOrder))
	for _, name := range r.traceOrder {
		out = append(out, r.traceTypes[name])
	}
	return out
}

// LayoutAttributes returns the merged layout schema.
func (r *Registry) LayoutAttributes() *schema.Container {
	return r.layout
}

// BaseTraceAttributes returns the attributes every trace type shares.
func (r *Registry) BaseTraceAttributes() *schema.Container {
	return r.baseTrace
}

// TraceAttributes returns the full schema of a trace type, or the base trace
// schema for unknown types.
func (r *Registry) TraceAttributes(traceType string) *schema.Container {
	if attrs, ok := r.traceAttrs[traceType]; ok {
		return attrs
	}
	return r.baseTrace
}
