package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Node is one attribute schema node. It is implemented by *Leaf, *Container
// and *ArrayContainer only.
type Node interface {
	NodeName() string
	EditType() EditType
	node()
}

// EditType is a `+`-joined list of recomputation flags, e.g. "calc+clearAxisTypes".
type EditType string

// Flags splits the edit type into its individual flag names.
func (e EditType) Flags() []string {
	if e == "" {
		return nil
	}
	parts := strings.Split(string(e), "+")
	flags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			flags = append(flags, p)
		}
	}
	return flags
}

// Has reports whether flag is one of the edit type's flags.
func (e EditType) Has(flag string) bool {
	for _, f := range e.Flags() {
		if f == flag {
			return true
		}
	}
	return false
}

// IsPrivate reports whether a child name denotes internal bookkeeping.
func IsPrivate(name string) bool {
	return strings.HasPrefix(name, "_")
}

// Leaf describes a single configurable value.
type Leaf struct {
	Name        string
	ValType     ValType
	Description string
	Edit        EditType

	// Default is the static default, already converted to its Go shape
	// (float64, string, bool, []any, map[string]any). Nil means none.
	Default any

	Min, Max *float64
	Values   []any    // enumerated: allowed values
	Flags    []string // flaglist: combinable flags
	Extras   []string // flaglist: values that stand alone
	Base     string   // subplotid: id base, e.g. "x" or "legend"

	// ArrayOk allows a per-item array in place of a scalar.
	ArrayOk bool
	// Items describes each position of an info_array.
	Items      []*Leaf
	FreeLength bool

	NoBlank bool
	Strict  bool

	// ImpliedEdits are applied to sibling attributes when this attribute is
	// changed through the mutation API. Keys are paths relative to the
	// parent container; a nil value deletes.
	ImpliedEdits map[string]any

	// NoTemplate marks attributes a template never supplies or captures,
	// like trace names and uids.
	NoTemplate bool
}

func (l *Leaf) NodeName() string   { return l.Name }
func (l *Leaf) EditType() EditType { return l.Edit }
func (l *Leaf) node()              {}

// ItemAt returns the info_array item schema for position i.
func (l *Leaf) ItemAt(i int) (*Leaf, bool) {
	if len(l.Items) == 0 || i < 0 {
		return nil, false
	}
	if i < len(l.Items) {
		return l.Items[i], true
	}
	if l.FreeLength {
		return l.Items[len(l.Items)-1], true
	}
	return nil, false
}

// Container is a named group of child attributes.
type Container struct {
	Name        string
	Description string
	Edit        EditType
	// Numbered containers also answer to name2, name3, ... (xaxis2, legend3).
	Numbered bool

	children map[string]Node
	order    []string
}

// NewContainer creates an empty container.
func NewContainer(name string) *Container {
	return &Container{Name: name, children: make(map[string]Node)}
}

func (c *Container) NodeName() string   { return c.Name }
func (c *Container) EditType() EditType { return c.Edit }
func (c *Container) node()              {}

// Add appends a child. Adding two children with the same name is a
// programmer error.
func (c *Container) Add(n Node) *Container {
	name := n.NodeName()
	if _, exists := c.children[name]; exists {
		panic(fmt.Sprintf("schema: container %q already has a child named %q", c.Name, name))
	}
	if c.children == nil {
		c.children = make(map[string]Node)
	}
	c.children[name] = n
	c.order = append(c.order, name)
	return c
}

// Has reports whether the container has an exact child of that name.
func (c *Container) Has(name string) bool {
	_, ok := c.children[name]
	return ok
}

// Child looks up a child by name. Numbered children also match their
// numbered ids: "xaxis2" finds a numbered "xaxis".
func (c *Container) Child(name string) (Node, bool) {
	if n, ok := c.children[name]; ok {
		return n, true
	}
	base, ok := SplitNumberedID(name)
	if !ok {
		return nil, false
	}
	n, ok := c.children[base]
	if !ok {
		return nil, false
	}
	if numbered, isContainer := n.(*Container); isContainer && numbered.Numbered {
		return n, true
	}
	return nil, false
}

// Names returns the child names in declaration order.
func (c *Container) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Children returns the child nodes in declaration order.
func (c *Container) Children() []Node {
	out := make([]Node, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.children[name])
	}
	return out
}

// Leaf returns a direct child leaf, or nil.
func (c *Container) Leaf(name string) *Leaf {
	n, _ := c.Child(name)
	l, _ := n.(*Leaf)
	return l
}

// Sub returns a direct child container, or nil.
func (c *Container) Sub(name string) *Container {
	n, _ := c.Child(name)
	sub, _ := n.(*Container)
	return sub
}

// Array returns a direct child array container, or nil.
func (c *Container) Array(name string) *ArrayContainer {
	n, _ := c.Child(name)
	arr, _ := n.(*ArrayContainer)
	return arr
}

// Renamed returns a shallow copy of the container under a new name. The
// children are shared; schemas are immutable, so that is safe.
func (c *Container) Renamed(name string) *Container {
	cp := *c
	cp.Name = name
	return &cp
}

// Merge returns a new container holding the children of c followed by
// those of other. Names present in both are reported as conflicts and keep
// c's definition.
func (c *Container) Merge(other *Container) (*Container, []string) {
	merged := NewContainer(c.Name)
	merged.Description = c.Description
	merged.Edit = c.Edit
	merged.Numbered = c.Numbered
	for _, n := range c.Children() {
		merged.Add(n)
	}
	var conflicts []string
	if other == nil {
		return merged, nil
	}
	for _, n := range other.Children() {
		if merged.Has(n.NodeName()) {
			conflicts = append(conflicts, n.NodeName())
			continue
		}
		merged.Add(n)
	}
	return merged, conflicts
}

// ArrayContainer is a growable, index-keyed list of homogeneous sub-trees.
type ArrayContainer struct {
	Name        string
	Description string
	Edit        EditType
	Item        *Container
}

func (a *ArrayContainer) NodeName() string   { return a.Name }
func (a *ArrayContainer) EditType() EditType { return a.Edit }
func (a *ArrayContainer) node()              {}

// DefaultsKey is the name of the template entry applied to every item of
// the array: "updatemenus" -> "updatemenudefaults".
func (a *ArrayContainer) DefaultsKey() string {
	return DefaultsKey(a.Name)
}

// DefaultsKey computes the template defaults key for an array name.
func DefaultsKey(arrayName string) string {
	return strings.TrimSuffix(arrayName, "s") + "defaults"
}

var numberedID = regexp.MustCompile(`^([a-z]+)([2-9]|[1-9][0-9]+)$`)

// SplitNumberedID splits "xaxis2" into "xaxis". It reports false for bare
// bases and for invalid numbers like "xaxis1" or "xaxis01".
func SplitNumberedID(id string) (string, bool) {
	m := numberedID.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	return m[1], true
}
