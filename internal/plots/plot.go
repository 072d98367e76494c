package plots

import (
	"context"
	"fmt"

	"github.com/specialistvlad/figcore/internal/figure"
)

// Plot owns one figure: a private copy of the user input and its resolved
// configuration. Mutations patch the input copy and re-supply. A Plot is
// not safe for concurrent use.
type Plot struct {
	supplier *Supplier
	input    *figure.Figure
	resolved *figure.Resolved
	uids     map[int]string
}

// NewPlot resolves fig and returns a Plot owning a copy of it.
func NewPlot(ctx context.Context, s *Supplier, fig *figure.Figure) (*Plot, error) {
	p := &Plot{
		supplier: s,
		input:    fig.Clone(),
		uids:     map[int]string{},
	}
	if err := p.resupply(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Resolved returns the current resolved configuration. Callers must not
// modify it.
func (p *Plot) Resolved() *figure.Resolved { return p.resolved }

// Input returns a copy of the current user input.
func (p *Plot) Input() *figure.Figure { return p.input.Clone() }

// uid keeps generated trace uids stable across re-supply.
func (p *Plot) uid(i int) string {
	if id, ok := p.uids[i]; ok {
		return id
	}
	id := figure.NewUID()
	p.uids[i] = id
	return id
}

func (p *Plot) resupply(ctx context.Context) error {
	resolved, err := p.supplier.Supply(ctx, p.input, WithUIDs(p.uid))
	if err != nil {
		return fmt.Errorf("failed to resolve figure: %w", err)
	}
	p.resolved = resolved
	return nil
}
