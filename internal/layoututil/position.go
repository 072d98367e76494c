package layoututil

// Anchor is a default screen position in paper coordinates.
type Anchor struct {
	X       float64
	XAnchor string
	Y       float64
	YAnchor string
}

// Placement holds the default anchors of a component for each orientation.
type Placement struct {
	Vertical   Anchor
	Horizontal Anchor
}

// Position coerces "orientation" and then x, xanchor, y and yanchor, whose
// defaults depend on the resolved orientation. Explicit positions are kept
// whatever the orientation. It returns the orientation.
func (inst *Instance) Position(p Placement) string {
	orientation, _ := inst.Coerce("orientation", nil).(string)
	a := p.Vertical
	if orientation == "h" {
		a = p.Horizontal
	}
	inst.Coerce("x", a.X)
	inst.Coerce("xanchor", a.XAnchor)
	inst.Coerce("y", a.Y)
	inst.Coerce("yanchor", a.YAnchor)
	return orientation
}
