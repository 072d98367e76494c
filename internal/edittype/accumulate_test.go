package edittype

import (
	"context"
	"testing"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/schema"
	"github.com/stretchr/testify/assert"
)

func layoutSchema() *schema.Container {
	font := schema.NewContainer("font")
	font.Add(&schema.Leaf{Name: "size", ValType: schema.Number, Edit: "legend"})
	font.Add(&schema.Leaf{Name: "color", ValType: schema.Color, Edit: "legend"})

	legend := &schema.Container{Name: "legend", Numbered: true}
	legend.Add(&schema.Leaf{Name: "x", ValType: schema.Number, Edit: "legend"})
	legend.Add(&schema.Leaf{Name: "bgcolor", ValType: schema.Color, Edit: "legend+layoutstyle"})
	legend.Add(font)
	legend.Add(&schema.Leaf{Name: "_id", ValType: schema.String, Edit: "calc"})

	axis := &schema.Container{Name: "xaxis", Numbered: true}
	axis.Add(&schema.Leaf{Name: "range", ValType: schema.InfoArray, Edit: "axrange", Items: []*schema.Leaf{
		{Name: "range[0]", ValType: schema.Any, Edit: "axrange"},
		{Name: "range[1]", ValType: schema.Any, Edit: "axrange"},
	}})
	axis.Add(&schema.Leaf{Name: "ticklen", ValType: schema.Number, Edit: "ticks"})
	axis.Add(&schema.Leaf{Name: "title", ValType: schema.String})

	button := schema.NewContainer("buttons")
	button.Add(&schema.Leaf{Name: "label", ValType: schema.String, Edit: "arraydraw"})
	menu := schema.NewContainer("updatemenus")
	menu.Add(&schema.Leaf{Name: "x", ValType: schema.Number, Edit: "arraydraw"})
	menu.Add(&schema.ArrayContainer{Name: "buttons", Item: button})

	axisWithEdit := *axis
	axisWithEdit.Edit = "plot"

	root := schema.NewContainer("layout")
	root.Add(legend)
	root.Add(axisWithEdit.Renamed("yaxis"))
	root.Add(axis)
	root.Add(&schema.ArrayContainer{Name: "updatemenus", Edit: "arraydraw", Item: menu})
	root.Add(&schema.Leaf{Name: "dragmode", ValType: schema.Any, Edit: "modebar+none"})
	return root
}

func paths(raw ...string) []attrpath.Path {
	out := make([]attrpath.Path, len(raw))
	for i, r := range raw {
		out[i] = attrpath.MustParse(r)
	}
	return out
}

func TestForPaths(t *testing.T) {
	root := layoutSchema()
	cases := []struct {
		name  string
		paths []string
		want  []string
	}{
		{"leaf", []string{"legend.x"}, []string{"legend"}},
		{"composite", []string{"legend.bgcolor"}, []string{"legend", "layoutstyle"}},
		{"numbered", []string{"legend3.font.size"}, []string{"legend"}},
		{"container union skips private", []string{"legend"}, []string{"legend", "layoutstyle"}},
		{"container override", []string{"yaxis"}, []string{"plot"}},
		{"container union", []string{"xaxis2"}, []string{"ticks", "axrange"}},
		{"info array item", []string{"xaxis.range[1]"}, []string{"axrange"}},
		{"array item", []string{"updatemenus[2]"}, []string{"arraydraw"}},
		{"nested array item", []string{"updatemenus[0].buttons[1].label"}, []string{"arraydraw"}},
		{"none is inert", []string{"dragmode"}, []string{"modebar"}},
		{"unknown path", []string{"legend.nope"}, []string{"calc"}},
		{"private path", []string{"_legends"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flags := NewLayoutFlags()
			ForPaths(context.Background(), flags, root, paths(tc.paths...))
			assert.Equal(t, tc.want, flags.Names())
		})
	}
}

func TestForPaths_LeafWithoutEditTypeUsesAncestor(t *testing.T) {
	root := layoutSchema()
	flags := NewLayoutFlags()
	ForPaths(context.Background(), flags, root, paths("yaxis.title"))
	assert.Equal(t, []string{"plot"}, flags.Names())

	flags = NewLayoutFlags()
	ForPaths(context.Background(), flags, root, paths("xaxis.title"))
	assert.True(t, flags.Empty(), "no edit type anywhere on the path")
}

func TestForPaths_OrderIndependentAndIdempotent(t *testing.T) {
	root := layoutSchema()
	all := []string{"legend.x", "xaxis.range", "updatemenus[0].x", "legend.bgcolor", "nope"}

	forward := NewLayoutFlags()
	ForPaths(context.Background(), forward, root, paths(all...))

	backward := NewLayoutFlags()
	for i := len(all) - 1; i >= 0; i-- {
		ForPaths(context.Background(), backward, root, paths(all[i]))
	}
	ForPaths(context.Background(), backward, root, paths(all...))

	assert.Equal(t, forward.Map(), backward.Map())
}

func TestForPaths_UnionOfDisjointSets(t *testing.T) {
	root := layoutSchema()
	a := paths("legend.font.color", "xaxis.ticklen")
	b := paths("updatemenus[1]", "yaxis.range[0]")

	fa := NewLayoutFlags()
	ForPaths(context.Background(), fa, root, a)
	fb := NewLayoutFlags()
	ForPaths(context.Background(), fb, root, b)
	fab := NewLayoutFlags()
	ForPaths(context.Background(), fab, root, append(a, b...))

	assert.Equal(t, fab.Map(), fa.Union(fb).Map())
}

func TestVocabularies(t *testing.T) {
	trace := NewTraceFlags()
	Accumulate(trace, &schema.Leaf{Name: "visible", Edit: "calc+legend"})
	Accumulate(trace, &schema.Leaf{Name: "x", Edit: "ticks"})
	assert.Equal(t, []string{"calc", "legend"}, trace.Names(), "layout-only flags are ignored by trace sets")
	assert.True(t, trace.Has("legend"))
	assert.False(t, trace.Map()["style"])

	assert.True(t, IsTraceFlag("markerSize"))
	assert.False(t, IsTraceFlag("ticks"))
	assert.True(t, IsLayoutFlag("arraydraw"))
	assert.True(t, IsLayoutFlag("none"))
	assert.False(t, IsLayoutFlag("style"))
}

func TestStyleOnly(t *testing.T) {
	cases := map[schema.EditType]bool{
		"style":               true,
		"legend":              true,
		"layoutstyle+ticks":   true,
		"none":                false,
		"":                    false,
		"calc":                false,
		"plot+axrange":        false,
		"style+none":          true,
		"calc+clearAxisTypes": false,
	}
	for e, want := range cases {
		assert.Equal(t, want, StyleOnly(e), "edit type %q", e)
	}
}
