package plots_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/plots"
	"github.com/specialistvlad/figcore/internal/registry"
	"github.com/specialistvlad/figcore/internal/testutil"
	"github.com/specialistvlad/figcore/modules/axes"
	"github.com/specialistvlad/figcore/modules/bar"
	"github.com/specialistvlad/figcore/modules/legend"
	"github.com/specialistvlad/figcore/modules/scatter"
	"github.com/specialistvlad/figcore/modules/updatemenus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplier(t *testing.T, extra ...registry.Module) *plots.Supplier {
	t.Helper()
	modules := append([]registry.Module{
		&scatter.Module{}, &bar.Module{}, &axes.Module{}, &legend.Module{}, &updatemenus.Module{},
	}, extra...)
	return testutil.NewSupplier(t, modules...)
}

func twoBars() *figure.Figure {
	return &figure.Figure{
		Data: []map[string]any{
			{"type": "bar", "name": "a", "y": []any{1.0, 2.0}},
			{"type": "bar", "name": "b", "y": []any{3.0, 4.0}},
		},
		Layout: map[string]any{"title": map[string]any{"text": "Sales"}},
	}
}

func TestSupply_LayoutGlobals(t *testing.T) {
	r := testutil.MustResolve(t, newSupplier(t), &figure.Figure{
		Layout: map[string]any{"font": map[string]any{"size": 10.0}, "width": 5.0},
	})

	assert.Equal(t, 10.0, testutil.Get(t, r.Layout, "font.size"))
	assert.Equal(t, "#444", testutil.Get(t, r.Layout, "font.color"))
	assert.InDelta(t, 14.0, testutil.Get(t, r.Layout, "title.font.size"), 1e-9, "title font scales the global one")
	assert.Equal(t, 700.0, r.Layout["width"], "too small widths fall back")
	assert.Equal(t, 0.5, testutil.Get(t, r.Layout, "title.x"))
	assert.Nil(t, testutil.Get(t, r.Layout, "title.text"))
	assert.NotContains(t, r.Layout, "template")
	testutil.AssertSource(t, r, "layout.font.size", figure.SourceUser)
	testutil.AssertSource(t, r, "layout.width", figure.SourceDefault)
}

func TestSupply_TraceBasics(t *testing.T) {
	r := testutil.MustResolve(t, newSupplier(t), &figure.Figure{Data: []map[string]any{
		{"y": []any{1.0}},
		{"type": "violin", "y": []any{1.0}, "name": "v"},
		{"type": "bar", "y": []any{1.0}, "visible": "legendonly", "opacity": 2.0},
		nil,
	}})

	require.Len(t, r.Data, 4)
	assert.Equal(t, "scatter", r.Data[0]["type"], "type defaults to scatter")
	assert.Equal(t, 0, r.Data[0]["index"])
	assert.Equal(t, "uid-0", r.Data[0]["uid"])
	assert.Equal(t, "x", r.Data[0]["xaxis"])

	assert.Equal(t, false, r.Data[1]["visible"], "unknown trace types are hidden")
	assert.NotContains(t, r.Data[1], "name")

	assert.Equal(t, "legendonly", r.Data[2]["visible"])
	assert.Equal(t, 1.0, r.Data[2]["opacity"], "out of range opacity falls back")

	assert.Equal(t, "scatter", r.Data[3]["type"])
	assert.Equal(t, false, r.Data[3]["visible"], "a trace without data is hidden")
}

func TestSupply_DoesNotModifyInput(t *testing.T) {
	fig := twoBars()
	fig.Layout["template"] = map[string]any{
		"data": map[string]any{"bar": []any{map[string]any{"marker": map[string]any{"color": "red"}}}},
	}
	before := fig.Clone()

	testutil.MustResolve(t, newSupplier(t), fig)

	if diff := cmp.Diff(before, fig); diff != "" {
		t.Errorf("input figure changed (-before +after):\n%s", diff)
	}
}

func TestSupply_Deterministic(t *testing.T) {
	s := newSupplier(t)
	first := testutil.MustResolve(t, s, twoBars())
	second := testutil.MustResolve(t, s, twoBars())

	if diff := cmp.Diff(first.Data, second.Data); diff != "" {
		t.Errorf("data differs between runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Layout, second.Layout); diff != "" {
		t.Errorf("layout differs between runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Provenance, second.Provenance); diff != "" {
		t.Errorf("provenance differs between runs (-first +second):\n%s", diff)
	}
}

func TestSupply_TraceTemplatesCycle(t *testing.T) {
	fig := &figure.Figure{
		Data: []map[string]any{
			{"type": "bar", "y": []any{1.0}},
			{"type": "scatter", "y": []any{1.0}},
			{"type": "bar", "y": []any{1.0}},
			{"type": "bar", "y": []any{1.0}, "marker": map[string]any{"color": "black"}},
		},
		Layout: map[string]any{"template": map[string]any{
			"data": map[string]any{"bar": []any{
				map[string]any{"marker": map[string]any{"color": "red"}},
				map[string]any{"marker": map[string]any{"color": "blue"}},
			}},
		}},
	}
	r := testutil.MustResolve(t, newSupplier(t), fig)

	assert.Equal(t, "red", testutil.Get(t, r.Data[0], "marker.color"))
	assert.Equal(t, "#ff7f0e", testutil.Get(t, r.Data[1], "marker.color"), "other types keep their defaults")
	assert.Equal(t, "blue", testutil.Get(t, r.Data[2], "marker.color"))
	assert.Equal(t, "black", testutil.Get(t, r.Data[3], "marker.color"), "user values win over the template")
	testutil.AssertSource(t, r, "data[0].marker.color", figure.SourceTemplate)
	testutil.AssertSource(t, r, "data[3].marker.color", figure.SourceUser)
}

func TestSupply_ComponentErrorsAreWrapped(t *testing.T) {
	failing := &testutil.SimpleModule{Component: &registry.Component{
		Name:       "broken",
		Attributes: nil,
		SupplyLayoutDefaults: func(rc *figure.Context, layoutIn, layoutOut map[string]any, fullData []map[string]any) error {
			return assert.AnError
		},
	}}
	s := newSupplier(t, failing)

	result := testutil.Resolve(t, s, twoBars())
	require.ErrorIs(t, result.Err, assert.AnError)
	require.Contains(t, result.Err.Error(), "component broken")
	require.Nil(t, result.Resolved)
}
