package template_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/plots"
	"github.com/specialistvlad/figcore/internal/template"
	"github.com/specialistvlad/figcore/internal/testutil"
	"github.com/specialistvlad/figcore/modules/axes"
	"github.com/specialistvlad/figcore/modules/bar"
	"github.com/specialistvlad/figcore/modules/legend"
	"github.com/specialistvlad/figcore/modules/scatter"
	"github.com/specialistvlad/figcore/modules/updatemenus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplier(t *testing.T) *plots.Supplier {
	t.Helper()
	return testutil.NewSupplier(t,
		&scatter.Module{}, &bar.Module{}, &axes.Module{}, &legend.Module{}, &updatemenus.Module{},
	)
}

func styledFigure(t *testing.T) *figure.Figure {
	return testutil.FigureYAML(t, `
		data:
		  - type: bar
		    name: a
		    y: [1, 2]
		    marker:
		      color: red
		      line:
		        width: 2
		  - type: bar
		    y: [1]
		    marker:
		      color: [red, blue]
		  - type: scatter
		    y: [1]
		    line:
		      width: 3
		layout:
		  title:
		    text: Sales
		    font:
		      color: blue
		  font:
		    size: 14
		  paper_bgcolor: "#fafafa"
		  legend:
		    bgcolor: "#eee"
		  xaxis:
		    range: [0, 1]
		    gridcolor: "#ccc"
		  updatemenus:
		    - name: main
		      bgcolor: "#abc"
		      buttons:
		        - method: relayout
		          args: [title.text, x]
		    - bgcolor: "#def"
		      buttons:
		        - method: relayout
		          args: [title.text, y]
	`)
}

func TestMake_CapturesStyleOnly(t *testing.T) {
	got, err := template.Make(context.Background(), newSupplier(t), styledFigure(t))
	require.NoError(t, err)

	wantData := map[string][]map[string]any{
		"bar": {
			{"marker": map[string]any{"color": "red", "line": map[string]any{"width": 2.0}}},
			{},
		},
		"scatter": {
			{"line": map[string]any{"width": 3.0}},
		},
	}
	if diff := cmp.Diff(wantData, got.Data); diff != "" {
		t.Errorf("template data mismatch (-want +got):\n%s", diff)
	}

	wantLayout := map[string]any{
		"title":         map[string]any{"text": "Sales", "font": map[string]any{"color": "blue"}},
		"paper_bgcolor": "#fafafa",
		"legend":        map[string]any{"bgcolor": "#eee"},
		"xaxis":         map[string]any{"gridcolor": "#ccc"},
		"updatemenus":   []any{map[string]any{"name": "main", "bgcolor": "#abc"}},
	}
	if diff := cmp.Diff(wantLayout, got.Layout); diff != "" {
		t.Errorf("template layout mismatch (-want +got):\n%s", diff)
	}
}

func TestMake_InvalidValuesAreNotCaptured(t *testing.T) {
	fig := &figure.Figure{
		Data:   []map[string]any{{"type": "bar", "y": []any{1.0}, "marker": map[string]any{"color": "not-a-color"}}},
		Layout: map[string]any{"paper_bgcolor": 12.0},
	}
	got, err := template.Make(context.Background(), newSupplier(t), fig)
	require.NoError(t, err)

	assert.Equal(t, []map[string]any{{}}, got.Data["bar"])
	assert.Empty(t, got.Layout)
	assert.True(t, got.Empty())
}

func TestMake_ThenApply(t *testing.T) {
	s := newSupplier(t)
	tmpl, err := template.Make(context.Background(), s, styledFigure(t))
	require.NoError(t, err)

	bare := &figure.Figure{Data: []map[string]any{
		{"type": "bar", "y": []any{4.0}},
		{"type": "bar", "y": []any{5.0}},
		{"type": "bar", "y": []any{6.0}},
	}}
	applied := template.Apply(bare, tmpl, s)
	r := testutil.MustResolve(t, s, applied)

	assert.Equal(t, "red", testutil.Get(t, r.Data[0], "marker.color"))
	assert.Equal(t, 2.0, testutil.Get(t, r.Data[0], "marker.line.width"))
	assert.Equal(t, "#ff7f0e", testutil.Get(t, r.Data[1], "marker.color"), "the empty entry keeps defaults")
	assert.Equal(t, "red", testutil.Get(t, r.Data[2], "marker.color"), "entries cycle")
	assert.Equal(t, "#fafafa", r.Layout["paper_bgcolor"])
	assert.Equal(t, "#eee", testutil.Get(t, r.Layout, "legend.bgcolor"))
	assert.Equal(t, "main", testutil.Get(t, r.Layout, "updatemenus[0].templateitemname"))

	// Applying the same template through layout.template gives the same result.
	viaLayout := bare.Clone()
	viaLayout.Layout["template"] = tmpl.ToMap()
	r2 := testutil.MustResolve(t, s, viaLayout)
	assert.Equal(t, r.Data[0]["marker"], r2.Data[0]["marker"])
	assert.Equal(t, r.Layout["paper_bgcolor"], r2.Layout["paper_bgcolor"])
}

func TestApply(t *testing.T) {
	s := newSupplier(t)
	tmpl := template.New()
	tmpl.Data["bar"] = []map[string]any{{"marker": map[string]any{"color": "red"}, "opacity": 0.5}}
	tmpl.Layout = map[string]any{
		"paper_bgcolor": "#000",
		"legend":        map[string]any{"bgcolor": "gray"},
		"unknown":       "ignored",
	}

	fig := &figure.Figure{
		Data: []map[string]any{
			{"type": "bar", "marker": map[string]any{"color": "blue"}},
			{"type": "scatter"},
		},
		Layout: map[string]any{
			"paper_bgcolor": "#fff",
			"legend2":       map[string]any{"x": 0.1},
			"template":      map[string]any{"layout": map[string]any{}},
		},
	}
	before := fig.Clone()

	got := template.Apply(fig, tmpl, s)

	assert.Equal(t, map[string]any{"type": "bar", "marker": map[string]any{"color": "blue"}, "opacity": 0.5}, got.Data[0])
	assert.Equal(t, map[string]any{"type": "scatter"}, got.Data[1])
	assert.Equal(t, "#fff", got.Layout["paper_bgcolor"], "figure values win")
	assert.Equal(t, map[string]any{"bgcolor": "gray"}, got.Layout["legend"])
	assert.Equal(t, map[string]any{"x": 0.1, "bgcolor": "gray"}, got.Layout["legend2"], "numbered instances use the base entry")
	assert.NotContains(t, got.Layout, "unknown")
	assert.NotContains(t, got.Layout, "template")

	if diff := cmp.Diff(before, fig); diff != "" {
		t.Errorf("Apply modified its input (-before +after):\n%s", diff)
	}
}

func TestApply_NumberedInstancesAreNotCreated(t *testing.T) {
	s := newSupplier(t)
	tmpl := template.New()
	tmpl.Layout = map[string]any{
		"xaxis":  map[string]any{"gridcolor": "#111"},
		"xaxis2": map[string]any{"gridcolor": "#222"},
	}

	t.Run("single axis figure", func(t *testing.T) {
		fig := &figure.Figure{Data: []map[string]any{{"type": "scatter", "y": []any{1.0, 2.0}}}}

		applied := template.Apply(fig, tmpl, s)
		assert.NotContains(t, applied.Layout, "xaxis2")
		assert.Equal(t, map[string]any{"gridcolor": "#111"}, applied.Layout["xaxis"])

		r := testutil.MustResolve(t, s, applied)
		testutil.AssertRegistered(t, r.Layout, "_xaxes", "xaxis")

		viaLayout := fig.Clone()
		viaLayout.Layout = map[string]any{"template": tmpl.ToMap()}
		r2 := testutil.MustResolve(t, s, viaLayout)
		assert.Equal(t, r2.Layout["_xaxes"], r.Layout["_xaxes"])
	})

	t.Run("existing numbered instance is styled", func(t *testing.T) {
		fig := &figure.Figure{Layout: map[string]any{"xaxis2": map[string]any{"title": map[string]any{"text": "b"}}}}

		applied := template.Apply(fig, tmpl, s)
		assert.Equal(t, map[string]any{"title": map[string]any{"text": "b"}, "gridcolor": "#222"}, applied.Layout["xaxis2"])
	})
}

func TestApply_ArrayContainers(t *testing.T) {
	s := newSupplier(t)
	tmpl := template.New()
	tmpl.Layout = map[string]any{
		"updatemenus":        []any{map[string]any{"name": "a", "bgcolor": "red"}},
		"updatemenudefaults": map[string]any{"bordercolor": "blue"},
	}

	t.Run("live items", func(t *testing.T) {
		fig := &figure.Figure{Layout: map[string]any{"updatemenus": []any{
			map[string]any{"templateitemname": "a"},
			map[string]any{"templateitemname": "missing"},
			map[string]any{"x": 0.5},
		}}}
		got := template.Apply(fig, tmpl, s)

		want := []any{
			map[string]any{"templateitemname": "a", "bgcolor": "red", "bordercolor": "blue"},
			map[string]any{"templateitemname": "missing", "visible": false},
			map[string]any{"x": 0.5, "bordercolor": "blue"},
		}
		if diff := cmp.Diff(want, got.Layout["updatemenus"]); diff != "" {
			t.Errorf("updatemenus mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unused named entries are appended", func(t *testing.T) {
		got := template.Apply(&figure.Figure{}, tmpl, s)

		want := []any{map[string]any{"templateitemname": "a", "bgcolor": "red", "bordercolor": "blue"}}
		if diff := cmp.Diff(want, got.Layout["updatemenus"]); diff != "" {
			t.Errorf("updatemenus mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("same-named invisible item suppresses", func(t *testing.T) {
		fig := &figure.Figure{Layout: map[string]any{"updatemenus": []any{
			map[string]any{"name": "a", "visible": false},
		}}}
		got := template.Apply(fig, tmpl, s)
		assert.Len(t, got.Layout["updatemenus"], 1)
	})
}

func TestApply_NilTemplate(t *testing.T) {
	fig := &figure.Figure{Layout: map[string]any{"template": map[string]any{}, "width": 500.0}}
	got := template.Apply(fig, nil, newSupplier(t))
	assert.Equal(t, map[string]any{"width": 500.0}, got.Layout)
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr string
	}{
		{
			name:  "yaml",
			input: "data:\n  bar:\n    - marker: {color: red}\nlayout:\n  paper_bgcolor: '#000'\n",
			want: map[string]any{
				"data":   map[string]any{"bar": []any{map[string]any{"marker": map[string]any{"color": "red"}}}},
				"layout": map[string]any{"paper_bgcolor": "#000"},
			},
		},
		{
			name:  "json",
			input: `{"layout": {"font": {"size": 10}}}`,
			want: map[string]any{
				"data":   map[string]any{},
				"layout": map[string]any{"font": map[string]any{"size": 10.0}},
			},
		},
		{
			name:  "empty document",
			input: "",
			want:  map[string]any{"data": map[string]any{}, "layout": map[string]any{}},
		},
		{
			name:    "wrong shape",
			input:   "data: 5\n",
			wantErr: "template must have the shape",
		},
		{
			name:    "not a document",
			input:   "[1, 2",
			wantErr: "failed to decode template",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := template.Decode(strings.NewReader(tc.input))
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got.ToMap()); diff != "" {
				t.Errorf("decoded template mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteThenDecode(t *testing.T) {
	tmpl := template.New()
	tmpl.Data["scatter"] = []map[string]any{{"line": map[string]any{"width": 3.0}}, {}}
	tmpl.Layout = map[string]any{"updatemenus": []any{map[string]any{"name": "main", "bgcolor": "#abc"}}}

	for _, write := range []struct {
		name string
		fn   func(*bytes.Buffer) error
	}{
		{"yaml", func(b *bytes.Buffer) error { return tmpl.WriteYAML(b) }},
		{"json", func(b *bytes.Buffer) error { return tmpl.WriteJSON(b) }},
	} {
		t.Run(write.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, write.fn(&buf))

			got, err := template.Decode(&buf)
			require.NoError(t, err)
			if diff := cmp.Diff(tmpl.ToMap(), got.ToMap()); diff != "" {
				t.Errorf("template changed on the way through %s (-want +got):\n%s", write.name, diff)
			}
		})
	}
}
