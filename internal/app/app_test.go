package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/template"
	"github.com/specialistvlad/figcore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barsYAML = `
data:
  - type: bar
    name: a
    y: [1, 2]
    marker:
      color: red
  - type: bar
    name: b
    y: [3, 4]
layout:
  paper_bgcolor: "#fafafa"
  xaxis:
    range: [0, 1]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func decodeOutput(t *testing.T, out *testutil.SafeBuffer) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.String()), &got), "output must be JSON: %s", out.String())
	return got
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "minimal", cfg: Config{FigurePath: "fig.yaml"}},
		{name: "yaml output", cfg: Config{FigurePath: "fig.yaml", Output: "yaml"}},
		{name: "missing figure", cfg: Config{}, wantErr: "FigurePath is a required"},
		{name: "bad output", cfg: Config{FigurePath: "fig.yaml", Output: "xml"}, wantErr: `unsupported output format "xml"`},
		{name: "negative trace", cfg: Config{FigurePath: "fig.yaml", Traces: []int{-1}}, wantErr: "must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, []string{"json", "yaml"}, got.Output)
		})
	}
}

func TestNewApp_RegistersCoreModules(t *testing.T) {
	app, _, _ := SetupAppTest(t, &Config{FigurePath: "unused"})

	for _, name := range []string{"axes", "legend", "colorlegend", "sizelegend", "symbollegend", "updatemenus", "sliders"} {
		_, ok := app.Registry().Component(name)
		assert.True(t, ok, "component %s", name)
	}
	for _, name := range []string{"scatter", "bar"} {
		_, ok := app.Registry().TraceType(name)
		assert.True(t, ok, "trace type %s", name)
	}
}

func TestRun_ResolvesFigure(t *testing.T) {
	cfg := &Config{FigurePath: writeFile(t, "fig.yaml", barsYAML), Output: "json"}
	app, out, logs := SetupAppTest(t, cfg)

	require.NoError(t, app.Run(context.Background()))

	got := decodeOutput(t, out)
	fig, err := figure.FromMap(got)
	require.NoError(t, err)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "red", testutil.Get(t, fig.Data[0], "marker.color"))
	assert.Equal(t, "#fafafa", fig.Layout["paper_bgcolor"])
	assert.Equal(t, true, fig.Layout["showlegend"])
	assert.Equal(t, false, testutil.Get(t, fig.Layout, "xaxis.autorange"))
	assert.NotContains(t, fig.Layout, "_legends", "registries are not written")
	assert.Contains(t, logs.String(), "Figure loaded.")
}

func TestRun_AppliesEdits(t *testing.T) {
	cfg := &Config{
		FigurePath: writeFile(t, "fig.yaml", barsYAML),
		Output:     "json",
		Restyle:    map[string]any{"visible": false},
		Traces:     []int{1},
		Relayout:   map[string]any{"title.text": "Edited"},
	}
	app, out, logs := SetupAppTest(t, cfg)

	require.NoError(t, app.Run(context.Background()))

	fig, err := figure.FromMap(decodeOutput(t, out))
	require.NoError(t, err)
	assert.Equal(t, false, fig.Data[1]["visible"])
	assert.Equal(t, false, fig.Layout["showlegend"])
	assert.Equal(t, "Edited", testutil.Get(t, fig.Layout, "title.text"))
	assert.Contains(t, logs.String(), "Edits applied.")
}

func TestRun_TraceOutOfRange(t *testing.T) {
	cfg := &Config{
		FigurePath: writeFile(t, "fig.yaml", barsYAML),
		Output:     "json",
		Restyle:    map[string]any{"opacity": 0.5},
		Traces:     []int{5},
	}
	app, out, _ := SetupAppTest(t, cfg)

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace index 5 out of range")
	assert.Empty(t, out.String())
}

func TestRun_MakeTemplateThenApply(t *testing.T) {
	cfg := &Config{FigurePath: writeFile(t, "fig.yaml", barsYAML), Output: "yaml", MakeTemplate: true}
	app, out, _ := SetupAppTest(t, cfg)
	require.NoError(t, app.Run(context.Background()))

	tmplPath := writeFile(t, "template.yaml", out.String())
	tmpl, err := template.Load(tmplPath)
	require.NoError(t, err)
	assert.Equal(t, "#fafafa", tmpl.Layout["paper_bgcolor"])
	assert.NotContains(t, tmpl.Layout, "xaxis", "ranges are not style")
	require.Len(t, tmpl.Data["bar"], 2)

	bare := "data:\n  - type: bar\n    y: [5]\n"
	cfg = &Config{FigurePath: writeFile(t, "bare.yaml", bare), TemplatePath: tmplPath, Output: "json"}
	app, out, _ = SetupAppTest(t, cfg)
	require.NoError(t, app.Run(context.Background()))

	fig, err := figure.FromMap(decodeOutput(t, out))
	require.NoError(t, err)
	assert.Equal(t, "red", testutil.Get(t, fig.Data[0], "marker.color"))
	assert.Equal(t, "#fafafa", fig.Layout["paper_bgcolor"])
}

func TestRun_LoadErrors(t *testing.T) {
	t.Run("missing figure", func(t *testing.T) {
		app, _, _ := SetupAppTest(t, &Config{FigurePath: filepath.Join(t.TempDir(), "nope.yaml"), Output: "json"})
		err := app.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load figure")
	})

	t.Run("bad template", func(t *testing.T) {
		cfg := &Config{
			FigurePath:   writeFile(t, "fig.yaml", barsYAML),
			TemplatePath: writeFile(t, "template.yaml", "data: 5\n"),
			Output:       "json",
		}
		app, _, _ := SetupAppTest(t, cfg)
		err := app.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load template")
	})
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		level, format string
		wantDebug     bool
		wantJSON      bool
	}{
		{level: "debug", format: "text", wantDebug: true},
		{level: "warn", format: "json", wantJSON: true},
		{level: "loud", format: "text"},
	}

	for _, tc := range testCases {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			buf := &testutil.SafeBuffer{}
			logger := newLogger(tc.level, tc.format, buf)
			logger.Debug("debug record")
			logger.Error("error record")

			assert.Equal(t, tc.wantDebug, strings.Contains(buf.String(), "debug record"))
			assert.Contains(t, buf.String(), "error record")
			assert.Equal(t, tc.wantJSON, strings.HasPrefix(buf.String(), "{"))
		})
	}
}
