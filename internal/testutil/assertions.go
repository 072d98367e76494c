package testutil

import (
	"testing"

	"github.com/specialistvlad/figcore/internal/attrpath"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/stretchr/testify/require"
)

// Get reads the value at a path like "legend.title.text" or
// "updatemenus[0].buttons[1].label" from a resolved tree.
func Get(t *testing.T, tree map[string]any, path string) any {
	t.Helper()
	v, _ := attrpath.Get(tree, attrpath.MustParse(path))
	return v
}

// AssertRegistered checks that a component registry key such as "_legends"
// lists exactly ids, in order.
func AssertRegistered(t *testing.T, layout map[string]any, key string, ids ...string) {
	t.Helper()

	got, ok := layout[key].([]string)
	require.True(t, ok, "registry key %q missing or not a list of ids", key)
	if len(ids) == 0 {
		require.Empty(t, got, "registry key %q", key)
		return
	}
	require.Equal(t, ids, got, "registry key %q", key)
}

// AssertSource checks where the resolved value at a canonical path, like
// "layout.legend.x", came from.
func AssertSource(t *testing.T, r *figure.Resolved, path string, want figure.Source) {
	t.Helper()

	got, ok := r.Provenance.Source(path)
	require.True(t, ok, "no provenance recorded for %q", path)
	require.Equal(t, want, got, "source of %q", path)
}
