package attrpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	tree := map[string]any{}
	require.NoError(t, Set(tree, MustParse("title.font.size"), 12.0))
	require.NoError(t, Set(tree, MustParse("updatemenus[0].x"), 0.5))
	require.NoError(t, Set(tree, MustParse("updatemenus[1].buttons[0].label"), "A"))

	want := map[string]any{
		"title": map[string]any{"font": map[string]any{"size": 12.0}},
		"updatemenus": []any{
			map[string]any{"x": 0.5},
			map[string]any{"buttons": []any{map[string]any{"label": "A"}}},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}

	v, ok := Get(tree, MustParse("updatemenus[1].buttons[0].label"))
	require.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = Get(tree, MustParse("updatemenus[5]"))
	assert.False(t, ok)
	_, ok = Get(tree, MustParse("title.font.size.deeper"))
	assert.False(t, ok)
}

func TestSet_IndexPastEnd(t *testing.T) {
	testCases := []struct {
		name string
		tree map[string]any
		path string
	}{
		{name: "empty tree", tree: map[string]any{}, path: "updatemenus[100000000].x"},
		{name: "gap after existing items", tree: map[string]any{"updatemenus": []any{map[string]any{}}}, path: "updatemenus[2]"},
		{name: "nested array", tree: map[string]any{"sliders": []any{map[string]any{"steps": []any{}}}}, path: "sliders[0].steps[1].label"},
		{name: "below a missing parent", tree: map[string]any{}, path: "sliders[0].steps[3]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := cloneTree(tc.tree)
			err := Set(tc.tree, MustParse(tc.path), 1.0)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			if diff := cmp.Diff(before, tc.tree); diff != "" {
				t.Errorf("failed Set modified the tree (-before +after):\n%s", diff)
			}
		})
	}

	t.Run("appending and replacing are allowed", func(t *testing.T) {
		tree := map[string]any{"updatemenus": []any{map[string]any{"x": 0.1}}}
		require.NoError(t, Set(tree, MustParse("updatemenus[0].x"), 0.2))
		require.NoError(t, Set(tree, MustParse("updatemenus[1].x"), 0.3))
		assert.Equal(t, []any{map[string]any{"x": 0.2}, map[string]any{"x": 0.3}}, tree["updatemenus"])
	})
}

// cloneTree copies the maps and slices of a test tree.
func cloneTree(v map[string]any) map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = cloneValue(val)
	}
	return out
}

func cloneValue(v any) any {
	switch n := v.(type) {
	case map[string]any:
		return cloneTree(n)
	case []any:
		out := make([]any, len(n))
		for i, e := range n {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}

func TestDelete(t *testing.T) {
	tree := map[string]any{
		"legend": map[string]any{"x": 1.0, "y": 2.0},
		"sliders": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": "b"},
			map[string]any{"name": "c"},
		},
	}

	assert.True(t, Delete(tree, MustParse("legend.x")))
	assert.False(t, Delete(tree, MustParse("legend.x")))
	assert.True(t, Delete(tree, MustParse("sliders[1]")))
	assert.False(t, Delete(tree, MustParse("sliders[7]")))

	want := map[string]any{
		"legend": map[string]any{"y": 2.0},
		"sliders": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": "c"},
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMap(t *testing.T) {
	tree := map[string]any{"legend": map[string]any{"x": 1.0}, "name": "n"}
	assert.NotNil(t, GetMap(tree, Names("legend")))
	assert.Nil(t, GetMap(tree, Names("name")))
	assert.Nil(t, GetMap(tree, Names("missing")))
}
