package updatemenus_test

import (
	"testing"

	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/testutil"
	"github.com/specialistvlad/figcore/modules/scatter"
	"github.com/specialistvlad/figcore/modules/updatemenus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveLayout(t *testing.T, layout map[string]any) *figure.Resolved {
	t.Helper()
	s := testutil.NewSupplier(t, &scatter.Module{}, &updatemenus.Module{})
	return testutil.MustResolve(t, s, &figure.Figure{
		Data:   []map[string]any{{"type": "scatter", "y": []any{1.0, 2.0}}},
		Layout: layout,
	})
}

func button(label string) map[string]any {
	return map[string]any{"label": label, "args": []any{"visible", []any{true}}}
}

func TestUpdateMenus_Defaults(t *testing.T) {
	r := resolveLayout(t, map[string]any{
		"updatemenus": []any{
			map[string]any{"buttons": []any{button("A"), button("B")}},
		},
	})

	require.Equal(t, []int{0}, r.Layout[updatemenus.RegistryKey])
	menu := figure.AsMap(testutil.Get(t, r.Layout, "updatemenus[0]"))
	assert.Equal(t, true, menu["visible"])
	assert.Equal(t, -0.05, menu["x"])
	assert.Equal(t, "right", menu["xanchor"])
	assert.Equal(t, 1.0, menu["y"])
	assert.Equal(t, "top", menu["yanchor"])
	assert.Equal(t, "dropdown", menu["type"])
	assert.Equal(t, 0, menu["_index"])

	assert.Equal(t, "restyle", testutil.Get(t, r.Layout, "updatemenus[0].buttons[1].method"))
	assert.Equal(t, "B", testutil.Get(t, r.Layout, "updatemenus[0].buttons[1].label"))
	assert.Equal(t, true, testutil.Get(t, r.Layout, "updatemenus[0].buttons[1].execute"))
}

func TestUpdateMenus_Visibility(t *testing.T) {
	testCases := []struct {
		name        string
		buttons     []any
		wantVisible bool
	}{
		{name: "buttons without args do nothing", buttons: []any{map[string]any{"label": "A"}}, wantVisible: false},
		{name: "skip buttons count", buttons: []any{map[string]any{"method": "skip", "label": "A"}}, wantVisible: true},
		{name: "one usable button is enough", buttons: []any{map[string]any{"label": "A"}, button("B")}, wantVisible: true},
		{name: "no buttons", buttons: []any{}, wantVisible: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := resolveLayout(t, map[string]any{
				"updatemenus": []any{map[string]any{"buttons": tc.buttons}},
			})
			menu := figure.AsMap(testutil.Get(t, r.Layout, "updatemenus[0]"))
			assert.Equal(t, tc.wantVisible, menu["visible"])
			if tc.wantVisible {
				assert.Equal(t, []int{0}, r.Layout[updatemenus.RegistryKey])
				return
			}
			assert.Equal(t, map[string]any{"visible": false, "_index": 0}, menu, "hidden menus resolve nothing else")
			assert.Empty(t, r.Layout[updatemenus.RegistryKey])
		})
	}
}

func TestUpdateMenus_Templates(t *testing.T) {
	tmpl := map[string]any{
		"layout": map[string]any{
			"updatemenus": []any{
				map[string]any{
					"name":    "views",
					"buttons": []any{map[string]any{"name": "reset", "label": "Reset", "method": "relayout", "args": []any{"xaxis.range", nil}}},
				},
			},
			"updatemenudefaults": map[string]any{"bgcolor": "#abc"},
		},
	}

	t.Run("named entries are appended", func(t *testing.T) {
		r := resolveLayout(t, map[string]any{"template": tmpl})

		menus, _ := r.Layout["updatemenus"].([]any)
		require.Len(t, menus, 1)
		assert.Equal(t, true, testutil.Get(t, r.Layout, "updatemenus[0].visible"))
		assert.Equal(t, "Reset", testutil.Get(t, r.Layout, "updatemenus[0].buttons[0].label"))
		assert.Equal(t, "relayout", testutil.Get(t, r.Layout, "updatemenus[0].buttons[0].method"))
		testutil.AssertSource(t, r, "layout.updatemenus[0].buttons[0].label", figure.SourceTemplate)
	})

	t.Run("defaults entry styles live items", func(t *testing.T) {
		r := resolveLayout(t, map[string]any{
			"template":    tmpl,
			"updatemenus": []any{map[string]any{"buttons": []any{button("A")}}},
		})

		menus, _ := r.Layout["updatemenus"].([]any)
		require.Len(t, menus, 2, "the live menu plus the injected one")
		assert.Equal(t, "#abc", testutil.Get(t, r.Layout, "updatemenus[0].bgcolor"))
		testutil.AssertSource(t, r, "layout.updatemenus[0].bgcolor", figure.SourceTemplate)
		assert.Equal(t, []int{0, 1}, r.Layout[updatemenus.RegistryKey])
	})

	t.Run("unknown template item hides the item", func(t *testing.T) {
		r := resolveLayout(t, map[string]any{
			"template":    tmpl,
			"updatemenus": []any{map[string]any{"templateitemname": "nope", "buttons": []any{button("A")}}},
		})
		assert.Equal(t, false, testutil.Get(t, r.Layout, "updatemenus[0].visible"))
		assert.Nil(t, testutil.Get(t, r.Layout, "updatemenus[0].buttons"))
		assert.Equal(t, []int{1}, r.Layout[updatemenus.RegistryKey])
	})

	t.Run("an invisible same-named item suppresses the entry", func(t *testing.T) {
		r := resolveLayout(t, map[string]any{
			"template":    tmpl,
			"updatemenus": []any{map[string]any{"name": "views", "visible": false}},
		})
		menus, _ := r.Layout["updatemenus"].([]any)
		require.Len(t, menus, 1)
		assert.Equal(t, false, testutil.Get(t, r.Layout, "updatemenus[0].visible"))
		assert.Empty(t, r.Layout[updatemenus.RegistryKey])
	})
}
