package attrpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		expectErr    bool
		expectedPath Path
	}{
		{
			name:         "simple path",
			raw:          "title.font.size",
			expectedPath: Names("title", "font", "size"),
		},
		{
			name:         "array item",
			raw:          "buttons[2].label",
			expectedPath: Path{NameSegment("buttons"), IndexSegment(2), NameSegment("label")},
		},
		{
			name:         "trailing index",
			raw:          "xaxis2.range[0]",
			expectedPath: Path{NameSegment("xaxis2"), NameSegment("range"), IndexSegment(0)},
		},
		{
			name:         "nested indices",
			raw:          "z[1][3]",
			expectedPath: Path{NameSegment("z"), IndexSegment(1), IndexSegment(3)},
		},
		{
			name:         "underscores",
			raw:          "paper_bgcolor",
			expectedPath: Names("paper_bgcolor"),
		},
		{name: "error - empty string", raw: "", expectErr: true},
		{name: "error - empty segment", raw: "a..b", expectErr: true},
		{name: "error - bad index", raw: "a.b[x]", expectErr: true},
		{name: "error - leading index", raw: "[0].a", expectErr: true},
		{name: "error - just dot", raw: ".", expectErr: true},
		{name: "error - hyphen", raw: "a.b-c", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expectedPath.Equal(p), "parsed %v, want %v", p, tc.expectedPath)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a..b") })
	assert.NotPanics(t, func() { MustParse("legend.x") })
}
