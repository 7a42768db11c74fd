package Teeth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrimsAndDropsEmptyTokens(t *testing.T) {
	selection := Parse(" UL3, LR5 ,, LL1,")
	assert.Len(t, selection, 3)
	assert.True(t, selection.Contains("UL3"))
	assert.True(t, selection.Contains("LR5"))
	assert.True(t, selection.Contains("LL1"))
}

func TestParseAcceptsOpaqueTokens(t *testing.T) {
	// Token shape is not enforced on parse; stored data may predate
	// the quadrant notation.
	selection := Parse("XX9, UL3")
	assert.True(t, selection.Contains("XX9"))
	assert.Equal(t, "UL3, XX9", selection.Serialize())
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Equal(t, "", Parse("").Serialize())
}

func TestSerializeCanonicalOrder(t *testing.T) {
	selection := Selection{"LR3": {}, "UL8": {}, "LL1": {}}
	assert.Equal(t, "LL1, LR3, UL8", selection.Serialize())
}

func TestSerializeDeduplicates(t *testing.T) {
	assert.Equal(t, "UL3", Parse("UL3, UL3,UL3").Serialize())
}

func TestToggleIsPure(t *testing.T) {
	original := Parse("UL3, LR5")
	toggled := original.Toggle("LL1")

	assert.True(t, toggled.Contains("LL1"))
	assert.False(t, original.Contains("LL1"), "toggle must not mutate the receiver")
}

func TestDoubleToggleIsNoOp(t *testing.T) {
	for _, tc := range []struct {
		serialized string
		tooth      string
	}{
		{"", "UL1"},
		{"UL3, LR5", "LL8"},
		{"UL3, LR5", "UL3"},
		{"LL1, LR3, UL8", "UR4"},
	} {
		selection := Parse(tc.serialized)
		roundTripped := selection.Toggle(tc.tooth).Toggle(tc.tooth)
		assert.Equal(t, selection.Serialize(), roundTripped.Serialize(),
			"double toggle of %q on %q", tc.tooth, tc.serialized)
	}
}

func TestValid(t *testing.T) {
	for _, tooth := range []string{"UL1", "UR8", "LL4", "LR3"} {
		assert.True(t, Valid(tooth), tooth)
	}
	for _, tooth := range []string{"", "UL", "UL9", "UL0", "XX3", "ul3", "UL33"} {
		assert.False(t, Valid(tooth), tooth)
	}
}

func TestLayout(t *testing.T) {
	quadrants := Layout()
	require.Len(t, quadrants, 4)

	byAbbr := map[string][]int{}
	for _, q := range quadrants {
		byAbbr[q.Abbr] = q.Positions
	}

	// Left quadrants run 8 down to 1, right quadrants 1 up to 8
	assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1}, byAbbr["UL"])
	assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1}, byAbbr["LL"])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, byAbbr["UR"])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, byAbbr["LR"])

	// Every tooth in the layout passes the strict shape check
	for _, q := range quadrants {
		for _, pos := range q.Positions {
			assert.True(t, Valid(q.Abbr+string(rune('0'+pos))))
		}
	}
}
