package cea608

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowPosForRow_ValidRange(t *testing.T) {
	v := rowPosForRow(1)
	require.NotNil(t, v)
	require.InDelta(t, 10, *v, 0.001)

	v = rowPosForRow(15)
	require.NotNil(t, v)
	require.InDelta(t, 84.66, *v, 0.001)
}

func TestRowPosForRow_OutOfRange(t *testing.T) {
	require.Nil(t, rowPosForRow(0))
	require.Nil(t, rowPosForRow(16))
	require.Nil(t, rowPosForRow(-1))
}

func TestPositionForIndent_ValidAndInvalid(t *testing.T) {
	zero := 0
	v := positionForIndent(&zero)
	require.NotNil(t, v)
	require.InDelta(t, 10, *v, 0.001)

	unknown := 1
	require.Nil(t, positionForIndent(&unknown))
	require.Nil(t, positionForIndent(nil))
}

func TestTranslateChar_OverrideTable(t *testing.T) {
	r, ok := translateChar(0x2A, true)
	require.True(t, ok)
	require.Equal(t, 'á', r)
}

func TestTranslateChar_DefaultPassesThrough(t *testing.T) {
	r, ok := translateChar('H', true)
	require.True(t, ok)
	require.Equal(t, 'H', r)
}

func TestTranslateChar_NullCodeProducesNothing(t *testing.T) {
	_, ok := translateChar(0x00, false)
	require.False(t, ok)
}
