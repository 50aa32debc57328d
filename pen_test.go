package cea608

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePAC_Channel1LowRow(t *testing.T) {
	pen, channel, ok := parsePAC(0x11, 0x40) // row 1, white, idx 0
	require.True(t, ok)
	require.Equal(t, 1, channel)
	require.Equal(t, 1, pen.Row)
	require.NotNil(t, pen.Color)
	require.Equal(t, ColorWhite, *pen.Color)
	require.False(t, pen.Underline)
}

func TestParsePAC_Channel1HighRow(t *testing.T) {
	pen, channel, ok := parsePAC(0x14, 0x60) // row 15, white
	require.True(t, ok)
	require.Equal(t, 1, channel)
	require.Equal(t, 15, pen.Row)
}

func TestParsePAC_Underline(t *testing.T) {
	pen, _, ok := parsePAC(0x11, 0x41) // idx 1: white, underlined
	require.True(t, ok)
	require.True(t, pen.Underline)
}

func TestParsePAC_Color(t *testing.T) {
	pen, _, ok := parsePAC(0x11, 0x42) // idx 2: green
	require.True(t, ok)
	require.NotNil(t, pen.Color)
	require.Equal(t, ColorGreen, *pen.Color)
}

func TestParsePAC_Italics(t *testing.T) {
	pen, _, ok := parsePAC(0x11, 0x4E) // idx 14: italics
	require.True(t, ok)
	require.True(t, pen.Italics)
	require.NotNil(t, pen.Color)
	require.Equal(t, ColorWhite, *pen.Color)
}

func TestParsePAC_Indent(t *testing.T) {
	pen, _, ok := parsePAC(0x11, 0x50) // idx 16: indent 0
	require.True(t, ok)
	require.NotNil(t, pen.Indent)
	require.Equal(t, 0, *pen.Indent)

	pen, _, ok = parsePAC(0x11, 0x58) // idx 24: indent 16
	require.True(t, ok)
	require.NotNil(t, pen.Indent)
	require.Equal(t, 16, *pen.Indent)
}

func TestParsePAC_Channel2(t *testing.T) {
	pen, channel, ok := parsePAC(0x19, 0x40)
	require.True(t, ok)
	require.Equal(t, 2, channel)
	require.Equal(t, 1, pen.Row)
}

func TestParsePAC_InvalidSecondByte(t *testing.T) {
	_, _, ok := parsePAC(0x11, 0x20)
	require.False(t, ok)
}

func TestParsePAC_InvalidFirstByte(t *testing.T) {
	_, _, ok := parsePAC(0x08, 0x40)
	require.False(t, ok)
}

func TestParsePAC_SpecialRowOutOfHighRange(t *testing.T) {
	// a == 0x10 is only valid in the low sub-range (spec §4.5.5).
	_, _, ok := parsePAC(0x10, 0x65)
	require.False(t, ok)
}
