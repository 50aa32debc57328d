package cea608

// rowPos maps a pen row (1..15) to the WebVTT "line" value a cue should be
// anchored to (spec §6 "Row-to-line table"). Index 0 is unused; rowPos[row]
// is valid for row in [1, 15].
var rowPos = [16]float64{
	0,
	10, 15.33, 20.66, 26, 31.33, 36.66, 42, 47.33,
	52.66, 58, 63.33, 68.66, 74, 79.33, 84.66,
}

// lineIndent maps a PAC indent column (0, 4, .. 28) to the WebVTT
// "position" value (spec §6 "Indent-to-position table").
var lineIndent = map[int]float64{
	0: 10, 4: 20, 8: 30, 12: 40, 16: 50, 20: 60, 24: 70, 28: 80,
}

// rowPosForRow looks up rowPos, returning nil for rows outside [1,15]
// (spec §6: "Undefined entries in those tables map to null").
func rowPosForRow(row int) *float64 {
	if row < 1 || row > 15 {
		return nil
	}
	v := rowPos[row]
	return &v
}

// positionForIndent looks up lineIndent, returning nil for indents with no
// table entry.
func positionForIndent(indent *int) *float64 {
	if indent == nil {
		return nil
	}
	if v, ok := lineIndent[*indent]; ok {
		return &v
	}
	return nil
}

// pacRowCh1Low/High implement the channel-1 PAC row tables of spec §4.5.5.
// Attribute byte b in [0x40, 0x5F] selects the Low table; b in [0x60, 0x7F]
// selects High. a == 0x10 (0x18 on channel 2) has a Low entry only.
var pacRowCh1Low = map[byte]int{
	0x11: 1, 0x12: 3, 0x15: 5, 0x16: 7, 0x17: 9, 0x10: 11, 0x13: 12, 0x14: 14,
}

var pacRowCh1High = map[byte]int{
	0x11: 2, 0x12: 4, 0x15: 6, 0x16: 8, 0x17: 10, 0x13: 13, 0x14: 15,
}

// pacRowCh2Low/High are the channel-2 analogues, included for completeness
// per spec §4.5.5; channel-2 PACs never reach parsePAC through the normal
// decode path (see DESIGN.md "Channel 2 PACs").
var pacRowCh2Low = map[byte]int{
	0x19: 1, 0x1A: 3, 0x1D: 5, 0x1E: 7, 0x1F: 9, 0x18: 11, 0x1B: 12, 0x1C: 14,
}

var pacRowCh2High = map[byte]int{
	0x19: 2, 0x1A: 4, 0x1D: 6, 0x1E: 8, 0x1F: 10, 0x1B: 13, 0x1C: 15,
}

// Color is a CEA-608 PAC foreground color.
type Color int

// The seven colors addressable by a CEA-608 PAC attribute nibble.
const (
	ColorWhite Color = iota
	ColorGreen
	ColorBlue
	ColorCyan
	ColorRed
	ColorYellow
	ColorMagenta
)

// pacColors is indexed by idx/2 for idx in [0, 0x0D] (spec §4.5.5).
var pacColors = [8]Color{
	ColorWhite, ColorGreen, ColorBlue, ColorCyan, ColorRed, ColorYellow, ColorMagenta, ColorWhite,
}

// charTranslation overrides the default "treat code as Unicode code point"
// rule (spec §4.5.1 "Character translation").
var charTranslation = map[byte]rune{
	0x2A: 'á', // á
	0x5C: 'é', // é
	0x5E: 'í', // í
	0x5F: 'ó', // ó
	0x60: 'ú', // ú
	0x7B: 'ç', // ç
	0x7C: '÷', // ÷
	0x7D: 'Ñ', // Ñ
	0x7E: 'ñ', // ñ
	0x7F: '█', // █
}

// translateChar converts a single 7-bit CEA-608 character code into the rune
// to append to a display row. A null code (ok=false) produces no rune at
// all, per spec §4.5.1 "A null code produces the empty string."
func translateChar(code byte, valid bool) (rune, bool) {
	if !valid {
		return 0, false
	}
	if r, ok := charTranslation[code]; ok {
		return r, true
	}
	return rune(code), true
}
