package cea608

import "strings"

// rows is the fixed row count of a CEA-608 channel-1 display buffer
// (spec §3 "Display buffer").
const rows = 15

// bottomRow is the last row index (0-based); spec calls this BOTTOM_ROW.
const bottomRow = rows - 1

// displayBuffer is one of the two 15-row text buffers a Cea608Stream holds
// (displayed / nonDisplayed). Rows are plain Unicode strings rather than a
// fixed-width character grid, per spec §3: "Each row is a possibly-empty
// Unicode string."
type displayBuffer struct {
	row [rows]strings.Builder
}

// newDisplayBuffer returns a buffer with all 15 rows empty.
func newDisplayBuffer() *displayBuffer {
	return &displayBuffer{}
}

// append adds a rune to the given row.
func (b *displayBuffer) append(row int, r rune) {
	if row < 0 || row >= rows {
		return
	}
	b.row[row].WriteRune(r)
}

// backspace drops the last rune written to the given row, if any.
func (b *displayBuffer) backspace(row int) {
	if row < 0 || row >= rows {
		return
	}
	s := b.row[row].String()
	if s == "" {
		return
	}
	runes := []rune(s)
	b.row[row].Reset()
	for _, r := range runes[:len(runes)-1] {
		b.row[row].WriteRune(r)
	}
}

// text returns the current contents of a row.
func (b *displayBuffer) text(row int) string {
	if row < 0 || row >= rows {
		return ""
	}
	return b.row[row].String()
}

// isEmpty reports whether a row has no characters written to it.
func (b *displayBuffer) isEmpty(row int) bool {
	return b.text(row) == ""
}

// clearRow empties a single row.
func (b *displayBuffer) clearRow(row int) {
	if row < 0 || row >= rows {
		return
	}
	b.row[row].Reset()
}

// shiftUp implements spec §4.5.2 "shiftRowsUp": rows above topRow are
// cleared, rows [topRow, bottomRow) each take on the text of the row below,
// and the bottom row is cleared to receive new roll-up text.
func (b *displayBuffer) shiftUp(topRow int) {
	for i := 0; i < topRow; i++ {
		b.clearRow(i)
	}
	for i := topRow; i < bottomRow; i++ {
		text := b.text(i + 1)
		b.row[i].Reset()
		b.row[i].WriteString(text)
	}
	b.clearRow(bottomRow)
}

// flushedText trims each row, drops empties, and joins the remainder with
// '\n', per spec §4.5.4 "flushDisplayed". It also returns the count of
// non-empty rows, used to compute the cue's pen-relative line position.
func (b *displayBuffer) flushedText() (string, int) {
	var lines []string
	for i := 0; i < rows; i++ {
		t := strings.TrimSpace(b.text(i))
		if t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n"), len(lines)
}
