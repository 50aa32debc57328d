package cea608

// Mode608 is the Cea608Stream's display mode (spec §3 "Decoder mode").
type Mode608 int

// The two supported display modes. Paint-on is an explicit non-goal
// (spec §1).
const (
	ModePopOn Mode608 = iota
	ModeRollUp
)

const (
	ctlResumeCaptionLoading = 0x1420
	ctlBackspace            = 0x1421
	ctlRollUp2              = 0x1425
	ctlRollUp3              = 0x1426
	ctlRollUp4              = 0x1427
	ctlCarriageReturn       = 0x142D
	ctlEraseDisplayedMemory = 0x142C
	ctlEraseNonDisplayed    = 0x142E
	ctlEndOfCaption         = 0x142F
	ctlTabOffset1           = 0x1721
	ctlTabOffset2           = 0x1722
	ctlTabOffset3           = 0x1723
)

// Cea608Stream is a single-channel (CC1, field 1) CEA-608 decoder, per spec
// §4.5. It consumes timestamped 16-bit byte pairs via Push and emits decoded
// cues and raw byte-pair sidechannel events to a Sink.
type Cea608Stream struct {
	sink Sink
	opts streamOptions

	mode Mode608

	displayed    *displayBuffer
	nonDisplayed *displayBuffer

	startPts int64
	pen      Pen

	topRow    int
	rowOffset int

	lastControlCode *uint16
}

// NewCea608Stream returns a Cea608Stream in its initial state: mode popOn,
// both buffers empty, startPts 0, no pen attributes set (spec §4.5 "State").
func NewCea608Stream(sink Sink, opts ...Cea608Option) *Cea608Stream {
	s := &Cea608Stream{sink: sink, opts: newStreamOptions()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.Reset()
	return s
}

// Reset reinitializes all decoder state to the spec §4.5 defaults, for a
// caller that wants to reuse a Cea608Stream across a channel change or
// discontinuity without constructing a new one.
func (s *Cea608Stream) Reset() {
	s.mode = ModePopOn
	s.displayed = newDisplayBuffer()
	s.nonDisplayed = newDisplayBuffer()
	s.startPts = 0
	s.pen = Pen{}
	s.topRow = 0
	s.rowOffset = 0
	s.lastControlCode = nil
}

// Push decodes one CC packet. Packets with Type != ccFieldType1 never
// influence output (spec §3 invariant; field 2 is a non-goal).
func (s *Cea608Stream) Push(packet CCPacket) {
	if packet.Type != ccFieldType1 {
		return
	}

	data := packet.CCData & 0x7F7F

	if s.lastControlCode != nil && data == *s.lastControlCode {
		s.lastControlCode = nil
		return
	}
	if data&0xF000 == 0x1000 {
		v := data
		s.lastControlCode = &v
	} else {
		s.lastControlCode = nil
	}

	s.forceFlush(packet, data)
	s.dispatch(packet, data)
}

// Flush exists so Cea608Stream satisfies Decoder; the decoder has no
// internal buffering of its own beyond the persistent display state, so
// there is nothing to drain.
func (s *Cea608Stream) Flush() {}

// forceFlush is the raw byte-pair sidechannel of spec §4.5.3: unconditionally
// emitted on every decoded packet except when both bytes are zero.
func (s *Cea608Stream) forceFlush(packet CCPacket, data uint16) {
	b0, b1 := byte(data>>8), byte(data)
	if b0 == 0 && b1 == 0 {
		return
	}
	s.sink.Emit(RawPairEvent{
		Type:     "cea608",
		PTS:      packet.PTS,
		StartPts: packet.PTS,
		EndPts:   packet.PTS,
		CEA608:   [2]byte{b0, b1},
		Text:     "b",
	})
}

func (s *Cea608Stream) dispatch(packet CCPacket, data uint16) {
	switch data {
	case 0x0000:
		// PADDING: no-op.
	case ctlResumeCaptionLoading:
		s.mode = ModePopOn
	case ctlEndOfCaption:
		s.endOfCaption(packet)
	case ctlRollUp2:
		s.beginRollUp(13, 1)
	case ctlRollUp3:
		s.beginRollUp(12, 2)
	case ctlRollUp4:
		s.beginRollUp(11, 3)
	case ctlCarriageReturn:
		s.carriageReturn(packet)
	case ctlBackspace:
		s.backspace()
	case ctlEraseDisplayedMemory:
		s.eraseDisplayedMemory(packet)
	case ctlEraseNonDisplayed:
		s.nonDisplayed = newDisplayBuffer()
	case ctlTabOffset1, ctlTabOffset2, ctlTabOffset3:
		// Reserved, no-op (spec §4.5).
	default:
		s.decodeCharacterOrPAC(packet, data)
	}
}

func (s *Cea608Stream) beginRollUp(topRow, rowOffset int) {
	s.topRow = topRow
	s.rowOffset = rowOffset
	s.mode = ModeRollUp
}

func (s *Cea608Stream) backspace() {
	if s.mode == ModePopOn {
		s.nonDisplayed.backspace(bottomRow)
	} else {
		s.displayed.backspace(bottomRow)
	}
}

// endOfCaption implements spec §4.5's END_OF_CAPTION row: the buffer that is
// about to become visible (what popOn writes were accumulating into) is
// swapped into displayed before the flush, so the cue emitted describes
// the content that was just loaded rather than whatever was on screen
// before it. See DESIGN.md "END_OF_CAPTION ordering" for why this differs
// from a literal top-to-bottom reading of the spec's action table.
func (s *Cea608Stream) endOfCaption(packet CCPacket) {
	s.displayed, s.nonDisplayed = s.nonDisplayed, s.displayed
	s.flushDisplayed(packet)
	s.startPts = packet.PTS
}

func (s *Cea608Stream) carriageReturn(packet CCPacket) {
	s.flushDisplayed(packet)
	s.displayed.shiftUp(s.topRow)
	s.startPts = packet.PTS
}

func (s *Cea608Stream) eraseDisplayedMemory(packet CCPacket) {
	s.flushDisplayed(packet)
	s.displayed = newDisplayBuffer()
}

// flushDisplayed implements spec §4.5.4: trims and joins displayed's rows,
// and emits a CueEvent iff the result is non-empty.
func (s *Cea608Stream) flushDisplayed(packet CCPacket) {
	text, nonEmptyRows := s.displayed.flushedText()
	if text == "" {
		return
	}

	var line *float64
	if nonEmptyRows > 0 {
		line = rowPosForRow(s.pen.Row - nonEmptyRows + 1)
	}

	s.sink.Emit(CueEvent{
		StartPts:      s.startPts,
		EndPts:        packet.PTS,
		Text:          text,
		Line:          line,
		Align:         "start",
		Position:      positionForIndent(s.pen.Indent),
		PositionAlign: "start",
		Size:          80,
		SnapToLines:   false,
	})
}

// decodeCharacterOrPAC implements spec §4.5.1: PAC detection, the musical
// note special case, the unsupported-control-range filter, null
// normalization, and dispatch of the resulting pair to the mode writer.
func (s *Cea608Stream) decodeCharacterOrPAC(packet CCPacket, data uint16) {
	char0 := byte(data >> 8)
	char1 := byte(data)

	if isPACCode(char0, char1) {
		if pen, channel, ok := parsePAC(char0, char1); ok && channel == 1 {
			s.pen = pen
		}
		s.writeChar(packet, ' ')
		return
	}

	if (char0 == 0x11 || char0 == 0x19) && char1 >= 0x30 && char1 <= 0x3F {
		s.writeChar(packet, '♪')
		return
	}

	if char0&0xF0 == 0x10 {
		return
	}

	if r, ok := translateChar(char0, char0 != 0); ok {
		s.writeChar(packet, r)
	}
	if r, ok := translateChar(char1, char1 != 0); ok {
		s.writeChar(packet, r)
	}
}

// isPACCode implements the spec §4.5.1 detection gate, which only matches
// channel-1 preamble codes (char0 in [0x10, 0x17]); see DESIGN.md
// "Channel 2 PACs".
func isPACCode(char0, char1 byte) bool {
	if char0 < 0x10 || char0 > 0x17 {
		return false
	}
	if char1 < 0x40 || char1 > 0x7F {
		return false
	}
	if char0 == 0x10 && char1 < 0x60 {
		return false
	}
	return true
}

// writeChar implements spec §4.5.2's mode writers. For roll-up, the first
// character written after the bottom row was empty marks the start of a new
// cue (startPts snapshot); the same rule applies to pop-on's nonDisplayed
// bottom row, which spec §8's worked examples require even though §4.5.2's prose
// states it only for roll-up (see DESIGN.md).
func (s *Cea608Stream) writeChar(packet CCPacket, r rune) {
	switch s.mode {
	case ModePopOn:
		if s.nonDisplayed.isEmpty(bottomRow) {
			s.startPts = packet.PTS
		}
		s.nonDisplayed.append(bottomRow, r)
	case ModeRollUp:
		if s.displayed.isEmpty(bottomRow) {
			s.startPts = packet.PTS
		}
		s.displayed.append(bottomRow, r)
	}
}
