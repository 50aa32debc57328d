package cea608

// NALUnitType tags an incoming NAL event. Only NALUnitTypeSEIRBSP is
// consumed by CaptionStream; everything else is ignored (see spec §4.4).
type NALUnitType string

// NALUnitTypeSEIRBSP marks an event carrying the de-escaped RBSP of a
// Supplemental Enhancement Information NAL unit.
const NALUnitTypeSEIRBSP NALUnitType = "sei_rbsp"

// NALEvent is the input to CaptionStream.Push. EscapedRBSP must already have
// had emulation-prevention bytes removed by the caller (out of scope here,
// see spec §1).
type NALEvent struct {
	NALUnitType NALUnitType
	EscapedRBSP []byte
	PTS         int64
}

// seiMessage is the result of walking a single SEI RBSP payload (spec §4.1).
// PayloadType is -1 when no recognized message was found.
type seiMessage struct {
	PayloadType int
	PayloadSize int
	Payload     []byte
}

// ccFieldType distinguishes NTSC field 1 from field 2 CC packets. Only
// ccFieldType1 is decoded; field 2 is an explicit non-goal (spec §1).
type ccFieldType byte

const (
	ccFieldType1 ccFieldType = 0
	ccFieldType2 ccFieldType = 1
)

// CCPacket is a single CEA-608 byte-pair extracted from a user_data
// payload, tagged with the PTS of the frame that carried it (spec §3).
type CCPacket struct {
	Type   ccFieldType
	PTS    int64
	CCData uint16

	// arrival records the order packets were appended in, used as the
	// stable-sort tiebreak in CaptionStream.Flush (spec §4.4).
	arrival int
}

// CueEvent is a timed caption cue ready for a text-track renderer (spec §3,
// §6). Line and Position are nil when the source row/indent has no entry in
// the lookup tables (spec §6); a renderer should fall back to its defaults.
type CueEvent struct {
	StartPts      int64
	EndPts        int64
	Text          string
	Line          *float64
	Align         string
	Position      *float64
	PositionAlign string
	Size          int
	SnapToLines   bool
}

// RawPairEvent is the undecoded byte-pair sidechannel described in spec
// §4.5.3/§6, emitted on every decoded CC packet regardless of its control
// code, except a pair whose parity-stripped bytes are both zero.
type RawPairEvent struct {
	Type      string
	PTS       int64
	StartPts  int64
	EndPts    int64
	CEA608    [2]byte
	Text      string
}

// Event is the tagged-variant output of Cea608Stream, per the §9 design
// note "Event = DecodedCue(...) | RawPair(...)". Use a type switch on the
// concrete type delivered to a Sink.
type Event interface {
	isEvent()
}

func (CueEvent) isEvent()     {}
func (RawPairEvent) isEvent() {}

// Sink receives decoded events from Cea608Stream. SinkFunc adapts a plain
// function to this interface.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit implements Sink.
func (f SinkFunc) Emit(e Event) { f(e) }

// Decoder is the downstream consumer CaptionStream forwards CC packets to.
// Cea608Stream implements Decoder.
type Decoder interface {
	Push(CCPacket)
	Flush()
}
