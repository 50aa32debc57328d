package cea608

// recordingSink captures every Event emitted during a test, split by
// concrete type for easy assertions.
type recordingSink struct {
	cues []CueEvent
	raw  []RawPairEvent
}

func (s *recordingSink) Emit(e Event) {
	switch v := e.(type) {
	case CueEvent:
		s.cues = append(s.cues, v)
	case RawPairEvent:
		s.raw = append(s.raw, v)
	}
}

// recordingDecoder is a Decoder stub that just records what it was given,
// used to test CaptionStream in isolation from Cea608Stream.
type recordingDecoder struct {
	pushed  []CCPacket
	flushes int
}

func (d *recordingDecoder) Push(p CCPacket) { d.pushed = append(d.pushed, p) }
func (d *recordingDecoder) Flush()          { d.flushes++ }
