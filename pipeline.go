package cea608

// Pipeline bridges a CaptionStream and a Cea608Stream, the two-stage
// composition spec §2 describes ("Two components compose in series"). It is
// a convenience for callers who don't need to hold the two stages
// separately; driving them independently (e.g. to share one Cea608Stream
// across two CaptionStreams on different PIDs) works just as well.
type Pipeline struct {
	Captions *CaptionStream
	Decoder  *Cea608Stream
}

// NewPipeline wires a fresh CaptionStream to sink via a fresh Cea608Stream.
// Decoded cues and raw byte-pair sidechannel events are delivered to sink as
// they're produced during Flush.
func NewPipeline(sink Sink, capOpts []Option, decOpts []Cea608Option) *Pipeline {
	decoder := NewCea608Stream(sink, decOpts...)
	return &Pipeline{
		Captions: NewCaptionStream(decoder, capOpts...),
		Decoder:  decoder,
	}
}

// Push feeds one NAL event into the caption stream.
func (p *Pipeline) Push(event NALEvent) {
	p.Captions.Push(event)
}

// Flush drains buffered CC packets through the decoder in PTS order.
func (p *Pipeline) Flush() {
	p.Captions.Flush()
}
