package cea608

import "sort"

// CaptionStream implements spec §4.4: it filters NAL events down to SEI
// units carrying CEA-608 byte pairs, buffers the extracted CC packets, and
// on Flush forwards them to a downstream Decoder in stable PTS order.
type CaptionStream struct {
	downstream Decoder
	buffered   []CCPacket
	arrival    int
	opts       streamOptions
}

// NewCaptionStream returns a CaptionStream that forwards decoded CC packets
// to downstream on Flush.
func NewCaptionStream(downstream Decoder, opts ...Option) *CaptionStream {
	s := &CaptionStream{
		downstream: downstream,
		opts:       newStreamOptions(),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Push consumes one NAL event. Anything that isn't a SEI RBSP carrying a
// recognized CEA-608 T.35 payload is silently ignored, per spec §7.
func (s *CaptionStream) Push(event NALEvent) {
	if event.NALUnitType != NALUnitTypeSEIRBSP {
		return
	}

	sei, err := parseSEI(event.EscapedRBSP)
	if sei.PayloadType != seiPayloadTypeUserDataT35 {
		s.opts.log.Debug().Err(err).Int64("pts", event.PTS).Msg("cea608: no T.35 SEI payload")
		return
	}

	body, ok, err := parseUserData(sei.Payload)
	if !ok {
		s.opts.log.Debug().Err(err).Int64("pts", event.PTS).Msg("cea608: user data envelope rejected")
		return
	}

	packets, err := extractCCPackets(body, event.PTS)
	if err != nil {
		s.opts.log.Debug().Err(err).Int64("pts", event.PTS).Msg("cea608: cc packet extraction")
	}
	for _, p := range packets {
		p.arrival = s.arrival
		s.arrival++
		s.buffered = append(s.buffered, p)
	}
}

// Flush stable-sorts the buffered CC packets by (pts ascending,
// arrival-order ascending), forwards each to the downstream decoder, empties
// the buffer, then flushes downstream — even if nothing was buffered, so
// residual decoder state from a prior flush still drains (spec §4.4).
func (s *CaptionStream) Flush() {
	sort.SliceStable(s.buffered, func(i, j int) bool {
		if s.buffered[i].PTS != s.buffered[j].PTS {
			return s.buffered[i].PTS < s.buffered[j].PTS
		}
		return s.buffered[i].arrival < s.buffered[j].arrival
	})

	for _, p := range s.buffered {
		s.downstream.Push(p)
	}
	s.buffered = nil

	s.downstream.Flush()
}
