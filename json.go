package cea608

import jsoniter "github.com/json-iterator/go"

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// cueWire is the JSON wire shape of a CueEvent, matching spec §6's output
// event schema field names exactly.
type cueWire struct {
	StartPts      int64    `json:"startPts"`
	EndPts        int64    `json:"endPts"`
	Text          string   `json:"text"`
	Line          *float64 `json:"line"`
	Align         string   `json:"align"`
	Position      *float64 `json:"position"`
	PositionAlign string   `json:"positionAlign"`
	Size          int      `json:"size"`
	SnapToLines   bool     `json:"snapToLines"`
}

// MarshalJSON encodes a CueEvent using the wire schema from spec §6.
func (c CueEvent) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(cueWire{
		StartPts:      c.StartPts,
		EndPts:        c.EndPts,
		Text:          c.Text,
		Line:          c.Line,
		Align:         c.Align,
		Position:      c.Position,
		PositionAlign: c.PositionAlign,
		Size:          c.Size,
		SnapToLines:   c.SnapToLines,
	})
}

// rawPairWire is the JSON wire shape of a RawPairEvent, per spec §6.
type rawPairWire struct {
	Type     string  `json:"type"`
	PTS      int64   `json:"pts"`
	StartPts int64   `json:"startPts"`
	EndPts   int64   `json:"endPts"`
	CEA608   [2]byte `json:"cea608"`
	Text     string  `json:"text"`
}

// MarshalJSON encodes a RawPairEvent using the wire schema from spec §6.
func (e RawPairEvent) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(rawPairWire{
		Type:     e.Type,
		PTS:      e.PTS,
		StartPts: e.StartPts,
		EndPts:   e.EndPts,
		CEA608:   e.CEA608,
		Text:     e.Text,
	})
}
