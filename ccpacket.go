package cea608

import "github.com/pkg/errors"

const (
	ccDataFlagProcessCC = 0x40
	ccCountMask         = 0x1F
	ccValidBit          = 0x04
	ccTypeMask          = 0x03
)

// extractCCPackets implements spec §4.3: given a validated user-data body
// and the PTS it was carried on, returns every valid CC byte-pair packet.
// A filler packet (process_cc_data_flag clear) yields no packets. If
// count*3+2 exceeds the buffer, extraction stops at the last full triple
// rather than reading out of bounds.
func extractCCPackets(body []byte, pts int64) ([]CCPacket, error) {
	if len(body) == 0 {
		return nil, errCCPacketNotCC
	}
	if body[0]&ccDataFlagProcessCC == 0 {
		return nil, errors.Wrap(errCCPacketNotCC, "filler packet")
	}

	count := int(body[0] & ccCountMask)
	var packets []CCPacket
	var truncated bool
	for i := 0; i < count; i++ {
		off := i * 3
		if off+4 >= len(body) {
			truncated = true
			break
		}
		ccTypeFlags := body[off+2]
		if ccTypeFlags&ccValidBit == 0 {
			continue
		}
		packets = append(packets, CCPacket{
			Type:   ccFieldType(ccTypeFlags & ccTypeMask),
			PTS:    pts,
			CCData: uint16(body[off+3])<<8 | uint16(body[off+4]),
		})
	}
	if truncated {
		return packets, errors.Wrap(errCCPacketTruncated, "stopped at last full triple")
	}
	return packets, nil
}
