package cea608

import "github.com/pkg/errors"

const seiPayloadTypeUserDataT35 = 0x04

// parseSEI walks the bytes of a single SEI RBSP payload looking for a
// user_data_registered_itu_t_t35 message (spec §4.1). It bounds-checks
// every read: a truncated message yields "no payload" (PayloadType == -1)
// rather than an error escaping to the caller. err is non-nil only to give
// an optional debug logger something to attach; callers should treat a
// PayloadType of -1 as the only signal that matters.
func parseSEI(data []byte) (seiMessage, error) {
	i := 0
	for i < len(data) {
		if data[i] == 0x80 {
			// RBSP trailing bits.
			break
		}

		payloadType, n, ok := readSEIField(data, i)
		if !ok {
			return seiMessage{PayloadType: -1}, errors.Wrap(errSEITruncated, "payloadType")
		}
		i = n

		payloadSize, n, ok := readSEIField(data, i)
		if !ok {
			return seiMessage{PayloadType: -1}, errors.Wrap(errSEITruncated, "payloadSize")
		}
		i = n

		if payloadType == seiPayloadTypeUserDataT35 {
			if i+payloadSize > len(data) {
				return seiMessage{PayloadType: -1}, errors.Wrap(errSEITruncated, "payload")
			}
			return seiMessage{
				PayloadType: payloadType,
				PayloadSize: payloadSize,
				Payload:     data[i : i+payloadSize],
			}, nil
		}

		i += payloadSize
	}
	return seiMessage{PayloadType: -1}, errSEINoT35Payload
}

// readSEIField sums successive 0xFF bytes (each worth 255) starting at i,
// adding the terminating non-0xFF byte, per spec §4.1. It returns the
// cursor position just past the field and false if data ran out first.
func readSEIField(data []byte, i int) (value int, next int, ok bool) {
	for i < len(data) {
		b := data[i]
		value += int(b)
		i++
		if b != 0xFF {
			return value, i, true
		}
	}
	return 0, i, false
}
