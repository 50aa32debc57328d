package cea608

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seiField encodes a SEI payloadType/payloadSize field as a chain of 0xFF
// bytes followed by the terminating remainder, per spec §4.1.
func seiField(value int) []byte {
	var b []byte
	for value >= 0xFF {
		b = append(b, 0xFF)
		value -= 0xFF
	}
	b = append(b, byte(value))
	return b
}

func buildSEIMessage(payloadType int, payload []byte) []byte {
	var b []byte
	b = append(b, seiField(payloadType)...)
	b = append(b, seiField(len(payload))...)
	b = append(b, payload...)
	return b
}

func TestParseSEI_FindsT35Payload(t *testing.T) {
	payload := []byte{0xB5, 0x00, 0x31, 'G', 'A', '9', '4', 0x03, 0xAA, 0xBB}
	data := buildSEIMessage(0x04, payload)
	data = append(data, 0x80) // RBSP trailing bits

	msg, err := parseSEI(data)
	require.NoError(t, err)
	require.Equal(t, 0x04, msg.PayloadType)
	require.Equal(t, payload, msg.Payload)
}

func TestParseSEI_SkipsUnrecognizedTypesFirst(t *testing.T) {
	var data []byte
	data = append(data, buildSEIMessage(0x06, []byte{0x01, 0x02, 0x03})...) // unrelated message, type 6
	payload := []byte{0xB5, 0x00, 0x31, 'G', 'A', '9', '4', 0x03}
	data = append(data, buildSEIMessage(0x04, payload)...)

	msg, err := parseSEI(data)
	require.NoError(t, err)
	require.Equal(t, 0x04, msg.PayloadType)
	require.Equal(t, payload, msg.Payload)
}

func TestParseSEI_LargePayloadTypeViaFFChain(t *testing.T) {
	// payloadType 260 = 0xFF + 0x05, not T.35; parser should skip past it
	// and find nothing else, returning -1.
	var data []byte
	data = append(data, seiField(260)...)
	data = append(data, seiField(2)...)
	data = append(data, 0x01, 0x02)

	msg, err := parseSEI(data)
	require.Error(t, err)
	require.Equal(t, -1, msg.PayloadType)
}

func TestParseSEI_NoPayloadReturnsNegativeOne(t *testing.T) {
	msg, err := parseSEI([]byte{0x80})
	require.Error(t, err)
	require.Equal(t, -1, msg.PayloadType)
}

func TestParseSEI_TruncatedPayloadTypeField(t *testing.T) {
	msg, err := parseSEI([]byte{0xFF, 0xFF})
	require.Error(t, err)
	require.Equal(t, -1, msg.PayloadType)
}

func TestParseSEI_TruncatedPayloadBytes(t *testing.T) {
	// Declares a payload of 10 bytes but only supplies 2.
	data := append(seiField(0x04), seiField(10)...)
	data = append(data, 0x01, 0x02)

	msg, err := parseSEI(data)
	require.Error(t, err)
	require.Equal(t, -1, msg.PayloadType)
}
