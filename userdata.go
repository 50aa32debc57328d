package cea608

import "github.com/pkg/errors"

const (
	userDataCountryCodeATSC = 0xB5
	userDataProviderATSC    = 49
	userDataTypeCodeCC      = 0x03
)

var userDataIdentifier = [4]byte{'G', 'A', '9', '4'}

// parseUserData validates the ATSC1 envelope of a T.35 SEI payload (spec
// §4.2) and, on success, returns the CEA-608 byte-pair body with the
// envelope header and trailing marker byte stripped. ok is false for any
// envelope mismatch; err carries the specific reason for an optional debug
// logger.
func parseUserData(payload []byte) (body []byte, ok bool, err error) {
	if len(payload) < 8 {
		return nil, false, errors.Wrap(errUserDataShort, "envelope header")
	}
	if payload[0] != userDataCountryCodeATSC {
		return nil, false, errUserDataBadCC
	}
	provider := uint16(payload[1])<<8 | uint16(payload[2])
	if provider != userDataProviderATSC {
		return nil, false, errUserDataBadProv
	}
	for i, c := range userDataIdentifier {
		if payload[3+i] != c {
			return nil, false, errUserDataBadID
		}
	}
	if payload[7] != userDataTypeCodeCC {
		return nil, false, errUserDataBadType
	}
	// Strip the trailing marker byte (spec §4.2: "payload[8 .. len-1]").
	end := len(payload) - 1
	if end < 8 {
		end = 8
	}
	return payload[8:end], true, nil
}
