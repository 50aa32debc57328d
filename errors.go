package cea608

import "github.com/pkg/errors"

// Sentinel errors for internal parse failures. None of these ever reach a
// caller of Push/Flush: the public contract is silent drop. They exist so the optional debug logger has a real error value to
// attach instead of an ad hoc string.
var (
	errSEITruncated      = errors.New("sei: truncated payload/type field")
	errSEINoT35Payload   = errors.New("sei: no user_data_registered_itu_t_t35 message")
	errUserDataShort     = errors.New("userdata: payload shorter than envelope header")
	errUserDataBadCC     = errors.New("userdata: country code byte is not 0xB5")
	errUserDataBadProv   = errors.New("userdata: provider code is not 49 (ATSC)")
	errUserDataBadID     = errors.New("userdata: identifier is not \"GA94\"")
	errUserDataBadType   = errors.New("userdata: caption data type code is not 0x03")
	errCCPacketNotCC     = errors.New("ccpacket: process_cc_data_flag not set")
	errCCPacketTruncated = errors.New("ccpacket: buffer shorter than declared cc_count")
)
