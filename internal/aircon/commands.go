package aircon

// Factory state-query commands, captured from the vendor app. The trailing
// two bytes are the checksum trailer as the firmware ships it; the packets go
// out byte-for-byte as captured.
var (
	cmdGetInfo      = []byte{0x0c, 0x00, 0xbb, 0x00, 0x06, 0x80, 0x00, 0x00, 0x02, 0x00, 0x21, 0x01, 0x1b, 0x7e}
	cmdGetState     = []byte{0x0c, 0x00, 0xbb, 0x00, 0x06, 0x80, 0x00, 0x00, 0x02, 0x00, 0x11, 0x01, 0x2b, 0x7e}
	cmdGetSleepInfo = []byte{0x0c, 0x00, 0xbb, 0x00, 0x06, 0x80, 0x00, 0x00, 0x02, 0x00, 0x41, 0x01, 0xfb, 0x7d}
)

// probePayload is a 16-byte query with an unmapped response, kept for
// protocol exploration.
func probePayload() []byte {
	p := make([]byte, 16)
	p[0x00] = 0xd0
	p[0x01] = 0x07
	return p
}

// commandCopy hands out a fresh slice so callers can never mutate the
// captured templates.
func commandCopy(cmd []byte) []byte {
	return append([]byte(nil), cmd...)
}
