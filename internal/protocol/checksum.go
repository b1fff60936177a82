package protocol

// Two checksum algorithms are in play, one per device family. They are not
// interchangeable: a frame's trailer is meaningful only under the algorithm
// of its own profile.

// crc16Poly is the reflected polynomial used by the heating controller
// firmware (init 0xFFFF, no final XOR).
const crc16Poly = 0xA001

// crc16Table is precomputed at startup for byte-at-a-time computation.
var crc16Table [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crc16Poly
			} else {
				crc >>= 1
			}
		}
		crc16Table[i] = crc
	}
}

// CRC16 computes the heating controller checksum over data. The result is
// emitted on the wire low byte first.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = (crc >> 8) ^ crc16Table[byte(crc)^b]
	}
	return crc
}

// checksumTarget is the 17-bit constant the air conditioner firmware
// subtracts the payload sum from.
const checksumTarget = 0x20017

// TargetSum computes the air conditioner rolling checksum over data: bytes
// are paired into little-endian 16-bit words (even offsets contribute the low
// byte, odd offsets the high byte shifted left 8), summed modulo 0x10000, and
// the result is the distance from that sum to the target. Returned low byte
// first, matching the trailer order on the wire.
func TargetSum(data []byte) (lo, hi byte) {
	var sum uint32
	for i, b := range data {
		if i%2 == 0 {
			sum += uint32(b)
		} else {
			sum += uint32(b) << 8
		}
	}
	result := (checksumTarget - (sum & 0xFFFF)) & 0xFFFF
	return byte(result), byte(result >> 8)
}
