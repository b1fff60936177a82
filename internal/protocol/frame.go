package protocol

import (
	"encoding/binary"
	"fmt"
)

// Response envelope layout. The session layer returns the whole envelope with
// the payload region already decrypted; the device/transport status code sits
// in the clear header.
const (
	// EnvelopeErrorOffset is where the 2-byte little-endian device error
	// code lives in a response envelope.
	EnvelopeErrorOffset = 0x22

	// EnvelopePayloadOffset is where the decrypted application payload
	// starts in a response envelope.
	EnvelopePayloadOffset = 0x38
)

const (
	// ACChecksumOffset is where the 2-byte target-sum trailer sits inside
	// the air conditioner's fixed-size command and status templates. The
	// checksum covers every byte before it.
	ACChecksumOffset = 0x19

	// maxHysenPayload bounds the logical payload so that the framed length
	// (payload plus the 2-byte CRC trailer) still fits the device's
	// one-byte length field.
	maxHysenPayload = 0xFF - 2
)

// UnpackEnvelope validates a response envelope and returns the decrypted
// application payload. A non-zero device error code short-circuits before any
// payload interpretation or checksum work.
func UnpackEnvelope(resp []byte) ([]byte, error) {
	if len(resp) < EnvelopePayloadOffset {
		return nil, &StructuralError{Reason: fmt.Sprintf("response envelope is %d bytes, need at least %d", len(resp), EnvelopePayloadOffset)}
	}
	code := binary.LittleEndian.Uint16(resp[EnvelopeErrorOffset : EnvelopeErrorOffset+2])
	if code != 0 {
		return nil, &DeviceError{Code: code}
	}
	return resp[EnvelopePayloadOffset:], nil
}

// BuildHysenRequest frames a logical command payload for the heating
// controller: a 2-byte little-endian length prefix covering the payload plus
// the CRC trailer, the payload itself, then the CRC-16 of the payload emitted
// low byte first.
func BuildHysenRequest(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, &InvalidParameterError{Param: "payload", Detail: "must not be empty"}
	}
	if len(payload) > maxHysenPayload {
		return nil, &InvalidParameterError{Param: "payload", Detail: fmt.Sprintf("%d bytes exceeds the %d byte frame limit", len(payload), maxHysenPayload)}
	}

	frame := make([]byte, 0, len(payload)+4)
	frame = append(frame, byte(len(payload)+2), 0x00)
	frame = append(frame, payload...)

	crc := CRC16(payload)
	frame = append(frame, byte(crc), byte(crc>>8))
	return frame, nil
}

// ParseHysenResponse validates and strips the heating controller framing from
// a decrypted response payload, returning the logical payload. The declared
// length at byte 0 covers the logical payload plus the CRC trailer; a
// declared length inconsistent with the actual size is a StructuralError and
// a CRC mismatch is an IntegrityError. Both are fatal on this profile.
func ParseHysenResponse(payload []byte) ([]byte, error) {
	if len(payload) < 4 {
		return nil, &StructuralError{Reason: fmt.Sprintf("response is %d bytes, too short to carry framing", len(payload))}
	}

	declared := int(payload[0])
	if declared+2 > len(payload) {
		return nil, &StructuralError{Reason: "length field exceeds payload"}
	}
	if declared < 2 {
		return nil, &StructuralError{Reason: fmt.Sprintf("length field %d is smaller than its own prefix", declared)}
	}

	crc := CRC16(payload[2:declared])
	trailer := binary.LittleEndian.Uint16(payload[declared : declared+2])
	if trailer != crc {
		return nil, &IntegrityError{Expected: crc, Actual: trailer}
	}
	return payload[2:declared], nil
}

// WriteACChecksum computes the target-sum over the bytes before the trailer
// and stores it in place. Called last when building an air conditioner
// command, after every other byte of the template is set.
func WriteACChecksum(packet []byte) error {
	if len(packet) < ACChecksumOffset+2 {
		return &StructuralError{Reason: fmt.Sprintf("packet is %d bytes, checksum trailer needs %d", len(packet), ACChecksumOffset+2)}
	}
	lo, hi := TargetSum(packet[:ACChecksumOffset])
	packet[ACChecksumOffset] = lo
	packet[ACChecksumOffset+1] = hi
	return nil
}

// VerifyACChecksum recomputes the target-sum over a status payload and
// compares it with the embedded trailer. A mismatch on this profile is
// tolerated: some firmware revisions answer non-critical reads with a stale
// trailer, so callers surface the result as a warning and keep decoding.
func VerifyACChecksum(payload []byte) bool {
	if len(payload) < ACChecksumOffset+2 {
		return false
	}
	lo, hi := TargetSum(payload[:ACChecksumOffset])
	return payload[ACChecksumOffset] == lo && payload[ACChecksumOffset+1] == hi
}
