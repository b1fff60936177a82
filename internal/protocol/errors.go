package protocol

import "fmt"

// DeviceError is a non-zero status code reported by the device itself in the
// response envelope. It is fatal to the transaction and is never retried at
// this layer.
type DeviceError struct {
	Code uint16
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device returned error code 0x%04x", e.Code)
}

// StructuralError indicates that a payload's declared framing is inconsistent
// with its actual size (framing desync or protocol mismatch). The "length
// field exceeds payload" case and general malformation are intentionally one
// error class.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "malformed frame: " + e.Reason
}

// IntegrityError is a checksum mismatch on the heating controller profile,
// where checksum failure is a hard failure. The air conditioner profile never
// produces this error; its mismatches surface as a flag on the decoded state
// instead.
type IntegrityError struct {
	Expected uint16
	Actual   uint16
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%04x, got 0x%04x", e.Expected, e.Actual)
}

// InvalidParameterError rejects a caller-supplied logical value before any
// frame is built or any I/O is attempted.
type InvalidParameterError struct {
	Param  string
	Detail string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Detail)
}
