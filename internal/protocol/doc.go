// Package protocol implements the application-layer command framing shared
// by Broadlink-family climate devices.
//
// Two device profiles share a common request/response pattern but diverge in
// checksum algorithm and framing:
//
//   - Heating controller: variable-length frames with a 2-byte little-endian
//     length prefix (logical payload + 2 CRC bytes) and a CRC-16 trailer
//     emitted low byte first. Checksum failure on a response is fatal.
//   - Air conditioner: fixed-size command templates with a length/command
//     header already embedded and a target-sum trailer at offsets 0x19-0x1a
//     covering all preceding bytes. Checksum failure on a response is a
//     recoverable warning; field decoding proceeds.
//
// The hard-fail/soft-fail asymmetry between the two profiles is a deliberate
// reproduction of observed device tolerance, not an inconsistency.
//
// # Response envelope
//
// The secure session collaborator returns a response envelope whose payload
// region is already decrypted. The envelope carries a 2-byte little-endian
// device error code at offset 0x22 and the application payload from offset
// 0x38. UnpackEnvelope consumes the error code (failing with DeviceError
// before any checksum work) and returns the payload slice.
//
// # Error taxonomy
//
//   - DeviceError: non-zero status from the device, fatal
//   - StructuralError: declared length inconsistent with payload size, fatal
//   - IntegrityError: CRC mismatch on the heating controller profile, fatal
//   - InvalidParameterError: caller-supplied value rejected before any I/O
//
// # Thread safety
//
// Everything in this package is stateless and safe for concurrent use. The
// underlying device protocol has no request identifiers and cannot multiplex,
// so callers must serialize transactions against one physical device; that is
// the session layer's job, not this package's.
package protocol
