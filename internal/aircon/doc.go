// Package aircon implements the command set of Broadlink-managed air
// conditioners (Tornado 16X SQ and compatible units).
//
// Device state lives in a packed bit-field register spread over a 32-byte
// status payload: power, set point, mode, fan speed, both swing axes, and
// the sleep/display/health toggles each occupy designated bits of designated
// bytes. The vendor encoding is non-contiguous, so mode and fan speed are
// mapped through explicit tables rather than arithmetic; fan speed in
// particular depends jointly on two separate bytes.
//
// Bit patterns outside the known tables do occur (firmware updates ship new
// encodings), so every enum in this package keeps the raw bits and reports
// such values as unrecognized instead of crashing or coercing to a known
// variant. Unrecognized values decode fine but are rejected if fed back into
// a command.
//
// Status responses carry a target-sum checksum that some firmware revisions
// leave stale on non-critical reads. A mismatch is therefore surfaced as a
// flag on the decoded state (and logged), never as a decode failure; this
// deliberately differs from the heating controller's hard-fail policy.
package aircon
