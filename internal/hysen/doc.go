// Package hysen implements the command set of Hysen-style heating
// controllers (floor heating thermostats sold under several Broadlink OEM
// brands).
//
// The device exposes a register-style command surface: reads return a
// fixed-offset status block (power and mode flags, temperatures in 0.5
// degree steps, the advanced calibration block, the wall clock, and the
// weekday/weekend timer schedule), writes are short command-id-prefixed
// payloads. Framing and CRC handling live in the protocol package; this
// package owns the field layout.
//
// All temperatures travel on the wire as the value doubled and truncated to
// one byte, so callers must stay within 0.5 degree steps and one byte of
// range. Out-of-range values are not a software error: the device behavior
// is simply undefined.
package hysen
