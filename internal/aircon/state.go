package aircon

import "fmt"

// Mode is the operating mode register value (byte 0x11 with the low three
// bits masked off). The named constants are the raw vendor encodings; any
// other value is a pattern this package does not know and carries itself as
// the raw bits.
type Mode byte

const (
	ModeAuto Mode = 0x00
	ModeCool Mode = 0x20
	ModeDry  Mode = 0x40
	ModeHeat Mode = 0x80
	ModeFan  Mode = 0xc0
)

// Known reports whether the value is one of the documented encodings.
func (m Mode) Known() bool {
	switch m {
	case ModeAuto, ModeCool, ModeDry, ModeHeat, ModeFan:
		return true
	}
	return false
}

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeCool:
		return "cool"
	case ModeDry:
		return "dry"
	case ModeHeat:
		return "heat"
	case ModeFan:
		return "fan"
	}
	return fmt.Sprintf("unrecognized(0x%02x)", byte(m))
}

// FanSpeed is the joint encoding of the two fan speed bytes (0x0f and 0x10),
// packed as high<<8|low for comparison. The combinations do not form a
// numeric scale; turbo is special-cased on the second byte alone, and every
// unknown pair survives as its raw value.
type FanSpeed uint16

const (
	FanLow   FanSpeed = 0x6000
	FanMid   FanSpeed = 0x4000
	FanHigh  FanSpeed = 0x2000
	FanMute  FanSpeed = 0x4080
	FanAuto  FanSpeed = 0xa000
	FanTurbo FanSpeed = 0x2040
)

// fanSpeedOf classifies the raw byte pair. A second byte of 0x40 means turbo
// regardless of the first byte.
func fanSpeedOf(first, second byte) FanSpeed {
	if second == 0x40 {
		return FanTurbo
	}
	return FanSpeed(uint16(first)<<8 | uint16(second))
}

// Known reports whether the value is one of the documented combinations.
func (f FanSpeed) Known() bool {
	switch f {
	case FanLow, FanMid, FanHigh, FanMute, FanAuto, FanTurbo:
		return true
	}
	return false
}

func (f FanSpeed) String() string {
	switch f {
	case FanLow:
		return "low"
	case FanMid:
		return "mid"
	case FanHigh:
		return "high"
	case FanMute:
		return "mute"
	case FanAuto:
		return "auto"
	case FanTurbo:
		return "turbo"
	}
	return fmt.Sprintf("unrecognized(0x%04x)", uint16(f))
}

// SwingH is the horizontal louver setting, a 3-bit field.
type SwingH byte

const (
	SwingHOn  SwingH = 0b000
	SwingHOff SwingH = 0b111
)

// Known reports whether the value is on or off; the hardware has no fixed
// horizontal positions.
func (s SwingH) Known() bool {
	return s == SwingHOn || s == SwingHOff
}

func (s SwingH) String() string {
	switch s {
	case SwingHOn:
		return "on"
	case SwingHOff:
		return "off"
	}
	return fmt.Sprintf("unrecognized(0b%03b)", byte(s))
}

// SwingV is the vertical louver setting, a 3-bit field mixing a boolean
// (sweep on/off) with five fixed positions.
type SwingV byte

const (
	SwingVOn   SwingV = 0b000
	SwingVOff  SwingV = 0b111
	SwingVPos1 SwingV = 1
	SwingVPos2 SwingV = 2
	SwingVPos3 SwingV = 3
	SwingVPos4 SwingV = 4
	SwingVPos5 SwingV = 5
)

// Known reports whether the value is on, off, or one of the five fixed
// positions.
func (s SwingV) Known() bool {
	return s <= SwingVPos5 || s == SwingVOff
}

func (s SwingV) String() string {
	switch {
	case s == SwingVOn:
		return "on"
	case s == SwingVOff:
		return "off"
	case s >= SwingVPos1 && s <= SwingVPos5:
		return fmt.Sprintf("position %d", byte(s))
	}
	return fmt.Sprintf("unrecognized(0b%03b)", byte(s))
}

// State is the decoded unit state. Each decode produces a fresh value; Raw
// keeps the source payload for diagnostics and ChecksumOK records whether the
// embedded trailer matched (a mismatch is tolerated on this profile).
type State struct {
	Power      bool
	TargetTemp float64 // set point, 16..32 in 0.5 degree steps
	Mode       Mode
	FanSpeed   FanSpeed
	SwingH     SwingH
	SwingV     SwingV
	Sleep      bool
	Display    bool
	Health     bool

	ChecksumOK bool
	Raw        []byte
}

// Info is the reduced state returned by the unit's info query. Most of its
// payload is not yet mapped; Raw keeps it for analysis.
type Info struct {
	Power bool
	Raw   []byte
}
