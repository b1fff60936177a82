package aircon

import (
	"fmt"
	"math"

	"github.com/kajell/broadclimate/internal/protocol"
)

// statePayloadLen is the exact size of a state query response payload.
const statePayloadLen = 32

// Set point range accepted by the unit.
const (
	minTargetTemp = 16.0
	maxTargetTemp = 32.0
)

// Status register layout. The same offsets serve the decode of a state
// response and, mirrored, the encode of a set command.
const (
	offTempSwingV  = 0x0c // bits 7-3: (temp-8), bits 2-0: vertical swing
	offSwingH      = 0x0d // bits 7-5: horizontal swing
	offHalfDegree  = 0x0e // bit 7: add half a degree to the set point
	offFanFirst    = 0x0f
	offFanSecond   = 0x10
	offModeSleep   = 0x11 // bits 7-3: mode, bit 2: sleep (command direction)
	offPowerHealth = 0x14 // bit 5: power, bits 1-0: health
	offDisplay     = 0x16 // bit 4
	offSleepStatus = 0x1a // bit 2 clear means sleep engaged (status direction)
)

// DecodeState unpacks the 32-byte status register. A checksum mismatch does
// not fail the decode: it is recorded on the returned state, matching the
// unit's own tolerance for stale trailers on non-critical reads.
func DecodeState(payload []byte) (*State, error) {
	if len(payload) != statePayloadLen {
		return nil, &protocol.StructuralError{Reason: fmt.Sprintf("state payload is %d bytes, want %d", len(payload), statePayloadLen)}
	}

	s := &State{
		Raw:        append([]byte(nil), payload...),
		ChecksumOK: protocol.VerifyACChecksum(payload),
	}

	s.Power = payload[offPowerHealth]&0x20 == 0x20
	s.TargetTemp = float64(payload[offTempSwingV]>>3) + 8
	if payload[offHalfDegree]&0x80 != 0 {
		s.TargetTemp += 0.5
	}

	s.SwingV = SwingV(payload[offTempSwingV] & 0b111)
	s.SwingH = SwingH(payload[offSwingH] >> 5 & 0b111)
	s.Mode = Mode(payload[offModeSleep] & 0xf8)
	s.FanSpeed = fanSpeedOf(payload[offFanFirst], payload[offFanSecond])

	s.Sleep = payload[offSleepStatus]&0b100 == 0
	s.Display = payload[offDisplay]&0x10 == 0x10
	s.Health = payload[offPowerHealth]&0b11 == 0b11

	return s, nil
}

// decodeInfo unpacks an info query response. Only the power bit at byte 0x0d
// has been mapped so far.
func decodeInfo(payload []byte) (*Info, error) {
	if len(payload) < 0x0e {
		return nil, &protocol.StructuralError{Reason: fmt.Sprintf("info payload is %d bytes, need at least %d", len(payload), 0x0e)}
	}
	return &Info{
		Power: payload[0x0d]&0x01 == 0x01,
		Raw:   append([]byte(nil), payload...),
	}, nil
}

// Settings selects the fields of a set command. A nil field keeps the unit's
// current value: SetAdvanced merges the overlay onto a freshly read state
// before encoding (read-modify-write).
type Settings struct {
	Power      *bool
	TargetTemp *float64
	Mode       *Mode
	FanSpeed   *FanSpeed
	SwingH     *SwingH
	SwingV     *SwingV
	Sleep      *bool
	Display    *bool
	Health     *bool
}

// ApplyTo overlays the specified fields onto a snapshot of the current state.
func (o Settings) ApplyTo(cur State) State {
	if o.Power != nil {
		cur.Power = *o.Power
	}
	if o.TargetTemp != nil {
		cur.TargetTemp = *o.TargetTemp
	}
	if o.Mode != nil {
		cur.Mode = *o.Mode
	}
	if o.FanSpeed != nil {
		cur.FanSpeed = *o.FanSpeed
	}
	if o.SwingH != nil {
		cur.SwingH = *o.SwingH
	}
	if o.SwingV != nil {
		cur.SwingV = *o.SwingV
	}
	if o.Sleep != nil {
		cur.Sleep = *o.Sleep
	}
	if o.Display != nil {
		cur.Display = *o.Display
	}
	if o.Health != nil {
		cur.Health = *o.Health
	}
	return cur
}

// advancedPrefix is the fixed header of the set command template: length and
// command words followed by the dispatch bytes.
var advancedPrefix = []byte{0x19, 0x00, 0xbb, 0x00, 0x06, 0x80, 0x00, 0x00, 0x0f, 0x00, 0x01, 0x01}

// fanSpeedBytes maps a symbolic fan speed back to its wire pair. Mute is only
// accepted by the unit in fan mode.
func fanSpeedBytes(f FanSpeed, m Mode) (first, second byte, err error) {
	switch f {
	case FanLow:
		return 0x60, 0x00, nil
	case FanMid:
		return 0x40, 0x00, nil
	case FanHigh:
		return 0x20, 0x00, nil
	case FanAuto:
		return 0xa0, 0x00, nil
	case FanTurbo:
		// Only the second byte matters for turbo; 0x20 is the observed
		// companion value.
		return 0x20, 0x40, nil
	case FanMute:
		if m != ModeFan {
			return 0, 0, &protocol.InvalidParameterError{Param: "fan speed", Detail: "mute is only available in fan mode"}
		}
		return 0x40, 0x80, nil
	}
	return 0, 0, &protocol.InvalidParameterError{Param: "fan speed", Detail: f.String()}
}

// EncodeAdvanced packs an effective state into the fixed-size set command.
// Every field is validated against the known symbolic variants before any
// byte is written; the checksum is written last, over all preceding template
// bytes. The bit layout is the exact inverse of DecodeState: vertical swing
// shares byte 0x0c with the set point and horizontal swing occupies the high
// bits of byte 0x0d.
func EncodeAdvanced(st State) ([]byte, error) {
	if st.TargetTemp < minTargetTemp || st.TargetTemp > maxTargetTemp {
		return nil, &protocol.InvalidParameterError{Param: "target temperature", Detail: fmt.Sprintf("%v outside %v..%v", st.TargetTemp, minTargetTemp, maxTargetTemp)}
	}
	if frac := math.Mod(st.TargetTemp*2, 1); frac != 0 {
		return nil, &protocol.InvalidParameterError{Param: "target temperature", Detail: fmt.Sprintf("%v is not a 0.5 degree step", st.TargetTemp)}
	}
	if !st.Mode.Known() {
		return nil, &protocol.InvalidParameterError{Param: "mode", Detail: st.Mode.String()}
	}
	if !st.SwingH.Known() {
		return nil, &protocol.InvalidParameterError{Param: "horizontal swing", Detail: st.SwingH.String()}
	}
	if !st.SwingV.Known() {
		return nil, &protocol.InvalidParameterError{Param: "vertical swing", Detail: st.SwingV.String()}
	}
	fanFirst, fanSecond, err := fanSpeedBytes(st.FanSpeed, st.Mode)
	if err != nil {
		return nil, err
	}

	packet := make([]byte, statePayloadLen)
	copy(packet, advancedPrefix)

	packet[offTempSwingV] = byte(int(st.TargetTemp)-8)<<3 | byte(st.SwingV)
	packet[offSwingH] = byte(st.SwingH)<<5 | 0b100
	packet[offHalfDegree] = 0x2d
	if math.Mod(st.TargetTemp, 1) == 0.5 {
		packet[offHalfDegree] |= 0x80
	}
	packet[offFanFirst] = fanFirst
	packet[offFanSecond] = fanSecond

	packet[offModeSleep] = byte(st.Mode)
	if st.Sleep {
		packet[offModeSleep] |= 0b100
	}

	if st.Health {
		packet[offPowerHealth] |= 0b11
	}
	if st.Power {
		packet[offPowerHealth] |= 0b100000
	}
	if st.Display {
		packet[offDisplay] = 0b10000
	}
	packet[0x18] = 0b101 // constant in captures, purpose not established

	if err := protocol.WriteACChecksum(packet); err != nil {
		return nil, err
	}
	return packet, nil
}
