package hysen

import (
	"fmt"

	"github.com/kajell/broadclimate/internal/protocol"
)

// Schedule shape: the device always stores six weekday slots and two weekend
// slots. The fixed-size arrays make the shape structural rather than checked.
const (
	WeekdaySlots = 6
	WeekendSlots = 2
)

// statusPayloadLen is the highest offset the status decode touches plus one
// (the last weekend temperature byte at offset 46).
const statusPayloadLen = 47

// Status decode offsets. Schedule entries interleave two arithmetic
// progressions over the same region: start times at 2*i+23 and temperatures
// at i+39, with weekday slots at i=0..5 and weekend slots at i=6..7.
const (
	offFlags       = 3 // bit 0: remote lock
	offPowerFlags  = 4 // bit 0: power, bit 4: active, bit 6: manual target
	offRoomTemp    = 5
	offTargetTemp  = 6
	offModes       = 7 // low nibble: auto mode, high nibble: loop mode
	offSensor      = 8
	offOSV         = 9
	offDIF         = 10
	offSVH         = 11
	offSVL         = 12
	offCalibHi     = 13
	offCalibLo     = 14
	offAntiFreeze  = 15
	offPowerOnMem  = 16
	offUnknown     = 17
	offExtTemp     = 18
	offHour        = 19
	offMinute      = 20
	offSecond      = 21
	offDayOfWeek   = 22
	offScheduleHM  = 23
	offScheduleTmp = 39
)

// ScheduleEntry is one timer slot: the target temperature becomes effective
// at StartHour:StartMinute. Entries are kept in activation order; this layer
// does not validate monotonic times.
type ScheduleEntry struct {
	StartHour   int
	StartMinute int
	Temperature float64
}

// Status is the full decoded state of the controller, including the timer
// schedule. Each decode produces a fresh value; nothing is shared or retained
// across transactions.
type Status struct {
	RemoteLock   bool // front panel buttons disabled
	Power        bool
	Active       bool // currently calling for heat
	ManualTarget bool // manual temperature override engaged

	RoomTemp   float64
	TargetTemp float64

	AutoMode int // 0 manual, 1 scheduled
	LoopMode int // index into the weekday/weekend day groupings

	// Advanced settings block (sensor selection and limits, see
	// AdvancedSettings for meanings).
	Sensor        int
	ExternalLimit int
	FloorDeadzone int
	UpperLimit    int
	LowerLimit    int
	Calibration   float64
	AntiFreeze    bool
	PowerOnMemory bool

	// Unknown carries status byte 17 verbatim; its meaning has not been
	// established from captures.
	Unknown byte

	ExternalTemp float64

	// Device wall clock. DayOfWeek runs 1 (Monday) through 7 (Sunday).
	Hour      int
	Minute    int
	Second    int
	DayOfWeek int

	Weekday [WeekdaySlots]ScheduleEntry
	Weekend [WeekendSlots]ScheduleEntry
}

// DecodeStatus extracts a Status from a full status read. The payload here is
// the logical payload after framing and CRC have been stripped.
func DecodeStatus(payload []byte) (*Status, error) {
	if len(payload) < statusPayloadLen {
		return nil, &protocol.StructuralError{Reason: fmt.Sprintf("status payload is %d bytes, need %d", len(payload), statusPayloadLen)}
	}

	s := &Status{
		RemoteLock:   payload[offFlags]&0x01 != 0,
		Power:        payload[offPowerFlags]&0x01 != 0,
		Active:       payload[offPowerFlags]>>4&0x01 != 0,
		ManualTarget: payload[offPowerFlags]>>6&0x01 != 0,
		RoomTemp:     float64(payload[offRoomTemp]) / 2.0,
		TargetTemp:   float64(payload[offTargetTemp]) / 2.0,
		AutoMode:     int(payload[offModes] & 0x0f),
		LoopMode:     int(payload[offModes] >> 4 & 0x0f),

		Sensor:        int(payload[offSensor]),
		ExternalLimit: int(payload[offOSV]),
		FloorDeadzone: int(payload[offDIF]),
		UpperLimit:    int(payload[offSVH]),
		LowerLimit:    int(payload[offSVL]),
		AntiFreeze:    payload[offAntiFreeze] != 0,
		PowerOnMemory: payload[offPowerOnMem] != 0,
		Unknown:       payload[offUnknown],
		ExternalTemp:  float64(payload[offExtTemp]) / 2.0,

		Hour:      int(payload[offHour]),
		Minute:    int(payload[offMinute]),
		Second:    int(payload[offSecond]),
		DayOfWeek: int(payload[offDayOfWeek]),
	}

	// The calibration offset travels big-endian, written as the doubled
	// value in two's complement. The decode halves first and then mirrors
	// anything above 32767, so only the all-ones pattern (0xffff, the
	// encoding of -0.5) maps back to a negative; deeper negatives do not
	// survive the device's own representation.
	calib := float64(int(payload[offCalibHi])<<8|int(payload[offCalibLo])) / 2.0
	if calib > 32767 {
		calib = 32767 - calib
	}
	s.Calibration = calib

	for i := 0; i < WeekdaySlots+WeekendSlots; i++ {
		entry := ScheduleEntry{
			StartHour:   int(payload[2*i+offScheduleHM]),
			StartMinute: int(payload[2*i+offScheduleHM+1]),
			Temperature: float64(payload[i+offScheduleTmp]) / 2.0,
		}
		if i < WeekdaySlots {
			s.Weekday[i] = entry
		} else {
			s.Weekend[i-WeekdaySlots] = entry
		}
	}

	return s, nil
}
