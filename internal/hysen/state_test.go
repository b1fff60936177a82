package hysen

import (
	"errors"
	"testing"

	"github.com/kajell/broadclimate/internal/protocol"
)

// encodeStatusBytes builds a status payload from a Status value, mirroring
// the decode offsets. Test helper only; the device is the sole producer of
// status payloads in production.
func encodeStatusBytes(s *Status) []byte {
	payload := make([]byte, statusPayloadLen)

	if s.RemoteLock {
		payload[offFlags] |= 0x01
	}
	if s.Power {
		payload[offPowerFlags] |= 0x01
	}
	if s.Active {
		payload[offPowerFlags] |= 0x10
	}
	if s.ManualTarget {
		payload[offPowerFlags] |= 0x40
	}
	payload[offRoomTemp] = byte(int(s.RoomTemp * 2))
	payload[offTargetTemp] = byte(int(s.TargetTemp * 2))
	payload[offModes] = byte(s.LoopMode<<4 | s.AutoMode&0x0f)
	payload[offSensor] = byte(s.Sensor)
	payload[offOSV] = byte(s.ExternalLimit)
	payload[offDIF] = byte(s.FloorDeadzone)
	payload[offSVH] = byte(s.UpperLimit)
	payload[offSVL] = byte(s.LowerLimit)

	// Doubled two's complement, the same encoding setAdvancedPayload uses.
	calib := int(s.Calibration * 2)
	payload[offCalibHi] = byte(calib >> 8)
	payload[offCalibLo] = byte(calib)

	payload[offAntiFreeze] = flagByte(s.AntiFreeze)
	payload[offPowerOnMem] = flagByte(s.PowerOnMemory)
	payload[offUnknown] = s.Unknown
	payload[offExtTemp] = byte(int(s.ExternalTemp * 2))
	payload[offHour] = byte(s.Hour)
	payload[offMinute] = byte(s.Minute)
	payload[offSecond] = byte(s.Second)
	payload[offDayOfWeek] = byte(s.DayOfWeek)

	for i := 0; i < WeekdaySlots+WeekendSlots; i++ {
		var e ScheduleEntry
		if i < WeekdaySlots {
			e = s.Weekday[i]
		} else {
			e = s.Weekend[i-WeekdaySlots]
		}
		payload[2*i+offScheduleHM] = byte(e.StartHour)
		payload[2*i+offScheduleHM+1] = byte(e.StartMinute)
		payload[i+offScheduleTmp] = byte(int(e.Temperature * 2))
	}

	return payload
}

func TestDecodeStatusRoundTrip(t *testing.T) {
	want := &Status{
		RemoteLock:    true,
		Power:         true,
		Active:        true,
		ManualTarget:  false,
		RoomTemp:      21.5,
		TargetTemp:    23.0,
		AutoMode:      1,
		LoopMode:      2,
		Sensor:        1,
		ExternalLimit: 42,
		FloorDeadzone: 2,
		UpperLimit:    35,
		LowerLimit:    5,
		Calibration:   -0.5,
		AntiFreeze:    true,
		PowerOnMemory: false,
		Unknown:       0x07,
		ExternalTemp:  17.5,
		Hour:          22,
		Minute:        11,
		Second:        59,
		DayOfWeek:     7,
		Weekday: [WeekdaySlots]ScheduleEntry{
			{6, 30, 20.0}, {8, 0, 16.5}, {11, 30, 16.5},
			{13, 0, 16.5}, {17, 0, 22.0}, {22, 0, 15.0},
		},
		Weekend: [WeekendSlots]ScheduleEntry{
			{8, 30, 22.0}, {23, 0, 15.0},
		},
	}

	got, err := DecodeStatus(encodeStatusBytes(want))
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}
	if *got != *want {
		t.Errorf("DecodeStatus() = %+v, want %+v", got, want)
	}
}

func TestDecodeStatusRoomTemp(t *testing.T) {
	// Raw temperature bytes are the value doubled: 0x28 (40) is 20.0C.
	payload := make([]byte, statusPayloadLen)
	payload[offRoomTemp] = 0x28

	got, err := DecodeStatus(payload)
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}
	if got.RoomTemp != 20.0 {
		t.Errorf("RoomTemp = %v, want 20.0", got.RoomTemp)
	}
}

func TestDecodeStatusCalibrationMirror(t *testing.T) {
	// The mirror applies to the halved value, so the only raw pattern that
	// maps negative is 0xffff; everything else reads back as the halved
	// unsigned value.
	tests := []struct {
		name   string
		hi, lo byte
		want   float64
	}{
		{"zero", 0x00, 0x00, 0.0},
		{"positive half degree", 0x00, 0x01, 0.5},
		{"largest plain positive", 0x7f, 0xff, 16383.5},
		{"high bit set stays positive", 0x80, 0x00, 16384.0},
		{"one below all-ones stays positive", 0xff, 0xfe, 32767.0},
		{"all-ones mirrors to negative half degree", 0xff, 0xff, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, statusPayloadLen)
			payload[offCalibHi] = tt.hi
			payload[offCalibLo] = tt.lo

			got, err := DecodeStatus(payload)
			if err != nil {
				t.Fatalf("DecodeStatus() error = %v", err)
			}
			if got.Calibration != tt.want {
				t.Errorf("Calibration = %v, want %v", got.Calibration, tt.want)
			}
		})
	}
}

func TestDecodeStatusCalibrationWriteReadback(t *testing.T) {
	// The advanced-settings write carries the calibration at the same two
	// offsets the status read does, so the bytes a write emits for -0.5 must
	// decode back to -0.5.
	adv := setAdvancedPayload(AdvancedSettings{Calibration: -0.5})

	payload := make([]byte, statusPayloadLen)
	payload[offCalibHi] = adv[13]
	payload[offCalibLo] = adv[14]

	got, err := DecodeStatus(payload)
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}
	if got.Calibration != -0.5 {
		t.Errorf("Calibration = %v, want -0.5", got.Calibration)
	}
}

func TestDecodeStatusScheduleOffsets(t *testing.T) {
	payload := make([]byte, statusPayloadLen)
	// First weekday slot and last weekend slot pin both ends of the two
	// interleaved progressions.
	payload[23] = 6  // weekday[0] start hour (2*0+23)
	payload[24] = 30 // weekday[0] start minute
	payload[39] = 40 // weekday[0] temperature (0+39)
	payload[37] = 23 // weekend[1] start hour (2*7+23)
	payload[38] = 45 // weekend[1] start minute
	payload[46] = 31 // weekend[1] temperature (7+39)

	got, err := DecodeStatus(payload)
	if err != nil {
		t.Fatalf("DecodeStatus() error = %v", err)
	}

	if e := got.Weekday[0]; e != (ScheduleEntry{6, 30, 20.0}) {
		t.Errorf("Weekday[0] = %+v, want {6 30 20}", e)
	}
	if e := got.Weekend[1]; e != (ScheduleEntry{23, 45, 15.5}) {
		t.Errorf("Weekend[1] = %+v, want {23 45 15.5}", e)
	}
}

func TestDecodeStatusTooShort(t *testing.T) {
	_, err := DecodeStatus(make([]byte, statusPayloadLen-1))
	var serr *protocol.StructuralError
	if !errors.As(err, &serr) {
		t.Errorf("DecodeStatus() error = %v, want *protocol.StructuralError", err)
	}
}
