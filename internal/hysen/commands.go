package hysen

// Command payload builders. Each returns the logical payload only; the
// protocol package adds the length prefix and CRC trailer.
//
// The controller speaks a register-style dialect: byte 0 is the unit id
// (always 0x01), byte 1 a function code (0x03 read, 0x06 write single,
// 0x10 write block), followed by a register address and operands.

const (
	unitID        = 0x01
	fnReadStatus  = 0x03
	fnWriteSingle = 0x06
	fnWriteBlock  = 0x10
)

// statusRequestPayload reads the full status block including the schedule
// (0x16 registers).
func statusRequestPayload() []byte {
	return []byte{unitID, fnReadStatus, 0x00, 0x00, 0x00, 0x16}
}

// tempRequestPayload reads the short status block (0x08 registers), enough
// for the room and external temperature bytes.
func tempRequestPayload() []byte {
	return []byte{unitID, fnReadStatus, 0x00, 0x00, 0x00, 0x08}
}

// setPowerPayload switches the device on or off and controls the front panel
// lock. Power off does not drop the device's network connectivity.
func setPowerPayload(power, remoteLock bool) []byte {
	return []byte{unitID, fnWriteSingle, 0x00, 0x00, flagByte(remoteLock), flagByte(power)}
}

// setTempPayload sets the manual target temperature, which also flips the
// controller into manual mode when it is running a schedule. The temperature
// is carried as temp*2 truncated to one byte; callers keep temp within 0.5
// degree steps and byte range, anything else is undefined device behavior
// rather than a software error.
func setTempPayload(temp float64) []byte {
	return []byte{unitID, fnWriteSingle, 0x00, 0x01, 0x00, byte(int(temp * 2))}
}

// setModePayload selects scheduled (autoMode=1) or manual (autoMode=0)
// operation and the loop mode grouping of days. The two nibbles pack into a
// single register byte with the loop mode stored plus one.
func setModePayload(autoMode, loopMode, sensor int) []byte {
	mode := byte((loopMode+1)<<4 | autoMode&0x0f)
	return []byte{unitID, fnWriteSingle, 0x00, 0x02, mode, byte(sensor)}
}

// setTimePayload sets the device wall clock. dayOfWeek runs 1 (Monday)
// through 7 (Sunday).
func setTimePayload(hour, minute, second, dayOfWeek int) []byte {
	return []byte{
		unitID, fnWriteBlock, 0x00, 0x08, 0x00, 0x02, 0x04,
		byte(hour), byte(minute), byte(second), byte(dayOfWeek),
	}
}

// AdvancedSettings is the controller's installer-level configuration block.
// Field names follow the front panel menu mnemonics.
type AdvancedSettings struct {
	LoopMode      int     // day grouping index, as in SetMode
	Sensor        int     // SEN: 0 internal, 1 external, 2 internal control with external limit
	ExternalLimit int     // OSV: external sensor limit temperature, 5..99
	FloorDeadzone int     // dIF: floor temperature deadzone, 1..9
	UpperLimit    int     // SVH: internal sensor upper limit, 5..99
	LowerLimit    int     // SVL: internal sensor lower limit, 5..99
	Calibration   float64 // AdJ: measured temperature calibration, 0.5 degree steps
	AntiFreeze    bool    // FrE
	PowerOnMemory bool    // POn
}

// setAdvancedPayload writes the whole advanced block in one transaction. The
// calibration offset is doubled and carried big-endian; negative values rely
// on the byte casts of the arithmetic shift, mirroring how the device decodes
// them.
func setAdvancedPayload(s AdvancedSettings) []byte {
	adj := int(s.Calibration * 2)
	return []byte{
		unitID, fnWriteBlock, 0x00, 0x02, 0x00, 0x05, 0x0a,
		byte(s.LoopMode), byte(s.Sensor),
		byte(s.ExternalLimit), byte(s.FloorDeadzone),
		byte(s.UpperLimit), byte(s.LowerLimit),
		byte(adj >> 8), byte(adj),
		flagByte(s.AntiFreeze), flagByte(s.PowerOnMemory),
	}
}

// setSchedulePayload writes all eight timer slots: weekday and weekend start
// times first, then the corresponding temperatures. The fixed array types
// guarantee the 6/2 shape.
func setSchedulePayload(weekday [WeekdaySlots]ScheduleEntry, weekend [WeekendSlots]ScheduleEntry) []byte {
	payload := make([]byte, 0, 7+2*(WeekdaySlots+WeekendSlots)+WeekdaySlots+WeekendSlots)
	payload = append(payload, unitID, fnWriteBlock, 0x00, 0x0a, 0x00, 0x0c, 0x18)

	for _, e := range weekday {
		payload = append(payload, byte(e.StartHour), byte(e.StartMinute))
	}
	for _, e := range weekend {
		payload = append(payload, byte(e.StartHour), byte(e.StartMinute))
	}
	for _, e := range weekday {
		payload = append(payload, byte(int(e.Temperature*2)))
	}
	for _, e := range weekend {
		payload = append(payload, byte(int(e.Temperature*2)))
	}
	return payload
}

func flagByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
