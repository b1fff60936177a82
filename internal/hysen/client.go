package hysen

import (
	"fmt"

	"github.com/kajell/broadclimate/internal/logging"
	"github.com/kajell/broadclimate/internal/protocol"
	"github.com/kajell/broadclimate/internal/transport"
)

// Client issues commands to one heating controller over a secure session.
//
// The client itself is stateless; every method is a single synchronous
// build/send/parse transaction. Concurrent use is safe only as far as the
// Transport serializes physical device access, because the wire protocol
// cannot correlate overlapping transactions.
type Client struct {
	tr transport.Transport
}

// NewClient wraps an established device session.
func NewClient(tr transport.Transport) *Client {
	return &Client{tr: tr}
}

// roundTrip frames payload, runs one transaction, and returns the verified
// logical response payload.
func (c *Client) roundTrip(payload []byte) ([]byte, error) {
	frame, err := protocol.BuildHysenRequest(payload)
	if err != nil {
		return nil, err
	}
	logging.LogRawBytes("hysen request", frame)

	resp, err := c.tr.SendTransaction(transport.CommandPassthrough, frame)
	if err != nil {
		return nil, err
	}

	body, err := protocol.UnpackEnvelope(resp)
	if err != nil {
		return nil, err
	}
	logical, err := protocol.ParseHysenResponse(body)
	if err != nil {
		return nil, err
	}
	logging.LogRawBytes("hysen response", logical)
	logging.LogTransaction("hysen", transport.CommandPassthrough, len(frame), len(logical))
	return logical, nil
}

// GetStatus reads the full device state, timer schedule included.
func (c *Client) GetStatus() (*Status, error) {
	payload, err := c.roundTrip(statusRequestPayload())
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}
	return DecodeStatus(payload)
}

// GetRoomTemp reads the room temperature in degrees celsius.
func (c *Client) GetRoomTemp() (float64, error) {
	payload, err := c.roundTrip(tempRequestPayload())
	if err != nil {
		return 0, fmt.Errorf("read room temperature: %w", err)
	}
	if len(payload) <= offRoomTemp {
		return 0, &protocol.StructuralError{Reason: fmt.Sprintf("temperature payload is %d bytes, need %d", len(payload), offRoomTemp+1)}
	}
	return float64(payload[offRoomTemp]) / 2.0, nil
}

// GetExternalTemp reads the external (floor) sensor temperature in degrees
// celsius.
func (c *Client) GetExternalTemp() (float64, error) {
	payload, err := c.roundTrip(tempRequestPayload())
	if err != nil {
		return 0, fmt.Errorf("read external temperature: %w", err)
	}
	if len(payload) <= offExtTemp {
		return 0, &protocol.StructuralError{Reason: fmt.Sprintf("temperature payload is %d bytes, need %d", len(payload), offExtTemp+1)}
	}
	return float64(payload[offExtTemp]) / 2.0, nil
}

// SetTemp sets the manual target temperature. Precondition: temp is a 0.5
// degree step representable in one byte when doubled; out-of-range values
// produce undefined device behavior. Activates manual mode if the controller
// is currently on a schedule.
func (c *Client) SetTemp(temp float64) error {
	if _, err := c.roundTrip(setTempPayload(temp)); err != nil {
		return fmt.Errorf("set temperature: %w", err)
	}
	return nil
}

// SetPower switches the device on or off and sets the front panel lock.
func (c *Client) SetPower(power, remoteLock bool) error {
	if _, err := c.roundTrip(setPowerPayload(power, remoteLock)); err != nil {
		return fmt.Errorf("set power: %w", err)
	}
	return nil
}

// SetMode selects scheduled (autoMode=1) or manual (autoMode=0) operation.
// loopMode picks the day grouping: 0 runs the weekend schedule on Saturday
// and Sunday, 1 on Sunday only, 2 runs the weekday schedule every day.
func (c *Client) SetMode(autoMode, loopMode, sensor int) error {
	if autoMode < 0 || autoMode > 15 {
		return &protocol.InvalidParameterError{Param: "autoMode", Detail: fmt.Sprintf("%d outside 0..15", autoMode)}
	}
	if loopMode < 0 || loopMode > 14 {
		return &protocol.InvalidParameterError{Param: "loopMode", Detail: fmt.Sprintf("%d outside 0..14", loopMode)}
	}
	if _, err := c.roundTrip(setModePayload(autoMode, loopMode, sensor)); err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	return nil
}

// SwitchToAuto enables the timer schedule with the default day grouping.
func (c *Client) SwitchToAuto() error {
	return c.SetMode(1, 0, 0)
}

// SwitchToManual holds the last used manual target temperature.
func (c *Client) SwitchToManual() error {
	return c.SetMode(0, 0, 0)
}

// SetTime sets the device wall clock. dayOfWeek runs 1 (Monday) through 7
// (Sunday).
func (c *Client) SetTime(hour, minute, second, dayOfWeek int) error {
	if hour < 0 || hour > 23 {
		return &protocol.InvalidParameterError{Param: "hour", Detail: fmt.Sprintf("%d outside 0..23", hour)}
	}
	if minute < 0 || minute > 59 {
		return &protocol.InvalidParameterError{Param: "minute", Detail: fmt.Sprintf("%d outside 0..59", minute)}
	}
	if second < 0 || second > 59 {
		return &protocol.InvalidParameterError{Param: "second", Detail: fmt.Sprintf("%d outside 0..59", second)}
	}
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return &protocol.InvalidParameterError{Param: "dayOfWeek", Detail: fmt.Sprintf("%d outside 1..7", dayOfWeek)}
	}
	if _, err := c.roundTrip(setTimePayload(hour, minute, second, dayOfWeek)); err != nil {
		return fmt.Errorf("set time: %w", err)
	}
	return nil
}

// SetSchedule writes all timer slots. The slices must hold exactly six
// weekday entries and two weekend entries; anything else is a contract error,
// never silently padded.
func (c *Client) SetSchedule(weekday, weekend []ScheduleEntry) error {
	if len(weekday) != WeekdaySlots {
		return &protocol.InvalidParameterError{Param: "weekday schedule", Detail: fmt.Sprintf("%d entries, need exactly %d", len(weekday), WeekdaySlots)}
	}
	if len(weekend) != WeekendSlots {
		return &protocol.InvalidParameterError{Param: "weekend schedule", Detail: fmt.Sprintf("%d entries, need exactly %d", len(weekend), WeekendSlots)}
	}

	var wd [WeekdaySlots]ScheduleEntry
	var we [WeekendSlots]ScheduleEntry
	copy(wd[:], weekday)
	copy(we[:], weekend)

	if _, err := c.roundTrip(setSchedulePayload(wd, we)); err != nil {
		return fmt.Errorf("set schedule: %w", err)
	}
	return nil
}

// SetAdvanced writes the installer-level configuration block.
func (c *Client) SetAdvanced(s AdvancedSettings) error {
	if _, err := c.roundTrip(setAdvancedPayload(s)); err != nil {
		return fmt.Errorf("set advanced options: %w", err)
	}
	return nil
}
