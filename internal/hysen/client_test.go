package hysen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kajell/broadclimate/internal/protocol"
	"github.com/kajell/broadclimate/internal/transport"
)

// fakeTransport plays back a canned response envelope and records what was
// sent through it.
type fakeTransport struct {
	calls     int
	commandID byte
	frame     []byte
	resp      []byte
	err       error
}

func (f *fakeTransport) SendTransaction(commandID byte, frame []byte) ([]byte, error) {
	f.calls++
	f.commandID = commandID
	f.frame = append([]byte(nil), frame...)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

// envelopeWithPayload frames a logical payload and wraps it in a clean
// response envelope.
func envelopeWithPayload(t *testing.T, payload []byte) []byte {
	t.Helper()
	framed, err := protocol.BuildHysenRequest(payload)
	if err != nil {
		t.Fatalf("framing canned response: %v", err)
	}
	env := make([]byte, protocol.EnvelopePayloadOffset+len(framed))
	copy(env[protocol.EnvelopePayloadOffset:], framed)
	return env
}

func TestClientGetStatus(t *testing.T) {
	status := &Status{RoomTemp: 20.0, TargetTemp: 22.5, Power: true, AutoMode: 1}
	ft := &fakeTransport{resp: envelopeWithPayload(t, encodeStatusBytes(status))}

	got, err := NewClient(ft).GetStatus()
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}

	if ft.commandID != transport.CommandPassthrough {
		t.Errorf("command id = 0x%02x, want 0x%02x", ft.commandID, transport.CommandPassthrough)
	}
	wantCmd := []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x16}
	if len(ft.frame) < 8 || !bytes.Equal(ft.frame[2:8], wantCmd) {
		t.Errorf("sent command = % x, want % x", ft.frame, wantCmd)
	}

	if got.RoomTemp != 20.0 || got.TargetTemp != 22.5 || !got.Power || got.AutoMode != 1 {
		t.Errorf("decoded status = %+v", got)
	}
}

func TestClientGetRoomTemp(t *testing.T) {
	payload := make([]byte, statusPayloadLen)
	payload[offRoomTemp] = 0x28
	ft := &fakeTransport{resp: envelopeWithPayload(t, payload)}

	got, err := NewClient(ft).GetRoomTemp()
	if err != nil {
		t.Fatalf("GetRoomTemp() error = %v", err)
	}
	if got != 20.0 {
		t.Errorf("GetRoomTemp() = %v, want 20.0", got)
	}

	// The short read command fetches 8 registers, not the full block.
	wantCmd := []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x08}
	if !bytes.Equal(ft.frame[2:8], wantCmd) {
		t.Errorf("sent command = % x, want % x", ft.frame[2:8], wantCmd)
	}
}

func TestClientGetExternalTemp(t *testing.T) {
	payload := make([]byte, statusPayloadLen)
	payload[offExtTemp] = 0x23
	ft := &fakeTransport{resp: envelopeWithPayload(t, payload)}

	got, err := NewClient(ft).GetExternalTemp()
	if err != nil {
		t.Fatalf("GetExternalTemp() error = %v", err)
	}
	if got != 17.5 {
		t.Errorf("GetExternalTemp() = %v, want 17.5", got)
	}

	// Same short read as the room temperature; the external sensor byte sits
	// further into the block.
	wantCmd := []byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x08}
	if !bytes.Equal(ft.frame[2:8], wantCmd) {
		t.Errorf("sent command = % x, want % x", ft.frame[2:8], wantCmd)
	}
}

func TestClientSetTemp(t *testing.T) {
	ft := &fakeTransport{resp: envelopeWithPayload(t, []byte{0x01, 0x06, 0x00, 0x01, 0x00, 45})}

	if err := NewClient(ft).SetTemp(22.5); err != nil {
		t.Fatalf("SetTemp() error = %v", err)
	}
	// 22.5C encodes as 45 in the final payload byte.
	if ft.frame[7] != 45 {
		t.Errorf("temperature byte = %d, want 45", ft.frame[7])
	}
}

func TestClientSetScheduleShape(t *testing.T) {
	ft := &fakeTransport{}
	c := NewClient(ft)

	five := make([]ScheduleEntry, 5)
	two := make([]ScheduleEntry, 2)
	six := make([]ScheduleEntry, 6)
	three := make([]ScheduleEntry, 3)

	var perr *protocol.InvalidParameterError
	if err := c.SetSchedule(five, two); !errors.As(err, &perr) {
		t.Errorf("SetSchedule(5 weekday) error = %v, want *InvalidParameterError", err)
	}
	if err := c.SetSchedule(six, three); !errors.As(err, &perr) {
		t.Errorf("SetSchedule(3 weekend) error = %v, want *InvalidParameterError", err)
	}
	if ft.calls != 0 {
		t.Errorf("transport reached %d times before validation, want 0", ft.calls)
	}
}

func TestClientSetSchedule(t *testing.T) {
	six := make([]ScheduleEntry, 6)
	two := make([]ScheduleEntry, 2)
	for i := range six {
		six[i] = ScheduleEntry{StartHour: i, Temperature: 20}
	}
	two[0] = ScheduleEntry{StartHour: 9, Temperature: 22}
	two[1] = ScheduleEntry{StartHour: 22, Temperature: 16}

	var wd [WeekdaySlots]ScheduleEntry
	var we [WeekendSlots]ScheduleEntry
	copy(wd[:], six)
	copy(we[:], two)
	ft := &fakeTransport{resp: envelopeWithPayload(t, setSchedulePayload(wd, we))}

	if err := NewClient(ft).SetSchedule(six, two); err != nil {
		t.Fatalf("SetSchedule() error = %v", err)
	}
	if ft.calls != 1 {
		t.Errorf("transport calls = %d, want 1", ft.calls)
	}
}

func TestClientDeviceError(t *testing.T) {
	env := make([]byte, protocol.EnvelopePayloadOffset)
	env[protocol.EnvelopeErrorOffset] = 0x09
	ft := &fakeTransport{resp: env}

	_, err := NewClient(ft).GetStatus()
	var derr *protocol.DeviceError
	if !errors.As(err, &derr) {
		t.Fatalf("GetStatus() error = %v, want *protocol.DeviceError", err)
	}
	if derr.Code != 0x09 {
		t.Errorf("DeviceError.Code = 0x%04x, want 0x09", derr.Code)
	}
}

func TestClientTransportErrorPassthrough(t *testing.T) {
	sentinel := errors.New("session timed out")
	ft := &fakeTransport{err: sentinel}

	err := NewClient(ft).SetPower(true, false)
	if !errors.Is(err, sentinel) {
		t.Errorf("SetPower() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestClientSetModeValidation(t *testing.T) {
	ft := &fakeTransport{}
	var perr *protocol.InvalidParameterError
	if err := NewClient(ft).SetMode(16, 0, 0); !errors.As(err, &perr) {
		t.Errorf("SetMode(16,...) error = %v, want *InvalidParameterError", err)
	}
	if ft.calls != 0 {
		t.Error("transport reached despite invalid mode")
	}
}
