package aircon

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kajell/broadclimate/internal/protocol"
	"github.com/kajell/broadclimate/internal/transport"
)

// fakeTransport plays back a queue of canned response envelopes and records
// every frame sent through it. SetAdvanced needs two transactions, so unlike a
// single-shot fake this one advances through its queue per call.
type fakeTransport struct {
	commandID byte
	frames    [][]byte
	resps     [][]byte
	err       error
}

func (f *fakeTransport) SendTransaction(commandID byte, frame []byte) ([]byte, error) {
	f.commandID = commandID
	f.frames = append(f.frames, append([]byte(nil), frame...))
	if f.err != nil {
		return nil, f.err
	}
	if len(f.resps) == 0 {
		return nil, errors.New("fake transport: response queue exhausted")
	}
	resp := f.resps[0]
	f.resps = f.resps[1:]
	return resp, nil
}

// envelope wraps a decrypted payload in a clean response envelope. This
// profile has no inner framing to add.
func envelope(payload []byte) []byte {
	env := make([]byte, protocol.EnvelopePayloadOffset+len(payload))
	copy(env[protocol.EnvelopePayloadOffset:], payload)
	return env
}

func TestClientGetState(t *testing.T) {
	want := State{Power: true, TargetTemp: 25.5, Mode: ModeCool, FanSpeed: FanAuto, SwingH: SwingHOff, SwingV: SwingVOff, Display: true}
	ft := &fakeTransport{resps: [][]byte{envelope(buildStatePayload(t, want))}}

	got, err := NewClient(ft).GetState()
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}

	if ft.commandID != transport.CommandPassthrough {
		t.Errorf("command id = 0x%02x, want 0x%02x", ft.commandID, transport.CommandPassthrough)
	}
	if !bytes.Equal(ft.frames[0], cmdGetState) {
		t.Errorf("sent frame = % x, want % x", ft.frames[0], cmdGetState)
	}

	if got.Power != want.Power || got.TargetTemp != want.TargetTemp ||
		got.Mode != want.Mode || got.FanSpeed != want.FanSpeed || !got.Display {
		t.Errorf("GetState() = %+v, want %+v", got, want)
	}
}

func TestClientGetStateChecksumMismatch(t *testing.T) {
	payload := buildStatePayload(t, State{TargetTemp: 20, Mode: ModeAuto, FanSpeed: FanAuto, SwingH: SwingHOff, SwingV: SwingVOff})
	payload[protocol.ACChecksumOffset] ^= 0xff
	ft := &fakeTransport{resps: [][]byte{envelope(payload)}}

	got, err := NewClient(ft).GetState()
	if err != nil {
		t.Fatalf("GetState() error = %v, trailer mismatch must not fail the read", err)
	}
	if got.ChecksumOK {
		t.Error("ChecksumOK = true for a corrupted trailer")
	}
	if got.TargetTemp != 20 {
		t.Errorf("TargetTemp = %v, want 20", got.TargetTemp)
	}
}

func TestClientGetInfo(t *testing.T) {
	payload := make([]byte, 0x0e)
	payload[0x0d] = 0x01
	ft := &fakeTransport{resps: [][]byte{envelope(payload)}}

	got, err := NewClient(ft).GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}
	if !got.Power {
		t.Error("Power = false, want true")
	}
	if !bytes.Equal(ft.frames[0], cmdGetInfo) {
		t.Errorf("sent frame = % x, want % x", ft.frames[0], cmdGetInfo)
	}
}

func TestClientSetAdvancedMerge(t *testing.T) {
	current := State{Power: true, TargetTemp: 21, Mode: ModeCool, FanSpeed: FanMid, SwingH: SwingHOff, SwingV: SwingVOff, Display: true}
	ft := &fakeTransport{resps: [][]byte{
		envelope(buildStatePayload(t, current)),
		envelope(make([]byte, statePayloadLen)),
	}}

	temp := 24.5
	if err := NewClient(ft).SetAdvanced(Settings{TargetTemp: &temp}); err != nil {
		t.Fatalf("SetAdvanced() error = %v", err)
	}

	if len(ft.frames) != 2 {
		t.Fatalf("transport calls = %d, want 2 (state read then set)", len(ft.frames))
	}

	sent := ft.frames[1]
	if len(sent) != statePayloadLen {
		t.Fatalf("set packet length = %d, want %d", len(sent), statePayloadLen)
	}
	// The new set point lands in the packet, everything else carries over
	// from the state read.
	if sent[offTempSwingV] != byte(24-8)<<3|byte(SwingVOff) {
		t.Errorf("temp/swing byte = 0x%02x", sent[offTempSwingV])
	}
	if sent[offHalfDegree]&0x80 == 0 {
		t.Error("half degree bit not set for 24.5")
	}
	if sent[offPowerHealth]&0x20 == 0 {
		t.Error("power bit dropped during merge")
	}
	if sent[offModeSleep]&0xf8 != byte(ModeCool) {
		t.Errorf("mode byte = 0x%02x, want cool preserved", sent[offModeSleep])
	}
	if !protocol.VerifyACChecksum(sent) {
		t.Error("set packet fails its own checksum")
	}
}

func TestClientSetAdvancedInvalidStopsBeforeWrite(t *testing.T) {
	current := State{Power: true, TargetTemp: 21, Mode: ModeCool, FanSpeed: FanMid, SwingH: SwingHOff, SwingV: SwingVOff}
	ft := &fakeTransport{resps: [][]byte{envelope(buildStatePayload(t, current))}}

	temp := 50.0
	err := NewClient(ft).SetAdvanced(Settings{TargetTemp: &temp})
	var perr *protocol.InvalidParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("SetAdvanced() error = %v, want *protocol.InvalidParameterError", err)
	}
	if len(ft.frames) != 1 {
		t.Errorf("transport calls = %d, want 1 (only the state read)", len(ft.frames))
	}
}

func TestClientDeviceError(t *testing.T) {
	env := make([]byte, protocol.EnvelopePayloadOffset)
	env[protocol.EnvelopeErrorOffset] = 0xf9
	env[protocol.EnvelopeErrorOffset+1] = 0xff
	ft := &fakeTransport{resps: [][]byte{env}}

	_, err := NewClient(ft).GetState()
	var derr *protocol.DeviceError
	if !errors.As(err, &derr) {
		t.Fatalf("GetState() error = %v, want *protocol.DeviceError", err)
	}
	if derr.Code != 0xfff9 {
		t.Errorf("DeviceError.Code = 0x%04x, want 0xfff9", derr.Code)
	}
}

func TestClientTransportErrorPassthrough(t *testing.T) {
	sentinel := errors.New("session timed out")
	ft := &fakeTransport{err: sentinel}

	_, err := NewClient(ft).GetSleepInfo()
	if !errors.Is(err, sentinel) {
		t.Errorf("GetSleepInfo() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestClientProbe(t *testing.T) {
	canned := []byte{0xde, 0xad, 0xbe, 0xef}
	ft := &fakeTransport{resps: [][]byte{envelope(canned)}}

	got, err := NewClient(ft).Probe()
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if !bytes.Equal(got, canned) {
		t.Errorf("Probe() = % x, want % x", got, canned)
	}
	if ft.frames[0][0] != 0xd0 || ft.frames[0][1] != 0x07 {
		t.Errorf("probe frame = % x", ft.frames[0])
	}
}
