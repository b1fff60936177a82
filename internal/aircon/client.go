package aircon

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kajell/broadclimate/internal/logging"
	"github.com/kajell/broadclimate/internal/protocol"
	"github.com/kajell/broadclimate/internal/transport"
)

// Client issues commands to one air conditioner over a secure session.
//
// The client is stateless; each method is a single synchronous transaction.
// Callers must not run concurrent transactions against the same unit unless
// the Transport serializes them.
type Client struct {
	tr transport.Transport
}

// NewClient wraps an established device session.
func NewClient(tr transport.Transport) *Client {
	return &Client{tr: tr}
}

// send runs one transaction and returns the decrypted response payload.
// Unlike the heating controller there is no variable framing to strip: the
// payload is the fixed-size register block itself.
func (c *Client) send(packet []byte) ([]byte, error) {
	logging.LogRawBytes("aircon request", packet)

	resp, err := c.tr.SendTransaction(transport.CommandPassthrough, packet)
	if err != nil {
		return nil, err
	}

	payload, err := protocol.UnpackEnvelope(resp)
	if err != nil {
		return nil, err
	}
	logging.LogRawBytes("aircon response", payload)
	logging.LogTransaction("aircon", transport.CommandPassthrough, len(packet), len(payload))
	return payload, nil
}

// GetState reads and decodes the unit's packed status register. A checksum
// mismatch in the response is logged and recorded on the state, not treated
// as a failure.
func (c *Client) GetState() (*State, error) {
	payload, err := c.send(commandCopy(cmdGetState))
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	state, err := DecodeState(payload)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if !state.ChecksumOK {
		lo, hi := protocol.TargetSum(payload[:protocol.ACChecksumOffset])
		logging.Warn("state response checksum mismatch, decoding anyway",
			zap.Uint8("expected_lo", lo),
			zap.Uint8("expected_hi", hi),
			zap.Uint8("actual_lo", payload[protocol.ACChecksumOffset]),
			zap.Uint8("actual_hi", payload[protocol.ACChecksumOffset+1]),
		)
	}
	return state, nil
}

// GetInfo reads the unit's info block. Only the power bit is mapped; the raw
// payload rides along for analysis.
func (c *Client) GetInfo() (*Info, error) {
	payload, err := c.send(commandCopy(cmdGetInfo))
	if err != nil {
		return nil, fmt.Errorf("read info: %w", err)
	}
	return decodeInfo(payload)
}

// GetSleepInfo reads the sleep curve block. The layout is not mapped yet, so
// the raw payload is returned as is.
func (c *Client) GetSleepInfo() ([]byte, error) {
	payload, err := c.send(commandCopy(cmdGetSleepInfo))
	if err != nil {
		return nil, fmt.Errorf("read sleep info: %w", err)
	}
	return payload, nil
}

// Probe sends the unmapped 0xd0 0x07 query and returns whatever comes back.
// Useful when mapping new firmware.
func (c *Client) Probe() ([]byte, error) {
	payload, err := c.send(probePayload())
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	return payload, nil
}

// SetAdvanced changes the unit's settings. Fields left nil in the overlay are
// filled from a fresh state read first (the unit rejects partial writes), so
// one SetAdvanced costs two transactions. Validation happens after the merge
// and before any encoding or I/O; note the read-modify-write does not work
// while the unit is powered down, as the status read comes back incomplete.
func (c *Client) SetAdvanced(overlay Settings) error {
	current, err := c.GetState()
	if err != nil {
		return fmt.Errorf("set advanced: fetch current state: %w", err)
	}

	packet, err := EncodeAdvanced(overlay.ApplyTo(*current))
	if err != nil {
		return err
	}

	if _, err := c.send(packet); err != nil {
		return fmt.Errorf("set advanced: %w", err)
	}
	return nil
}
