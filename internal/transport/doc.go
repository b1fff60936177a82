// Package transport defines the boundary between the command codecs and the
// secure device session.
//
// The session itself (pairing handshake, key exchange, AES payload
// encryption, UDP delivery, retransmission) is an external collaborator and
// deliberately out of scope here; the codecs consume it through the single
// Transport interface. Response envelopes come back with the payload region
// already decrypted, and the protocol package extracts the device error code
// and payload from their fixed envelope offsets.
package transport
