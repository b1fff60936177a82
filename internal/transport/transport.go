package transport

// CommandPassthrough is the command id carried in the session header for
// every encrypted application-layer transaction, on both device profiles.
const CommandPassthrough = 0x6a

// Transport is the secure session collaborator that owns pairing, payload
// encryption and network delivery. Implementations encrypt the given frame,
// deliver it under commandID, and return the raw response envelope with the
// payload region already decrypted. Transport failures (network, timeout,
// auth) are returned unmodified; retry and timeout policy live behind this
// interface, never in the codec.
//
// The device protocol has no per-request identifiers and cannot multiplex:
// implementations must serialize transactions against one physical device.
type Transport interface {
	SendTransaction(commandID byte, frame []byte) ([]byte, error)
}
