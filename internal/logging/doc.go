// Package logging provides structured logging for the broadclimate tools.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the module. It provides both general logging
// functions and specialized functions for protocol-specific logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (hex dumps, frame construction, checksums)
//   - Info: Normal operations (commands issued, state reads)
//   - Warn: Non-fatal issues (tolerated checksum mismatches, retries)
//   - Error: Fatal issues (device error codes, malformed responses)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Set point changed",
//	    zap.String("device", "living-room"),
//	    zap.Float64("target_temp", 22.5),
//	)
//
// # Specialized Logging
//
// Raw payload logging for protocol work:
//
//	logging.LogRawBytes("hysen request", frame)
//	logging.LogRawBytes("aircon response", payload)
//
// # Configuration
//
// Logging is silent by default so the CLI output stays clean. Set the
// BROADCLIMATE_LOG_LEVEL environment variable, or initialize explicitly:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
