// Package config manages the user's device registry and preferences.
//
// The registry is a YAML file storing client-side metadata for climate
// devices: nicknames, the protocol profile each device speaks, its last known
// host, and when it was last reachable. None of this lives on the devices
// themselves, so losing the file loses only convenience, never function.
//
// # File Location
//
// The file lives in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/broadclimate/config.yaml or ~/.config/broadclimate/config.yaml
//   - macOS: ~/.config/broadclimate/config.yaml
//   - Windows: %LOCALAPPDATA%\broadclimate\config.yaml
//
// # Example
//
//	version: 1
//	devices:
//	  "78:0f:77:00:12:34":
//	    nickname: "hallway thermostat"
//	    profile: "hysen"
//	    last_host: "192.168.1.40"
//	  "78:0f:77:00:56:78":
//	    nickname: "bedroom ac"
//	    profile: "aircon"
//	preferences:
//	  default_device: "hallway thermostat"
//	  timeout_secs: 10
//
// # Concurrency and Durability
//
// LoadRegistry loads lazily and returns a shared instance. Saves are atomic
// (temp file plus rename) so a crash mid-write never corrupts the file.
package config
