package config

import (
	"fmt"
	"strings"
	"time"
)

// Device profiles supported by the registry. The profile selects which
// command framing a device speaks.
const (
	ProfileHysen  = "hysen"
	ProfileAircon = "aircon"
)

// ValidProfile reports whether p names a supported device profile.
func ValidProfile(p string) bool {
	return p == ProfileHysen || p == ProfileAircon
}

// Registry represents the entire user configuration file.
// This stores user-defined metadata for devices and application preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Devices     map[string]*Device `yaml:"devices,omitempty"` // Keyed by normalized MAC address
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Device represents user-defined metadata for a single climate device.
// This is keyed by the device's MAC address in the Registry; the device
// itself stores none of it.
type Device struct {
	Nickname string    `yaml:"nickname,omitempty"`  // User-friendly name
	Profile  string    `yaml:"profile"`             // "hysen" or "aircon"
	LastHost string    `yaml:"last_host,omitempty"` // Last known IP address or hostname
	LastSeen time.Time `yaml:"last_seen,omitempty"` // Last successful transaction time
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultDevice string `yaml:"default_device,omitempty"` // MAC or nickname used when no device is named
	TimeoutSecs   int    `yaml:"timeout_secs"`             // Per-transaction timeout in seconds
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Devices: make(map[string]*Device),
		Preferences: &Preferences{
			TimeoutSecs: 10,
		},
	}
}

// NormalizeMAC canonicalizes a MAC address to lowercase colon-separated form.
// Accepts colon, dash, and bare 12-digit hex input.
func NormalizeMAC(mac string) (string, error) {
	hexDigits := strings.ToLower(strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(mac)))
	if len(hexDigits) != 12 {
		return "", fmt.Errorf("invalid MAC address %q", mac)
	}
	for _, c := range hexDigits {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("invalid MAC address %q", mac)
		}
	}

	parts := make([]string, 6)
	for i := range parts {
		parts[i] = hexDigits[i*2 : i*2+2]
	}
	return strings.Join(parts, ":"), nil
}

// GetDevice retrieves device metadata by normalized MAC address.
// Returns nil if the device doesn't exist in the registry.
func (r *Registry) GetDevice(mac string) *Device {
	return r.Devices[mac]
}

// EnsureDevice ensures a device entry exists in the registry.
// If the device doesn't exist, creates a new entry with default values.
// Returns the device entry (existing or newly created).
func (r *Registry) EnsureDevice(mac string) *Device {
	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}

	if device, exists := r.Devices[mac]; exists {
		return device
	}

	device := &Device{}
	r.Devices[mac] = device
	return device
}

// ResolveDevice finds a device by MAC address or nickname. Nickname matches
// are case-insensitive; an ambiguous nickname is an error rather than an
// arbitrary pick.
func (r *Registry) ResolveDevice(key string) (string, *Device, error) {
	if mac, err := NormalizeMAC(key); err == nil {
		if d := r.GetDevice(mac); d != nil {
			return mac, d, nil
		}
		return "", nil, fmt.Errorf("device %s not registered", mac)
	}

	var foundMAC string
	var found *Device
	for mac, d := range r.Devices {
		if strings.EqualFold(d.Nickname, key) {
			if found != nil {
				return "", nil, fmt.Errorf("nickname %q matches more than one device", key)
			}
			foundMAC, found = mac, d
		}
	}
	if found == nil {
		return "", nil, fmt.Errorf("no device named %q", key)
	}
	return foundMAC, found, nil
}

// UpdateDeviceLastSeen updates the last seen timestamp and host for a device.
func (r *Registry) UpdateDeviceLastSeen(mac, host string) {
	device := r.EnsureDevice(mac)
	device.LastSeen = time.Now()
	device.LastHost = host
}

// SetDeviceNickname sets a user-friendly nickname for a device.
func (r *Registry) SetDeviceNickname(mac, nickname string) {
	device := r.EnsureDevice(mac)
	device.Nickname = nickname
}

// SetDeviceProfile records which command framing a device speaks.
func (r *Registry) SetDeviceProfile(mac, profile string) error {
	if !ValidProfile(profile) {
		return fmt.Errorf("unknown profile %q (want %q or %q)", profile, ProfileHysen, ProfileAircon)
	}
	r.EnsureDevice(mac).Profile = profile
	return nil
}
