// Package sysprop models the read-only system property space a device
// exposes. The probe takes an injected Reader rather than touching the
// real property mechanism, so tests can pin any value they need.
package sysprop

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// HardwareTypeKey is the property naming the device's hardware category.
const HardwareTypeKey = "ro.hardware.type"

// automotiveHardwareType is the exact, case-sensitive value that marks an
// automotive device.
const automotiveHardwareType = "automotive"

// maxValueLen mirrors the platform's PROPERTY_VALUE_MAX: property values
// are truncated to this many bytes before any comparison.
const maxValueLen = 92

// Reader looks up a single system property. Implementations return an
// error only for read failures; an absent key is the empty string.
type Reader interface {
	Get(key string) (string, error)
}

// Static is a fixed property table, mainly for tests and canned devices.
type Static map[string]string

func (s Static) Get(key string) (string, error) {
	return s[key], nil
}

// FromFile loads a key=value property dump (the format `getprop`-style
// exports and .env files share) into a Static table.
func FromFile(path string) (Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open property file %q: %w", path, err)
	}
	defer f.Close()

	props, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse property file %q: %w", path, err)
	}
	return Static(props), nil
}

// IsAutomotive reports whether the device identifies as automotive
// hardware. A read failure or absent property behaves as the empty
// string, which is not automotive.
func IsAutomotive(r Reader) bool {
	if r == nil {
		return false
	}
	value, err := r.Get(HardwareTypeKey)
	if err != nil {
		value = ""
	}
	if len(value) > maxValueLen {
		value = value[:maxValueLen]
	}
	return value == automotiveHardwareType
}
