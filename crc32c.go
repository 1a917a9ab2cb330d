package crc32c

import (
	"os"
	"strings"

	"github.com/hupe1980/crc32c/internal/hwcrc"
	"github.com/hupe1980/crc32c/internal/slicing8"
)

// Engine identifies one of the interchangeable CRC-32C implementations.
type Engine uint8

const (
	// Software is the portable slicing-by-8 table engine.
	Software Engine = iota
	// Hardware uses the CPU's dedicated CRC32 instruction.
	Hardware
)

// String returns the string representation of an Engine.
func (e Engine) String() string {
	switch e {
	case Software:
		return "software"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseEngine parses a string into an Engine value.
func ParseEngine(s string) (Engine, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "software", "sw":
		return Software, true
	case "hardware", "hw":
		return Hardware, true
	default:
		return Software, false
	}
}

// Available reports whether the engine can run on this host. Software is
// always available; Hardware requires the CPU feature probe to pass.
func (e Engine) Available() bool {
	switch e {
	case Software:
		return true
	case Hardware:
		return hwcrc.Available()
	default:
		return false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeEngine backs Sum, Update and New.
	activeEngine Engine

	// hasOverride is true if CRC32C_ENGINE was set and honored.
	hasOverride bool
)

func init() {
	if override := os.Getenv("CRC32C_ENGINE"); override != "" {
		if e, ok := ParseEngine(override); ok && e.Available() {
			activeEngine = e
			hasOverride = true
			return
		}
		// Invalid or unavailable override - fall through to auto-detection.
	}

	if hwcrc.Available() {
		activeEngine = Hardware
	} else {
		activeEngine = Software
	}
}

// update routes to an already-validated engine.
func update(e Engine, crc uint32, p []byte) uint32 {
	if e == Hardware {
		return hwcrc.Update(crc, p)
	}
	return slicing8.Update(crc, p)
}

// Checksum folds data into initial using the named engine and returns the
// new CRC-32C value. The engine tag is trusted as given - requesting
// Hardware is valid even when the probe is negative, since the hardware
// engine's fallback honors the same contract. An Engine outside the known
// set is rejected with *ErrInvalidEngine before any computation.
func Checksum(e Engine, initial uint32, data []byte) (uint32, error) {
	switch e {
	case Software, Hardware:
		return update(e, initial, data), nil
	default:
		return 0, &ErrInvalidEngine{Engine: e}
	}
}

// Update folds data into crc using the active engine. Update composes:
// Update(Update(0, a), b) == Update(0, append(a, b...)).
func Update(crc uint32, data []byte) uint32 {
	return update(activeEngine, crc, data)
}

// Sum returns the CRC-32C of data using the active engine.
func Sum(data []byte) uint32 {
	return Update(0, data)
}

// HardwareAvailable reports whether the CPU's dedicated CRC32 instruction
// is usable on this host. Deterministic for a fixed host and process.
func HardwareAvailable() bool {
	return hwcrc.Available()
}

// ActiveEngine returns the engine selected at startup.
func ActiveEngine() Engine {
	return activeEngine
}

// IsOverridden returns true if CRC32C_ENGINE forced the active engine.
func IsOverridden() bool {
	return hasOverride
}
