package crc32c

import (
	"errors"
	"fmt"
)

// ErrInvalidEngine indicates an Engine tag outside the known set. This is
// a caller contract violation, rejected before any computation begins.
type ErrInvalidEngine struct {
	Engine Engine
}

func (e *ErrInvalidEngine) Error() string {
	return fmt.Sprintf("invalid engine: %d", uint8(e.Engine))
}

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}
