// Package slicing8 implements the portable CRC-32C engine: a table-driven
// slicing-by-8 reduction that processes eight input bytes per lookup round.
// It has no CPU-specific fast paths and produces bit-identical results to
// the hardware engine on every architecture.
package slicing8

import (
	"encoding/binary"
	"unsafe"
)

// Update folds p into crc and returns the new CRC-32C value.
//
// The accumulator is pre- and post-complemented, so Update composes:
// Update(Update(0, a), b) == Update(0, append(a, b...)). A zero-length p
// returns crc unchanged, the complements cancel.
func Update(crc uint32, p []byte) uint32 {
	acc := uint64(crc) ^ 0xffffffff

	// Consume single bytes until the slice base is 8-byte aligned. The
	// address only ever selects the chunk size; wide loads below go
	// through explicit little-endian assembly, never reinterpretation.
	for len(p) > 0 && uintptr(unsafe.Pointer(&p[0]))&7 != 0 {
		acc = uint64(table[0][byte(acc)^p[0]]) ^ (acc >> 8)
		p = p[1:]
	}

	for len(p) >= 8 {
		acc ^= binary.LittleEndian.Uint64(p)
		acc = uint64(table[7][byte(acc)]) ^
			uint64(table[6][byte(acc>>8)]) ^
			uint64(table[5][byte(acc>>16)]) ^
			uint64(table[4][byte(acc>>24)]) ^
			uint64(table[3][byte(acc>>32)]) ^
			uint64(table[2][byte(acc>>40)]) ^
			uint64(table[1][byte(acc>>48)]) ^
			uint64(table[0][byte(acc>>56)])
		p = p[8:]
	}

	for _, b := range p {
		acc = uint64(table[0][byte(acc)^b]) ^ (acc >> 8)
	}

	return uint32(acc) ^ 0xffffffff
}
