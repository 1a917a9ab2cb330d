// Package hwcrc is the hardware CRC-32C engine. The per-architecture
// instruction sequences (SSE4.2 CRC32 on amd64, CRC32CX on arm64) are
// supplied by hash/crc32's Castagnoli path; this package pins the seed
// convention and pairs the engine with its capability probe.
package hwcrc

import "hash/crc32"

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// probed is set by the per-architecture init in probe_*.go.
var probed bool

// Available reports whether the CPU's dedicated CRC32 instruction can be
// used on this host. Constant-time, never blocks, false on architectures
// without a feature query.
func Available() bool {
	return probed
}

// Update folds p into crc and returns the new CRC-32C value. It is
// interchangeable with the software engine for every (crc, p) pair.
func Update(crc uint32, p []byte) uint32 {
	return crc32.Update(crc, castagnoli, p)
}
