// Package crc32c computes CRC-32C (Castagnoli polynomial) checksums with
// runtime selection between a hardware engine and a portable software
// engine.
//
// # Engines
//
// Two interchangeable implementations sit behind one contract:
//
//   - Hardware: the CPU's dedicated CRC32 instruction (SSE4.2 on x86-64,
//     the CRC extension on ARM64)
//   - Software: a slicing-by-8 lookup table, available everywhere
//
// Both produce bit-identical results for every input. A capability probe
// picks the best engine at startup; the choice can be forced per call or
// through the CRC32C_ENGINE environment variable (software or hardware).
//
// # Usage
//
// One-shot checksums:
//
//	sum := crc32c.Sum(data)
//
// Chained across buffers:
//
//	crc := crc32c.Update(0, part1)
//	crc = crc32c.Update(crc, part2)
//
// Explicit engine selection:
//
//	sum, err := crc32c.Checksum(crc32c.Software, 0, data)
//
// Streaming:
//
//	h := crc32c.New()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	sum := h.Sum32()
//
// CRC-32C is the checksum used by iSCSI, Btrfs, LevelDB and RocksDB. It
// detects accidental corruption only; it is not cryptographically secure.
package crc32c
