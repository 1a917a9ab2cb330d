//go:build amd64

package hwcrc

import "golang.org/x/sys/cpu"

func init() {
	// The CRC32 instruction is part of SSE4.2 (CPUID leaf 1, ECX bit 20).
	probed = cpu.X86.HasSSE42
}
