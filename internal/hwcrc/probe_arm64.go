//go:build arm64

package hwcrc

import "golang.org/x/sys/cpu"

func init() {
	probed = cpu.ARM64.HasCRC32
}
