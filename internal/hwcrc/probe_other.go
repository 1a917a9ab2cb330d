//go:build !amd64 && !arm64

package hwcrc

// No feature query on this architecture; prefer the software path.
