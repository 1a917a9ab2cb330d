// Command crc32c computes CRC-32C (Castagnoli) checksums of files or
// standard input, with optional gzip decompression and an explicit choice
// of checksum engine.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/hupe1980/crc32c"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/cpuid/v2"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("crc32c", "Compute CRC-32C (Castagnoli) checksums.")

	verbose = app.Flag("verbose", "Enable debug logging").Short('v').Bool()

	sumCmd     = app.Command("sum", "Checksum files, or stdin when no files are given").Default()
	sumFiles   = sumCmd.Arg("files", "Files to checksum").Strings()
	sumEngine  = sumCmd.Flag("engine", "CRC engine to use").Default("auto").Enum("auto", "software", "hardware", "sw", "hw")
	sumInitial = sumCmd.Flag("initial", "Initial CRC seed").Default("0").Uint32()
	sumGunzip  = sumCmd.Flag("gunzip", "Decompress gzip input before checksumming").Short('z').Bool()
	sumVerify  = sumCmd.Flag("verify", "Expected checksum (hex or decimal); exit non-zero on mismatch").String()

	cpuCmd = app.Command("cpu", "Report CPU capabilities and the selected engine")
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	var err error
	switch cmd {
	case sumCmd.FullCommand():
		err = runSum(logger)
	case cpuCmd.FullCommand():
		err = runCPU()
	}
	if err != nil {
		logger.Error("crc32c failed", "error", err)
		os.Exit(1)
	}
}

func runSum(logger *slog.Logger) error {
	engine := crc32c.ActiveEngine()
	if *sumEngine != "auto" {
		engine, _ = crc32c.ParseEngine(*sumEngine)
	}
	logger.Debug("engine selected",
		"engine", engine.String(),
		"hardware_available", crc32c.HardwareAvailable(),
	)

	names := *sumFiles
	if len(names) == 0 {
		names = []string{"-"}
	}

	var expected uint32
	if *sumVerify != "" {
		v, err := strconv.ParseUint(*sumVerify, 0, 32)
		if err != nil {
			return fmt.Errorf("parse --verify value %q: %w", *sumVerify, err)
		}
		expected = uint32(v)
	}

	for _, name := range names {
		crc, n, err := checksumFile(engine, *sumInitial, name)
		if err != nil {
			return err
		}
		logger.Debug("checksum computed", "file", name, "bytes", n)
		fmt.Printf("%08x  %s\n", crc, name)

		if *sumVerify != "" && crc != expected {
			return &crc32c.ChecksumMismatchError{Expected: expected, Actual: crc}
		}
	}
	return nil
}

func checksumFile(engine crc32c.Engine, seed uint32, name string) (uint32, int64, error) {
	var in io.Reader
	if name == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, 0, err
		}
		defer f.Close()
		in = f
	}

	if *sumGunzip {
		zr, err := gzip.NewReader(in)
		if err != nil {
			return 0, 0, fmt.Errorf("gzip %s: %w", name, err)
		}
		defer zr.Close()
		in = zr
	}

	return checksumStream(engine, seed, in)
}

// checksumStream folds the whole reader into seed, chunk by chunk. Chained
// seeds make the result identical to a single pass over the full input.
func checksumStream(engine crc32c.Engine, seed uint32, r io.Reader) (uint32, int64, error) {
	crc := seed
	buf := make([]byte, 256*1024)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			c, cerr := crc32c.Checksum(engine, crc, buf[:n])
			if cerr != nil {
				return 0, total, cerr
			}
			crc = c
			total += int64(n)
		}
		if err == io.EOF {
			return crc, total, nil
		}
		if err != nil {
			return 0, total, err
		}
	}
}

func runCPU() error {
	fmt.Printf("cpu:            %s\n", cpuid.CPU.BrandName)
	fmt.Printf("cores:          %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Printf("sse4.2:         %v\n", cpuid.CPU.Supports(cpuid.SSE42))
	fmt.Printf("arm crc32:      %v\n", cpuid.CPU.Supports(cpuid.CRC32))
	fmt.Printf("hardware crc:   %v\n", crc32c.HardwareAvailable())
	fmt.Printf("active engine:  %s", crc32c.ActiveEngine())
	if crc32c.IsOverridden() {
		fmt.Printf(" (CRC32C_ENGINE override)")
	}
	fmt.Println()
	return nil
}
