package crc32c

import "hash"

// Size of a CRC-32C checksum in bytes.
const Size = 4

// digest is a streaming CRC-32C pinned to one engine.
type digest struct {
	crc    uint32
	engine Engine
}

// New returns a streaming CRC-32C hash using the active engine. The
// returned hash is not safe for concurrent use.
func New() hash.Hash32 {
	return &digest{engine: activeEngine}
}

// NewEngine returns a streaming CRC-32C hash pinned to engine e.
func NewEngine(e Engine) (hash.Hash32, error) {
	switch e {
	case Software, Hardware:
		return &digest{engine: e}, nil
	default:
		return nil, &ErrInvalidEngine{Engine: e}
	}
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() {
	d.crc = 0
}

func (d *digest) Write(p []byte) (int, error) {
	d.crc = update(d.engine, d.crc, p)
	return len(p), nil
}

// Sum appends the big-endian checksum to in, matching hash/crc32.
func (d *digest) Sum(in []byte) []byte {
	s := d.crc
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest) Sum32() uint32 {
	return d.crc
}

var _ hash.Hash32 = (*digest)(nil)
