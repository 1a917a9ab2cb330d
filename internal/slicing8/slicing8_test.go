package slicing8

import (
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitwiseCRC is the textbook bit-at-a-time reference, independent of the
// lookup table under test.
func bitwiseCRC(crc uint32, p []byte) uint32 {
	crc = ^crc
	for _, b := range p {
		crc ^= uint32(b)
		for i := 0; i < 8; i++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}

func TestTableRowZero(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := bitwiseCRC(0xffffffff, []byte{byte(i)})
		// Strip the complement convention to compare raw remainders.
		assert.Equal(t, ^want, table[0][i], "byte %#02x", i)
	}
}

func TestTableDerivedRows(t *testing.T) {
	for i := 0; i < 256; i++ {
		crc := table[0][i]
		for j := 1; j < 8; j++ {
			crc = table[0][crc&0xff] ^ (crc >> 8)
			require.Equal(t, crc, table[j][i], "row %d byte %#02x", j, i)
		}
	}
}

func TestUpdateKnownVector(t *testing.T) {
	// Standard CRC-32C reference vector.
	assert.Equal(t, uint32(0xe3069283), Update(0, []byte("123456789")))
}

func TestUpdateEmpty(t *testing.T) {
	for _, seed := range []uint32{0, 1, 0xdeadbeef, 0xffffffff} {
		assert.Equal(t, seed, Update(seed, nil))
		assert.Equal(t, seed, Update(seed, []byte{}))
	}
}

func TestUpdateMatchesReference(t *testing.T) {
	castagnoli := crc32.MakeTable(crc32.Castagnoli)
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{1, 2, 7, 8, 9, 15, 16, 63, 64, 255, 1024, 4096} {
		data := make([]byte, size)
		_, err := rng.Read(data)
		require.NoError(t, err)

		seed := rng.Uint32()
		assert.Equal(t, crc32.Update(seed, castagnoli, data), Update(seed, data), "size %d", size)
	}
}

func TestUpdateIncremental(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := make([]byte, 777)
	_, err := rng.Read(data)
	require.NoError(t, err)

	want := Update(0, data)
	for split := 0; split <= len(data); split += 31 {
		crc := Update(0, data[:split])
		assert.Equal(t, want, Update(crc, data[split:]), "split %d", split)
	}
}

func TestUpdateAlignment(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	content := make([]byte, 1024)
	_, err := rng.Read(content)
	require.NoError(t, err)

	want := Update(0, content)

	// Same content at every offset of a backing array must checksum
	// identically; the fast path may only depend on relative bytes.
	backing := make([]byte, len(content)+16)
	for off := 0; off <= 8; off++ {
		view := backing[off : off+len(content)]
		copy(view, content)
		assert.Equal(t, want, Update(0, view), "offset %d", off)
	}
}
