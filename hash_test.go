package crc32c

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	t.Run("StreamingMatchesOneShot", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		data := make([]byte, 1000)
		_, err := rng.Read(data)
		require.NoError(t, err)

		h := New()
		for i := 0; i < len(data); i += 100 {
			n, err := h.Write(data[i : i+100])
			require.NoError(t, err)
			assert.Equal(t, 100, n)
		}
		assert.Equal(t, Sum(data), h.Sum32())
	})

	t.Run("Reset", func(t *testing.T) {
		h := New()
		_, err := h.Write([]byte("stale"))
		require.NoError(t, err)

		h.Reset()
		_, err = h.Write([]byte("123456789"))
		require.NoError(t, err)
		assert.Equal(t, uint32(0xe3069283), h.Sum32())
	})

	t.Run("SumAppendsBigEndian", func(t *testing.T) {
		h := New()
		_, err := h.Write([]byte("123456789"))
		require.NoError(t, err)

		out := h.Sum([]byte{0xaa})
		assert.Equal(t, []byte{0xaa, 0xe3, 0x06, 0x92, 0x83}, out)
		assert.Equal(t, Size, h.Size())
	})

	t.Run("PinnedEngines", func(t *testing.T) {
		data := []byte("engine pinning")

		for _, e := range []Engine{Software, Hardware} {
			h, err := NewEngine(e)
			require.NoError(t, err)
			_, err = h.Write(data)
			require.NoError(t, err)
			assert.Equal(t, Sum(data), h.Sum32(), "engine %s", e)
		}
	})

	t.Run("InvalidEngine", func(t *testing.T) {
		_, err := NewEngine(Engine(42))
		var invalid *ErrInvalidEngine
		require.ErrorAs(t, err, &invalid)
	})
}
