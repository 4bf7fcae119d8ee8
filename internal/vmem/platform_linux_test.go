//go:build linux

package vmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNativeMirrorAliasing(t *testing.T) {
	require.True(t, Mirrored())
	ps, err := PageSize()
	require.NoError(t, err)

	size := 2 * ps
	m, err := MapMirror(Native(), "vring-test", size, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer m.Release()

	mem := m.Bytes()
	require.Len(t, mem, 2*size)

	// Writes through the first half show up in the second and vice versa.
	for i := 0; i < size; i += 511 {
		mem[i] = byte(i)
		assert.Equal(t, byte(i), mem[i+size], "offset %d", i)
	}
	mem[2*size-1] = 0x7F
	assert.Equal(t, byte(0x7F), mem[size-1])

	// A copy straddling the end of the first half lands wrapped.
	copy(mem[size-2:], []byte{1, 2, 3, 4})
	assert.Equal(t, []byte{3, 4}, mem[0:2])
	assert.Equal(t, []byte{1, 2}, mem[2*size-2:])
}

func TestNativeMirrorReleasesCleanly(t *testing.T) {
	ps, err := PageSize()
	require.NoError(t, err)
	for i := 0; i < 64; i++ {
		m, err := MapMirror(Native(), "vring-test", ps, nil)
		require.NoError(t, err)
		require.NoError(t, m.Release())
	}
}
