package fmsr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/nccloud/fmsr/fmsr"
)

func TestPadThenUnpadRecoversSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k, n := byte(2), byte(4)
		size := rapid.IntRange(0, 64).Draw(t, "size")

		buf := make([]byte, fmsr.PaddedSize(k, n, size))
		for i := 0; i < size; i++ {
			buf[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
		}

		require.NoError(t, fmsr.Pad(k, n, buf, size))
		assert.Equal(t, size, fmsr.Unpad(buf))
	})
}

func TestPadWritesSentinelAndZeroes(t *testing.T) {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xFF
	}
	require.NoError(t, fmsr.Pad(2, 4, buf, 5))
	assert.Equal(t, byte(1), buf[5])
	assert.Equal(t, []byte{0, 0}, buf[6:8])
}

func TestUnpadDetectsCorruption(t *testing.T) {
	// Final byte non-zero and not the sentinel: corrupt.
	buf := []byte{1, 2, 3, 0xAB}
	assert.Equal(t, 0, fmsr.Unpad(buf))
}

func TestUnpadFinalByteIsSentinel(t *testing.T) {
	buf := []byte{9, 9, 9, 1}
	assert.Equal(t, 3, fmsr.Unpad(buf))
}

func TestUnpadEmptyBuffer(t *testing.T) {
	assert.Equal(t, 0, fmsr.Unpad(nil))
}

func TestPadRejectsWrongLength(t *testing.T) {
	buf := make([]byte, 3)
	assert.Error(t, fmsr.Pad(2, 4, buf, 1))
}
