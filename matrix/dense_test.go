package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nccloud/fmsr/matrix"
)

func TestNewDenseZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
}

func TestNewDenseRejectsBadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 3}, {3, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestWrapDenseAliasesBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}
	m, err := matrix.WrapDense(buf, 2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 9))
	assert.Equal(t, byte(9), buf[0], "WrapDense must not copy")
}

func TestWrapDenseRejectsLengthMismatch(t *testing.T) {
	_, err := matrix.WrapDense([]byte{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 7))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 42))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(7), v, "mutating the clone must not affect the original")
}
