package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/nccloud/fmsr/matrix"
)

func randomDense(t *rapid.T, rows, cols int, label string) *matrix.Dense {
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := range m.Data {
		m.Data[i] = byte(rapid.IntRange(0, 255).Draw(t, label))
	}

	return m
}

func TestMulParallelMatchesSerial(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		k := rapid.IntRange(1, 6).Draw(t, "k")
		m := rapid.IntRange(1, 20).Draw(t, "m")

		a := randomDense(t, n, k, "a")
		b := randomDense(t, k, m, "b")

		want, err := matrix.NewDense(n, m)
		require.NoError(t, err)
		require.NoError(t, matrix.Mul(want, a, b))

		for _, workers := range []int{1, 2, 4, 7, 16} {
			got, err := matrix.NewDense(n, m)
			require.NoError(t, err)
			require.NoError(t, matrix.MulParallel(got, a, b, workers))
			assert.Equalf(t, want.Data, got.Data, "workers=%d diverged from serial Mul", workers)
		}
	})
}

func TestMulDimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(4, 2)
	c, _ := matrix.NewDense(2, 2)
	assert.ErrorIs(t, matrix.Mul(c, a, b), matrix.ErrDimensionMismatch)
}

func TestMulKnownResult(t *testing.T) {
	// A = [[1,0],[0,1]] (identity); A*B == B.
	a, _ := matrix.NewDense(2, 2)
	a.Data[0] = 1
	a.Data[3] = 1

	b, _ := matrix.NewDense(2, 3)
	copy(b.Data, []byte{1, 2, 3, 4, 5, 6})

	c, _ := matrix.NewDense(2, 3)
	require.NoError(t, matrix.Mul(c, a, b))
	assert.Equal(t, b.Data, c.Data)
}
