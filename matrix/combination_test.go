package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nccloud/fmsr/matrix"
)

func denseFromRows(rows [][]byte) *matrix.Dense {
	m, _ := matrix.NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		copy(m.Row(i), row)
	}

	return m
}

func TestFirstCombinationSmallestAllowed(t *testing.T) {
	first, err := matrix.FirstCombination(5, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, first)

	first, err = matrix.FirstCombination(5, 2, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, first)
}

func TestFirstCombinationTooFewAllowed(t *testing.T) {
	_, err := matrix.FirstCombination(3, 3, []int{0})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNextSubmatrixEnumeratesAllCombinations(t *testing.T) {
	src := denseFromRows([][]byte{{0}, {1}, {2}, {3}})
	comb, err := matrix.FirstCombination(4, 2, nil)
	require.NoError(t, err)

	out, err := matrix.NewDense(2, 1)
	require.NoError(t, err)

	var got [][]int
	got = append(got, append([]int(nil), comb...))
	for {
		ok, err := matrix.NextSubmatrix(src, 2, nil, comb, out)
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, append([]int(nil), comb...))
	}

	// C(4,2) = 6 combinations in lexicographic order.
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, got)
}

func TestNextSubmatrixSkipsExcluded(t *testing.T) {
	src := denseFromRows([][]byte{{0}, {1}, {2}, {3}})
	excluded := []int{1}
	comb, err := matrix.FirstCombination(4, 2, excluded)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, comb)

	out, _ := matrix.NewDense(2, 1)
	var got [][]int
	got = append(got, append([]int(nil), comb...))
	for {
		ok, err := matrix.NextSubmatrix(src, 2, excluded, comb, out)
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, append([]int(nil), comb...))
	}

	want := [][]int{{0, 2}, {0, 3}, {2, 3}}
	assert.Equal(t, want, got)
}

func TestNextSubmatrixMaterializesRows(t *testing.T) {
	src := denseFromRows([][]byte{{9, 1}, {8, 2}, {7, 3}})
	comb, err := matrix.FirstCombination(3, 2, nil)
	require.NoError(t, err)

	out, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	ok, err := matrix.NextSubmatrix(src, 2, nil, comb, out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, comb)
	assert.Equal(t, []byte{9, 1, 7, 3}, out.Data)
}
