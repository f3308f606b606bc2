package fmsr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nccloud/fmsr/matrix"
)

// On a freshly created (never-repaired) Cauchy matrix, every nn-chunk
// subset is invertible by construction, so getRMDSDegree must count
// every combination in its search space: excluding node's two chunks
// leaves nc-2 candidates to choose nn from, all of them full rank.
// For (k,n) = (2,4): nc=8, nn=4, C(6,4) = 15.
func TestGetRMDSDegreeOnFreshMatrix(t *testing.T) {
	k, n := byte(2), byte(4)
	nn, nc := int(NN(k, n)), int(NC(k, n))

	em, err := matrix.NewDense(nc, nn)
	require.NoError(t, err)
	require.NoError(t, CreateEncodeMatrix(k, n, em))

	for node := byte(0); node < n; node++ {
		degree, err := getRMDSDegree(k, n, em, node)
		require.NoError(t, err)
		require.Equal(t, 15, degree, "node %d", node)
	}
}

// CheckRMDS's threshold for (k,n) = (2,4) is (nc-2)(nc-3)/2 -
// (n-3)(n-2)/2 = 15 - 1 = 14, strictly below the degree of 15 every
// node achieves on a fresh matrix, so CheckRMDS must report success for
// every candidate justRepaired node.
func TestCheckRMDSThresholdOnFreshMatrix(t *testing.T) {
	k, n := byte(2), byte(4)
	nn, nc := int(NN(k, n)), int(NC(k, n))

	em, err := matrix.NewDense(nc, nn)
	require.NoError(t, err)
	require.NoError(t, CreateEncodeMatrix(k, n, em))

	for node := byte(0); node < n; node++ {
		ok, err := CheckRMDS(k, n, em, node)
		require.NoError(t, err)
		require.True(t, ok, "node %d", node)
	}
}
