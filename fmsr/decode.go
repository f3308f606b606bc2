package fmsr

import (
	"fmt"

	"github.com/nccloud/fmsr/matrix"
)

// Decode reconstructs the original data from nn retrieved coded chunks.
//
// codeChunks must have at least nn = NN(k, n) rows; only the first nn
// rows are ever read, one per encoding-vector row of the decode
// submatrix, and any further rows are ignored. chunkIndices names, for each row of codeChunks,
// which row of E it came from; len(chunkIndices) must be >= nn and only
// the first nn entries are consulted.
//
// If cached is non-nil, it is used as the decode (inverted submatrix)
// matrix directly and em/chunkIndices/createNew are ignored for matrix
// construction (cached must still be nn x nn). Otherwise a fresh nn x nn
// submatrix of em is sampled per chunkIndices and inverted; if createNew
// is true the computed decode matrix is returned alongside the data so
// the caller can cache it for a later Decode with the same chunk set.
func Decode(k, n byte, codeChunks *matrix.Dense, chunkIndices []byte, em, cached *matrix.Dense, createNew bool) (data []byte, decodeMatrix *matrix.Dense, err error) {
	nn := int(NN(k, n))
	if codeChunks.Rows < nn || len(chunkIndices) < nn {
		return nil, nil, ErrTooFewChunks
	}

	var submatrix *matrix.Dense
	if cached != nil {
		submatrix = cached
	} else {
		nc := int(NC(k, n))
		submatrix, err = matrix.NewDense(nn, nn)
		if err != nil {
			return nil, nil, err
		}
		for i := 0; i < nn; i++ {
			idx := int(chunkIndices[i])
			if idx >= nc {
				return nil, nil, ErrBadChunkIndex
			}
			copy(submatrix.Row(i), em.Row(idx))
		}
		if err := submatrix.Invert(); err != nil {
			return nil, nil, ErrSingularSubmatrix
		}
	}

	chunkSize := codeChunks.Cols
	chunkRows, err := matrix.WrapDense(codeChunks.Data[:nn*chunkSize], nn, chunkSize)
	if err != nil {
		return nil, nil, fmt.Errorf("fmsr: Decode: %w", err)
	}

	nativeData, err := matrix.NewDense(nn, chunkSize)
	if err != nil {
		return nil, nil, err
	}
	if err := matrix.MulParallel(nativeData, submatrix, chunkRows, matrix.DefaultWorkers); err != nil {
		return nil, nil, fmt.Errorf("fmsr: Decode: %w", err)
	}

	trueSize := Unpad(nativeData.Data)
	out := make([]byte, trueSize)
	copy(out, nativeData.Data)

	if createNew && cached == nil {
		return out, submatrix, nil
	}

	return out, nil, nil
}
