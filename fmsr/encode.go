package fmsr

import (
	"fmt"

	"github.com/nccloud/fmsr/matrix"
)

// Encode splits data into nn native chunks and multiplies them by em to
// produce nc coded chunks.
//
// data must be allocated to PaddedSize(k, n, size); Encode pads it in
// place (see Pad) before viewing it as an nn x chunksize matrix, where
// chunksize = PaddedSize(k, n, size) / nn. If createNew is true, em (which
// must already be shaped NC(k,n) x NN(k,n)) is overwritten with a fresh
// Cauchy matrix first; otherwise the caller's em is used as-is.
//
// The returned code chunks are an nc x chunksize Dense.
func Encode(k, n byte, em *matrix.Dense, data []byte, size int, createNew bool) (*matrix.Dense, error) {
	if !supported(k, n) {
		return nil, ErrUnsupportedParams
	}

	nn, nc := int(NN(k, n)), int(NC(k, n))
	chunkSize := PaddedSize(k, n, size) / nn

	if createNew {
		if err := CreateEncodeMatrix(k, n, em); err != nil {
			return nil, err
		}
	}
	if err := Pad(k, n, data, size); err != nil {
		return nil, err
	}

	nativeData, err := matrix.WrapDense(data, nn, chunkSize)
	if err != nil {
		return nil, fmt.Errorf("fmsr: Encode: %w", err)
	}

	codeChunks, err := matrix.NewDense(nc, chunkSize)
	if err != nil {
		return nil, err
	}
	if err := matrix.MulParallel(codeChunks, em, nativeData, matrix.DefaultWorkers); err != nil {
		return nil, fmt.Errorf("fmsr: Encode: %w", err)
	}

	return codeChunks, nil
}
