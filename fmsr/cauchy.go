package fmsr

import (
	"fmt"

	"github.com/nccloud/fmsr/field"
	"github.com/nccloud/fmsr/matrix"
)

// CreateEncodeMatrix fills em (which must already be shaped NC(k,n) x
// NN(k,n)) with the Cauchy matrix E[i,j] = 1/(i XOR (255-j)). Every square
// submatrix of a Cauchy matrix is invertible, which is what gives the
// freshly-created E its MDS property.
func CreateEncodeMatrix(k, n byte, em *matrix.Dense) error {
	if !supported(k, n) {
		return ErrUnsupportedParams
	}
	nc, nn := int(NC(k, n)), int(NN(k, n))
	if em.Rows != nc || em.Cols != nn {
		return fmt.Errorf("fmsr: CreateEncodeMatrix: em is %dx%d, want %dx%d: %w", em.Rows, em.Cols, nc, nn, matrix.ErrDimensionMismatch)
	}

	for i := 0; i < nc; i++ {
		row := em.Row(i)
		for j := 0; j < nn; j++ {
			row[j] = field.Div(1, byte(i)^(255-byte(j)))
		}
	}

	return nil
}
