package fmsr

import "github.com/nccloud/fmsr/matrix"

// calculateLambda expresses each surviving node's to-be-retrieved chunk
// (the select-th of its two) as a linear combination of the chunks from
// all other surviving nodes.
//
// survivors is the (n-1)*2 x nn stack of every surviving node's two
// encoding-vector rows, in node order (the failed node already removed).
// The returned lambda is (n-1) x nn: row i gives the coefficients
// expressing survivor i's select-th chunk in terms of the nn ECVs formed
// by stacking every OTHER survivor's two rows.
//
// Inverting that nn x nn submatrix can only fail if E was not produced by
// this package (every such submatrix is MDS by construction), so a
// failure here is an unreachable internal invariant violation rather
// than a reportable error: calculateLambda panics instead of returning
// one.
func calculateLambda(survivors *matrix.Dense, select_ byte) *matrix.Dense {
	numSurvivors := survivors.Rows / 2
	nn := survivors.Cols
	lambda, err := matrix.NewDense(numSurvivors, nn)
	if err != nil {
		panic(err)
	}

	for i := 0; i < numSurvivors; i++ {
		// The nn ECVs of every survivor other than i, stacked in order.
		other, err := matrix.NewDense(nn, nn)
		if err != nil {
			panic(err)
		}
		copy(other.Data[:2*i*nn], survivors.Data[:2*i*nn])
		copy(other.Data[2*i*nn:], survivors.Data[2*(i+1)*nn:])

		if err := other.Invert(); err != nil {
			panic("fmsr: calculateLambda: singular submatrix; E was not produced by this package")
		}

		ecv, err := matrix.WrapDense(survivors.Row(2*i+int(select_)), 1, nn)
		if err != nil {
			panic(err)
		}
		row, err := matrix.WrapDense(lambda.Row(i), 1, nn)
		if err != nil {
			panic(err)
		}
		if err := matrix.Mul(row, ecv, other); err != nil {
			panic(err)
		}
	}

	return lambda
}
