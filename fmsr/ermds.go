package fmsr

import (
	"github.com/nccloud/fmsr/field"
	"github.com/nccloud/fmsr/matrix"
)

// checkERMDS evaluates the erMDS predicate against a candidate repair
// matrix gamma (2 x (n-1)) and the lambda vectors computed by
// calculateLambda. It reports whether all three inequalities hold; any
// violation means gamma must be rejected and a fresh candidate drawn.
//
// lim is n-1, the number of survivors / columns of gamma. The three
// checks run in increasing cost order, so the cheapest rejects most bad
// candidates before the more expensive ones run:
//
//  1. No two columns of gamma are proportional across its two rows.
//  2. Each survivor's two gamma columns combine with lambda to never
//     vanish against any other survivor's columns.
//  3. No two survivors' combined contributions are themselves
//     proportional.
func checkERMDS(gamma, lambda *matrix.Dense, select_ byte) bool {
	lim := gamma.Cols
	nn := lambda.Cols

	g0 := gamma.Row(0)
	g1 := gamma.Row(1)

	for i := 0; i < lim; i++ {
		for j := i + 1; j < lim; j++ {
			a, b, c, d := g0[i], g0[j], g1[i], g1[j]
			if field.Div(a, b) == field.Div(c, d) {
				return false
			}
		}
	}

	lambdaSelect := int(select_)
	for i := 0; i < lim; i, lambdaSelect = i+1, lambdaSelect+nn {
		lambdaSelectJ := lambdaSelect
		for j := 0; j < lim; j++ {
			if i == j {
				continue
			}

			if field.Mul(g0[i], lambda.Data[lambdaSelectJ])^g0[j] == 0 {
				return false
			}
			if field.Mul(g1[i], lambda.Data[lambdaSelectJ])^g1[j] == 0 {
				return false
			}

			lambdaSelectK := lambdaSelectJ + 2
			for kk := j + 1; kk < lim; kk++ {
				if i == kk {
					continue
				}

				a := field.Mul(g0[i], lambda.Data[lambdaSelectJ]) ^ g0[j]
				b := field.Mul(g0[i], lambda.Data[lambdaSelectK]) ^ g0[kk]
				c := field.Mul(g1[i], lambda.Data[lambdaSelectJ]) ^ g1[j]
				d := field.Mul(g1[i], lambda.Data[lambdaSelectK]) ^ g1[kk]

				if field.Div(a, b) == field.Div(c, d) {
					return false
				}

				lambdaSelectK += 2
			}

			lambdaSelectJ += 2
		}
	}

	return true
}
