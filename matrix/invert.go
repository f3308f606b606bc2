package matrix

import "github.com/nccloud/fmsr/field"

// Invert replaces m in place with its inverse. m must be square.
//
// Implementation: augment m with the k x k identity to form a k x 2k
// matrix, run Gauss-Jordan elimination on the augmented matrix, and copy
// the right-hand k x k block back into m. Gauss-Jordan fails (and m is
// left untouched) iff m is singular.
func (m *Dense) Invert() error {
	if m.Rows != m.Cols {
		return ErrNonSquare
	}
	k := m.Rows

	aug := make([]byte, k*2*k)
	for i := 0; i < k; i++ {
		copy(aug[i*2*k:i*2*k+k], m.Row(i))
		aug[i*2*k+k+i] = 1
	}

	if rank := gaussJordan(aug, k, 2*k); rank < k {
		return ErrSingular
	}

	for i := 0; i < k; i++ {
		copy(m.Row(i), aug[i*2*k+k:i*2*k+2*k])
	}

	return nil
}

// Rank returns rank(m), operating on a copy so m is never mutated.
func (m *Dense) Rank() int {
	cp := make([]byte, len(m.Data))
	copy(cp, m.Data)

	return gaussianElimination(cp, m.Rows, m.Cols)
}

// gaussianElimination row-reduces the n x m matrix A (stride m) in place
// and returns its rank. Pivoting strategy: rather than swapping rows, the
// first row below the current one with a non-zero pivot column is
// XOR-added into the current row (equivalent over GF(2^8) and cheaper
// than a swap); every row's leading non-zero entry is kept normalized to
// 1 throughout, which is what lets later passes reuse it directly as a
// multiplier. Rank is m minus the number of columns that never acquire a
// pivot.
func gaussianElimination(A []byte, n, m int) int {
	// Normalize: scale every row so its first non-zero entry is 1.
	for i := 0; i < n; i++ {
		row := A[i*m : (i+1)*m]
		for j := 0; j < m; j++ {
			if row[j] != 0 {
				if row[j] != 1 {
					inv := field.Inv(row[j])
					field.MulBytes(row[j:], row[j:], inv)
				}
				break
			}
		}
	}

	rank := m
	for i := 0; i < m; i++ {
		// Find the first row at or below i with a non-zero entry in column i.
		first := -1
		for k := i; k < n; k++ {
			if A[k*m+i] != 0 {
				first = k
				break
			}
		}
		if first == -1 {
			rank--
			continue
		}
		if first != i {
			for j := i; j < m; j++ {
				A[i*m+j] ^= A[first*m+j]
			}
		}

		// Eliminate column i from every row below i, re-normalizing each
		// affected row's new leading entry so the invariant holds for the
		// next column.
		for j := i + 1; j < n; j++ {
			if A[j*m+i] == 0 {
				continue
			}
			A[j*m+i] = 0
			var inv byte
			for k := i + 1; k < m; k++ {
				A[j*m+k] ^= A[i*m+k]
				if inv == 0 && A[j*m+k] != 0 {
					inv = field.Inv(A[j*m+k])
				}
			}
			if inv != 0 {
				field.MulBytes(A[j*m+i+1:j*m+m], A[j*m+i+1:j*m+m], inv)
			}
		}
	}

	return rank
}

// gaussJordan reduces the n x m matrix A to reduced row-echelon form
// (forward elimination via gaussianElimination, then back-substitution to
// clear above the diagonal) and returns its rank.
func gaussJordan(A []byte, n, m int) int {
	rank := gaussianElimination(A, n, m)

	for i := rank - 1; i > 0; i-- {
		// Row i's leading 1 may not be in column i if earlier columns had
		// no pivot; walk forward to find where it actually is.
		first := i
		for A[i*m+first] == 0 {
			first++
		}
		for j := 0; j < i; j++ {
			coeff := A[j*m+first]
			field.MulXorBytes(A[j*m+first:j*m+m], A[i*m+first:i*m+m], coeff)
		}
	}

	return rank
}
