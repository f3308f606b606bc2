package matrix

import "fmt"

// FirstCombination returns the first valid strictly-increasing
// k-combination of row indices in [0,rows), skipping any index present
// in excluded: the k smallest allowed indices, in order. Seed
// NextSubmatrix's comb argument with this before the first call.
func FirstCombination(rows, k int, excluded []int) ([]int, error) {
	allowed := allowedIndices(rows, excluded)
	if k > len(allowed) {
		return nil, fmt.Errorf("matrix: FirstCombination: k=%d exceeds %d allowed rows: %w", k, len(allowed), ErrDimensionMismatch)
	}

	first := make([]int, k)
	copy(first, allowed[:k])

	return first, nil
}

// NextSubmatrix advances comb (in place) to the next strictly-increasing
// k-combination of row indices drawn from [0,src.Rows), excluding any
// index in excluded, in lexicographic order, and writes the selected
// rows of src into out (which must already be shaped k x src.Cols). comb
// must initially hold a valid combination, e.g. from FirstCombination;
// NextSubmatrix advances past it before materializing, matching the
// reference library's contract — callers that also need the seed
// combination's rows must materialize those themselves before the first
// call. Returns false (out left untouched) once combinations are
// exhausted.
func NextSubmatrix(src *Dense, k int, excluded []int, comb []int, out *Dense) (bool, error) {
	if len(comb) != k {
		return false, fmt.Errorf("matrix: NextSubmatrix: len(comb)=%d, want %d: %w", len(comb), k, ErrDimensionMismatch)
	}
	if out.Rows != k || out.Cols != src.Cols {
		return false, fmt.Errorf("matrix: NextSubmatrix: out is %dx%d, want %dx%d: %w", out.Rows, out.Cols, k, src.Cols, ErrDimensionMismatch)
	}

	allowed := allowedIndices(src.Rows, excluded)
	n := len(allowed)
	pos := make([]int, k)
	for i, v := range comb {
		p := positionOf(allowed, v)
		if p < 0 {
			return false, fmt.Errorf("matrix: NextSubmatrix: comb[%d]=%d is not an allowed row: %w", i, v, ErrIndexOutOfBounds)
		}
		pos[i] = p
	}

	// Standard next-combination over positions [0,n) choose k: find the
	// rightmost position not already pinned against the tail of the
	// universe, bump it, and pack everything after it as tightly as
	// possible.
	i := k - 1
	for i >= 0 && pos[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false, nil
	}
	pos[i]++
	for j := i + 1; j < k; j++ {
		pos[j] = pos[i] + (j - i)
	}

	for i, p := range pos {
		comb[i] = allowed[p]
		copy(out.Row(i), src.Row(allowed[p]))
	}

	return true, nil
}

func allowedIndices(rows int, excluded []int) []int {
	skip := make(map[int]struct{}, len(excluded))
	for _, e := range excluded {
		skip[e] = struct{}{}
	}

	allowed := make([]int, 0, rows-len(skip))
	for i := 0; i < rows; i++ {
		if _, ok := skip[i]; !ok {
			allowed = append(allowed, i)
		}
	}

	return allowed
}

func positionOf(allowed []int, v int) int {
	for i, a := range allowed {
		if a == v {
			return i
		}
	}

	return -1
}
