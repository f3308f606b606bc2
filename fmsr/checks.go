package fmsr

import "github.com/nccloud/fmsr/matrix"

// CheckMDS is the optional stronger-than-erMDS check: it enumerates
// every way to choose k nodes out of n and requires the nn x
// nn submatrix formed from their collectively-owned 2k chunks to have
// full rank nn.
//
// The combination generator enumerates node indices, not chunk indices:
// em's nc x nn buffer is reinterpreted as an n x 2nn Dense (nodeView)
// where "row" i is node i's two encoding-vector rows concatenated — valid
// because node i's two chunk rows (2i, 2i+1) are already contiguous in
// em's row-major layout. Each sampled k-node combination's out buffer
// (k x 2nn) is then reinterpreted again as an nn x nn matrix (since
// 2k == nn whenever n-k=2) to compute its rank.
func CheckMDS(k, n byte, em *matrix.Dense) (bool, error) {
	nn := int(NN(k, n))

	// The initial combination {0,...,k-1} is exactly nodes whose chunk
	// rows occupy the first nn rows of em; check it directly rather than
	// through the generator.
	first, err := matrix.WrapDense(em.Data[:nn*nn], nn, nn)
	if err != nil {
		return false, err
	}
	if first.Rank() != nn {
		return false, nil
	}

	nodeView, err := matrix.WrapDense(em.Data, int(n), 2*nn)
	if err != nil {
		return false, err
	}
	comb, err := matrix.FirstCombination(int(n), int(k), nil)
	if err != nil {
		return false, err
	}
	out, err := matrix.NewDense(int(k), 2*nn)
	if err != nil {
		return false, err
	}

	for {
		ok, err := matrix.NextSubmatrix(nodeView, int(k), nil, comb, out)
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}

		submatrix, err := matrix.WrapDense(out.Data, nn, nn)
		if err != nil {
			return false, err
		}
		if submatrix.Rank() != nn {
			return false, nil
		}
	}

	return true, nil
}

// getRMDSDegree counts, among all nn-chunk subsets of the nc coded
// chunks excluding node's own two chunks, how many have full rank nn.
// The subset {0,...,nn-1} (skipping node's two chunks) is known a priori
// to have full rank because it satisfies the coding constraint the
// repair just enforced, so the count is seeded at 1 rather than computed
// for that subset explicitly; matrix.FirstCombination produces exactly
// that subset as comb, and NextSubmatrix's contract is to advance past
// the seed before materializing, so the loop below only ever evaluates
// the other subsets.
func getRMDSDegree(k, n byte, em *matrix.Dense, node byte) (int, error) {
	nn, nc := int(NN(k, n)), int(NC(k, n))
	excluded := []int{2 * int(node), 2*int(node) + 1}

	comb, err := matrix.FirstCombination(nc, nn, excluded)
	if err != nil {
		return 0, err
	}
	out, err := matrix.NewDense(nn, nn)
	if err != nil {
		return 0, err
	}

	degree := 1
	for {
		ok, err := matrix.NextSubmatrix(em, nn, excluded, comb, out)
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		if out.Rank() == nn {
			degree++
		}
	}

	return degree, nil
}

// CheckRMDS is the optional strongest check: for each of
// the n possible next-round single-node failures (other than the node
// just repaired), it requires getRMDSDegree to meet a threshold that
// discounts chunk subsets known to be dependent. CheckMDS must have
// already passed; CheckRMDS does not re-derive that.
func CheckRMDS(k, n byte, em *matrix.Dense, justRepaired byte) (bool, error) {
	nc := int(NC(k, n))
	threshold := (nc-2)*(nc-3)/2 - (int(n)-3)*(int(n)-2)/2

	for i := byte(0); i < n; i++ {
		if i == justRepaired {
			continue
		}
		degree, err := getRMDSDegree(k, n, em, i)
		if err != nil {
			return false, err
		}
		if degree < threshold {
			return false, nil
		}
	}

	return true, nil
}
