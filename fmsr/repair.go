package fmsr

import (
	"fmt"
	"math/rand"

	"github.com/nccloud/fmsr/field"
	"github.com/nccloud/fmsr/matrix"
)

// NumChecksThreshold bounds the total number of candidate repair
// matrices Repair will draw and check before giving up.
const NumChecksThreshold = 1000000000

// LazyThreshold is the number of rounds Repair spends on the cheap
// geometric-row heuristic (Phase 1) before falling back to drawing every
// entry of Gamma independently (Phase 2).
const LazyThreshold = 512

// RepairHints records which chunk was pulled from each survivor during
// the previous repair, so the next repair can rotate which of a node's
// two chunks it requests. Persist and supply these across repairs of the
// same encoding matrix; the zero value (LastRepaired == 0) is wrong for
// a fresh matrix — use NewRepairHints.
type RepairHints struct {
	LastRepaired byte // node repaired last round, or NoPriorRepair
	LastUsed     byte // which chunk (0 or 1) was pulled from each survivor last round
}

// NewRepairHints returns the hints for an encoding matrix that has never
// been repaired.
func NewRepairHints() RepairHints {
	return RepairHints{LastRepaired: NoPriorRepair, LastUsed: 0}
}

// Repair computes everything needed to regenerate node erasure's two
// chunks: which chunk to retrieve from each of the other n-1 nodes, a
// repair matrix Gamma, and the new encoding matrix with erasure's two
// rows replaced. rng drives the randomized search and must be supplied
// by the caller (e.g. rand.New(rand.NewSource(seed))) so repairs are
// reproducible in tests; Repair never reads global PRNG state.
//
// Stage A selects, for every surviving node, which of its two chunks to
// retrieve (select), derived from hints so that consecutive repairs of
// the same node rotate which chunk is considered primary.
//
// Stage B computes the lambda vectors expressing each survivor's
// select-th chunk as a combination of the other survivors' chunks.
//
// Stage C repeatedly draws a candidate Gamma (cheaply, via Phase 1's
// geometric rows, for the first LazyThreshold rounds; uniformly at
// random thereafter) and accepts the first one that satisfies the erMDS
// predicate — and, if checkMDS/checkRMDS is true, the corresponding
// stronger check(s) — up to NumChecksThreshold attempts.
//
// On success, returns the updated hints and the number of candidates
// checked (always >= 1); on exhausting the bound, returns
// ErrNoCoefficientsFound.
func Repair(k, n byte, em *matrix.Dense, erasure byte, hints RepairHints, rng *rand.Rand, checkMDS, checkRMDS bool) (newEM, gamma *matrix.Dense, chunksToRetrieve []byte, newHints RepairHints, iters int, err error) {
	if !supported(k, n) {
		return nil, nil, nil, hints, 0, ErrUnsupportedParams
	}
	if checkRMDS && !checkMDS {
		return nil, nil, nil, hints, 0, fmt.Errorf("fmsr: Repair: checkRMDS requires checkMDS")
	}

	nn, nc := int(NN(k, n)), int(NC(k, n))

	// Stage A: which chunk to retrieve from each survivor.
	var select_ byte
	if hints.LastRepaired != NoPriorRepair {
		select_ = hints.LastUsed
		if hints.LastRepaired == erasure {
			select_ ^= 1
		}
	}

	chunksToRetrieve = make([]byte, n-1)
	encodeSubmatrix, err := matrix.NewDense(int(n)-1, nn)
	if err != nil {
		return nil, nil, nil, hints, 0, err
	}
	retrieveIdx := 0
	for i := byte(0); i < n; i++ {
		if i == erasure {
			continue
		}
		chunk := i*2 | select_
		chunksToRetrieve[retrieveIdx] = chunk
		copy(encodeSubmatrix.Row(retrieveIdx), em.Row(int(chunk)))
		retrieveIdx++
	}

	// Stage B: lambda vectors, over every surviving chunk's ECV (both
	// chunks of every surviving node, erasure's two rows excised).
	offset := int(erasure) * 2 * nn
	survivors, err := matrix.NewDense(int(n)-1, 2*nn)
	if err != nil {
		return nil, nil, nil, hints, 0, err
	}
	copy(survivors.Data[:offset], em.Data[:offset])
	copy(survivors.Data[offset:], em.Data[offset+2*nn:])
	survivorRows, err := matrix.WrapDense(survivors.Data, 2*(int(n)-1), nn)
	if err != nil {
		return nil, nil, nil, hints, 0, err
	}
	lambda := calculateLambda(survivorRows, select_)

	// Stage C: randomized search for a valid Gamma.
	gamma, err = matrix.NewDense(2, int(n)-1)
	if err != nil {
		return nil, nil, nil, hints, 0, err
	}
	newEM, err = matrix.NewDense(nc, nn)
	if err != nil {
		return nil, nil, nil, hints, 0, err
	}

	for checks := 1; checks <= NumChecksThreshold; checks++ {
		drawGamma(gamma, rng, checks-1)

		if !checkERMDS(gamma, lambda, select_) {
			continue
		}

		copy(newEM.Data, em.Data)
		replaced, err := matrix.WrapDense(newEM.Data[offset:offset+2*nn], 2, nn)
		if err != nil {
			return nil, nil, nil, hints, 0, err
		}
		if err := matrix.MulParallel(replaced, gamma, encodeSubmatrix, matrix.DefaultWorkers); err != nil {
			return nil, nil, nil, hints, 0, err
		}

		if checkMDS {
			ok, err := CheckMDS(k, n, newEM)
			if err != nil {
				return nil, nil, nil, hints, 0, err
			}
			if !ok {
				continue
			}
		}
		if checkRMDS {
			ok, err := CheckRMDS(k, n, newEM, erasure)
			if err != nil {
				return nil, nil, nil, hints, 0, err
			}
			if !ok {
				continue
			}
		}

		newHints = RepairHints{LastRepaired: erasure, LastUsed: select_}

		return newEM, gamma, chunksToRetrieve, newHints, checks, nil
	}

	return nil, nil, nil, hints, 0, ErrNoCoefficientsFound
}

// drawGamma fills gamma (2 x (n-1)) with the round-th candidate: Phase 1
// (round < LazyThreshold) draws one shared random base and fills each row
// with a geometric sequence in a distinct factor derived from it; Phase 2
// draws every entry independently and uniformly from [1, 255].
func drawGamma(gamma *matrix.Dense, rng *rand.Rand, round int) {
	width := gamma.Cols

	if round < LazyThreshold {
		base := rng.Intn(255) + 1
		for row := 0; row < 2; row++ {
			factor := byte((row+base)%255 + 1)
			coeff := byte(1)
			r := gamma.Row(row)
			for j := 0; j < width; j++ {
				r[j] = coeff
				coeff = field.Mul(coeff, factor)
			}
		}

		return
	}

	for i := range gamma.Data {
		gamma.Data[i] = byte(rng.Intn(255) + 1)
	}
}

// Regenerate applies gamma to retrieved (rows matching chunksToRetrieve,
// cols == chunksize) to produce the erased node's replacement chunks
// (gamma.Rows x chunksize).
func Regenerate(gamma, retrieved *matrix.Dense) (*matrix.Dense, error) {
	newChunks, err := matrix.NewDense(gamma.Rows, retrieved.Cols)
	if err != nil {
		return nil, err
	}
	if err := matrix.MulParallel(newChunks, gamma, retrieved, matrix.DefaultWorkers); err != nil {
		return nil, fmt.Errorf("fmsr: Regenerate: %w", err)
	}

	return newChunks, nil
}
