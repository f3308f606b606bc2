// Package fmsr implements the algebraic core of a Functional
// Minimum-Storage Regenerating (FMSR) erasure code for an (n, k) parameter
// pair with n-k fixed at 2 (n >= 4, n <= 127): encoding a file into n(n-k)
// coded chunks spread two-per-node across n nodes, decoding from any nn =
// k(n-k) of them, and repairing a single failed node by downloading one
// chunk from each of the n-1 survivors and regenerating its two chunks
// locally without ever reconstructing the full file.
//
// The encoding matrix E is an nc x nn Cauchy matrix over field.Elem: every
// nn-row submatrix sampled according to the coding constraint is
// invertible, which is what makes any nn chunks sufficient to decode.
// Repair proceeds in three stages per failed node e: select which of the
// two chunks to pull from each survivor (Step A, driven by RepairHints),
// derive each survivor's retrieved chunk as a linear combination of the
// other survivors' chunks (the lambda vectors, Step B), then search for a
// repair matrix Gamma satisfying the erMDS predicate (Step C) and fold it
// into E to produce node e's two replacement rows.
//
// Chunks, encoding matrices and repair matrices are all represented as
// matrix.Dense; this package owns none of the underlying storage or
// transport — callers retrieve chunks, persist E and RepairHints, and
// supply an *rand.Rand for the randomized repair search.
package fmsr
