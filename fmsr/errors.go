package fmsr

import "errors"

// Sentinel errors for fmsr package operations; callers should match with
// errors.Is. Internal invariant violations (a singular submatrix while
// computing lambda, which cannot happen if E was produced by this
// package) panic instead of returning an error — see calculateLambda.
var (
	// ErrUnsupportedParams indicates (k, n) falls outside n-k=2, n in [4,127].
	ErrUnsupportedParams = errors.New("fmsr: unsupported (k, n) parameters")

	// ErrTooFewChunks indicates fewer than nn chunks were supplied to Decode.
	ErrTooFewChunks = errors.New("fmsr: fewer than nn chunks supplied")

	// ErrBadChunkIndex indicates a chunk index references a row outside E.
	ErrBadChunkIndex = errors.New("fmsr: chunk index out of range")

	// ErrSingularSubmatrix indicates the sampled decode submatrix is singular.
	ErrSingularSubmatrix = errors.New("fmsr: sampled submatrix is singular")

	// ErrNoCoefficientsFound indicates the repair search exhausted its
	// iteration budget without finding a Gamma that passes the enabled checks.
	ErrNoCoefficientsFound = errors.New("fmsr: no repair coefficients found within iteration bound")
)
