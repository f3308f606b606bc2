// Package fmsr (module github.com/nccloud/fmsr) implements a Functional
// Minimum-Storage Regenerating erasure code: GF(2^8) field arithmetic, dense
// matrix operations over that field, and an FMSR encode/decode/repair core
// built on a Cauchy encoding matrix.
//
// The module is organized under three subpackages:
//
//	field/  — GF(2^8) arithmetic (Mul, Div, Inv, batched byte ops)
//	matrix/ — dense matrices over field.Elem (Mul, MulParallel, Invert, Rank,
//	          combination enumeration)
//	fmsr/   — encode/decode/repair: CreateEncodeMatrix, Encode, Decode,
//	          Repair, Regenerate, CheckMDS/CheckRMDS
//
// A caller encodes a buffer into nc = 2n chunks distributed across n
// storage nodes (two chunks per node, n-k == 2), can decode from any
// nn = 2k surviving chunks, and can repair a single lost node by
// downloading one chunk from each of the n-1 survivors and combining them
// with coefficients from Repair, without ever reconstructing the original
// data.
package fmsr
