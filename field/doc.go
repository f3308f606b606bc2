// Package field implements arithmetic in GF(2^8), the finite field used
// by fmsr/matrix to treat chunk bytes as field symbols.
//
// Addition is XOR; multiplication is polynomial multiplication modulo the
// primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D). All non-zero
// elements form a cyclic group of order 255 generated by x (the byte 2),
// which is what lets Mul/Div/Inv be implemented as table lookups instead
// of per-call polynomial arithmetic.
//
// Call Init once (or rely on the lazy first-use init) before using any
// other function in this package from a fresh process; after that, every
// function here is safe to call concurrently from any number of
// goroutines, since the tables are built once and never mutated again.
package field
