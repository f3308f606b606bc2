// Package matrix implements dense matrices over field.Elem (GF(2^8)) and
// the handful of linear-algebra primitives fmsr needs on top of them:
// multiplication (serial and fan-out parallel), Gauss-Jordan inversion,
// rank, and lexicographic enumeration of row-index combinations.
//
// A Dense matrix is a flat, row-major []byte of length Rows*Cols with no
// padding between rows (stride == Cols); element (i,j) lives at
// Data[i*Cols+j]. This is the same layout fmsr hands callers for encoding
// vectors and code chunks, so a Dense can be built directly over a
// caller-owned buffer without copying.
//
//	Dense{Rows: 2, Cols: 3}.Data == []byte{
//	    a00, a01, a02,   // row 0
//	    a10, a11, a12,   // row 1
//	}
package matrix
