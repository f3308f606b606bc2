package fmsr

// NoPriorRepair is the last_repaired sentinel meaning "no repair has
// happened yet"; see RepairHints.
const NoPriorRepair = 255

// unsupported is the sentinel helpers return in place of a byte result
// when (k, n) falls outside the supported regime.
const unsupported = 255

// supported reports whether (k, n) is in the one regime this package
// implements: n-k = 2, n >= 4, and n <= 127 so that n*(n-k) stays under
// 256 and every chunk index fits in a byte.
func supported(k, n byte) bool {
	return int(n)-int(k) == 2 && n >= 4 && n <= 127
}

// ChunksPerNode returns n-k (always 2 in the supported regime), or the
// sentinel 255 if (k, n) is unsupported.
func ChunksPerNode(k, n byte) byte {
	if !supported(k, n) {
		return unsupported
	}

	return n - k
}

// NodeID returns the id of the node on which chunk index resides, or the
// sentinel 255 if (k, n) is unsupported.
func NodeID(k, n, index byte) byte {
	cpn := ChunksPerNode(k, n)
	if cpn == unsupported {
		return unsupported
	}

	return index / cpn
}

// ChunksOnNode writes the chunk indices resident on node into out (which
// must have length >= ChunksPerNode(k, n)) and reports whether (k, n) is
// supported; out is left untouched when it is not.
func ChunksOnNode(k, n, node byte, out []byte) bool {
	cpn := ChunksPerNode(k, n)
	if cpn == unsupported {
		return false
	}
	for i := byte(0); i < cpn; i++ {
		out[i] = node*cpn + i
	}

	return true
}

// NN returns k*(n-k), the number of native (data) chunks. Callers are
// expected to have already validated (k, n) via supported/ChunksPerNode;
// NN applies no guard of its own.
func NN(k, n byte) byte {
	return k * (n - k)
}

// NC returns n*(n-k), the number of coded chunks.
func NC(k, n byte) byte {
	return n * (n - k)
}

// PaddedSize returns the length data must be zero-extended to before
// Pad/Encode: the smallest multiple of NN(k, n) strictly greater than
// size.
func PaddedSize(k, n byte, size int) int {
	nn := int(NN(k, n))

	return (size/nn + 1) * nn
}
