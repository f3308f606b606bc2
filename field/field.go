package field

import "sync"

// Elem is a single symbol of GF(2^8). Chunk and matrix buffers are plain
// []byte throughout the module; Elem documents the bytes that the field
// package interprets as field elements rather than raw payload.
type Elem = byte

// poly is the low byte of the primitive polynomial x^8+x^4+x^3+x^2+1
// (0x11D); the implicit x^8 term is handled by the shift-and-reduce loop
// in initTables, so only the low 8 bits need to be stored here.
const poly Elem = 0x1D

var (
	initOnce sync.Once

	// expTable holds x^i for i in [0,509]; indices [255,509] duplicate
	// [0,254] so that expTable[logTable[a]+logTable[b]] never needs a
	// modular reduction when multiplying two non-zero elements.
	expTable [510]Elem
	logTable [256]Elem // logTable[a] = log_x(a), undefined at index 0
	invTable [256]Elem // invTable[a] = 1/a, undefined at index 0
	mulTable [256][256]Elem
)

// Init builds the exp/log/inv/mul tables. It is idempotent and safe to
// call from multiple goroutines; only the first call does any work, and
// every call establishes happens-before with every later field operation
// in the calling goroutine and any goroutine that later calls Init.
// Every exported function in this package also calls Init lazily, so
// explicit calls are only needed to pay the (small, one-time) setup cost
// up front rather than on first use.
func Init() {
	initOnce.Do(initTables)
}

func initTables() {
	expTable[0] = 1
	for i := 1; i < 256; i++ {
		e := expTable[i-1] << 1
		if expTable[i-1]&0x80 != 0 {
			e ^= poly
		}
		expTable[i] = e
		if i < 255 {
			logTable[e] = Elem(i)
		}
	}
	for i := 128; i < 256; i++ {
		invTable[expTable[i]] = expTable[255-i]
		invTable[expTable[255-i]] = expTable[i]
	}
	logTable[1] = 0
	invTable[1] = 1
	copy(expTable[255:], expTable[:255])

	for i := 1; i < 256; i++ {
		li := int(logTable[i])
		mulTable[i][i] = expTable[li<<1]
		for j := 1; j < i; j++ {
			v := expTable[li+int(logTable[j])]
			mulTable[i][j] = v
			mulTable[j][i] = v
		}
	}
}

// Mul returns a*b in GF(2^8).
func Mul(a, b Elem) Elem {
	Init()
	return mulTable[a][b]
}

// Div returns a/b in GF(2^8). Undefined (returns garbage) if b == 0.
func Div(a, b Elem) Elem {
	Init()
	return mulTable[a][invTable[b]]
}

// Inv returns 1/a in GF(2^8). Undefined (returns garbage) if a == 0.
func Inv(a Elem) Elem {
	Init()
	return invTable[a]
}

// ExpX returns x^i for i in [0,255).
func ExpX(i Elem) Elem {
	Init()
	return expTable[i]
}

// LogX returns log_x(a), the discrete log base x. Undefined if a == 0.
func LogX(a Elem) Elem {
	Init()
	return logTable[a]
}

// MulBytes sets dst[i] = Mul(src[i], b) for every byte. src and dst may
// alias the same slice; dst must be at least len(src) long.
func MulBytes(dst, src []byte, b Elem) {
	Init()
	row := &mulTable[b]
	n := len(src)
	i := 0
	for ; i+8 <= n; i += 8 {
		d := dst[i : i+8 : i+8]
		s := src[i : i+8 : i+8]
		d[0] = row[s[0]]
		d[1] = row[s[1]]
		d[2] = row[s[2]]
		d[3] = row[s[3]]
		d[4] = row[s[4]]
		d[5] = row[s[5]]
		d[6] = row[s[6]]
		d[7] = row[s[7]]
	}
	for ; i < n; i++ {
		dst[i] = row[src[i]]
	}
}

// MulXorBytes sets dst[i] ^= Mul(src[i], b) for every byte. src and dst
// may alias the same slice; dst must be at least len(src) long. This is
// the streaming primitive that drives matrix.Mul: accumulating one
// encoding-vector coefficient at a time into a row of output bytes.
func MulXorBytes(dst, src []byte, b Elem) {
	Init()
	row := &mulTable[b]
	n := len(src)
	i := 0
	for ; i+8 <= n; i += 8 {
		d := dst[i : i+8 : i+8]
		s := src[i : i+8 : i+8]
		d[0] ^= row[s[0]]
		d[1] ^= row[s[1]]
		d[2] ^= row[s[2]]
		d[3] ^= row[s[3]]
		d[4] ^= row[s[4]]
		d[5] ^= row[s[5]]
		d[6] ^= row[s[6]]
		d[7] ^= row[s[7]]
	}
	for ; i < n; i++ {
		dst[i] ^= row[src[i]]
	}
}
