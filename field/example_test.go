package field_test

import (
	"fmt"

	"github.com/nccloud/fmsr/field"
)

// ExampleMulBytes scales a chunk of bytes by a single GF(2^8) coefficient,
// the primitive matrix.Mul builds its row-accumulation on top of.
func ExampleMulBytes() {
	chunk := []byte{0x01, 0x02, 0x03, 0xFF}
	scaled := make([]byte, len(chunk))

	field.MulBytes(scaled, chunk, 0x07)
	fmt.Printf("%x\n", scaled)
	// Output: 070e09c7
}
