package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/nccloud/fmsr/matrix"
)

func randomMatrix(r *rand.Rand, rows, cols int) *matrix.Dense {
	m, _ := matrix.NewDense(rows, cols)
	r.Read(m.Data)

	return m
}

func BenchmarkMul(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	for _, size := range []int{8, 64, 512} {
		size := size
		a := randomMatrix(r, size, size)
		in := randomMatrix(r, size, size)
		c, _ := matrix.NewDense(size, size)

		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = matrix.Mul(c, a, in)
			}
		})
	}
}

func BenchmarkMulParallel(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	const size = 512
	a := randomMatrix(r, size, size)
	in := randomMatrix(r, size, size)
	c, _ := matrix.NewDense(size, size)

	for _, workers := range []int{1, 2, 4, 7, 16} {
		workers := workers
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = matrix.MulParallel(c, a, in, workers)
			}
		})
	}
}

func BenchmarkInvert(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	const k = 32
	base := randomMatrix(r, k, k)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := base.Clone()
		_ = m.Invert()
	}
}
