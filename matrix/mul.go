package matrix

import (
	"fmt"
	"sync"

	"github.com/nccloud/fmsr/field"
)

// DefaultWorkers is the worker-pool size MulParallel uses when the caller
// asks for zero or negative workers; it matches the 7-thread default used
// for this kind of column-slab fan-out.
const DefaultWorkers = 7

// Mul computes c = a*b. c must already be shaped a.Rows x b.Cols; its
// contents are overwritten. a.Cols must equal b.Rows.
//
// Implementation: for each output row i, walk a's row i one coefficient
// at a time and XOR-accumulate that coefficient times the corresponding
// row of b into c's row i (MulXorBytes). This keeps the inner loop a
// streaming operation over contiguous bytes, which is what makes it fast.
func Mul(c, a, b *Dense) error {
	if a.Cols != b.Rows {
		return fmt.Errorf("matrix: Mul: a is %dx%d, b is %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, ErrDimensionMismatch)
	}
	if c.Rows != a.Rows || c.Cols != b.Cols {
		return fmt.Errorf("matrix: Mul: c is %dx%d, want %dx%d: %w", c.Rows, c.Cols, a.Rows, b.Cols, ErrDimensionMismatch)
	}

	for i := range c.Data {
		c.Data[i] = 0
	}
	for i := 0; i < a.Rows; i++ {
		arow := a.Row(i)
		crow := c.Row(i)
		for k := 0; k < a.Cols; k++ {
			field.MulXorBytes(crow, b.Row(k), arow[k])
		}
	}

	return nil
}

// MulParallel computes c = a*b like Mul, but partitions b's (and c's)
// columns into up to workers roughly-equal column slabs and multiplies
// each slab concurrently. a is shared read-only across workers; each
// worker only ever reads its own slab of b and writes its own slab of c,
// so no synchronization beyond the final join is required. Output is
// bit-identical to Mul for the same inputs.
//
// workers <= 0 is treated as DefaultWorkers; workers is clamped to
// b.Cols (there is no point starting more workers than output columns).
func MulParallel(c, a, b *Dense, workers int) error {
	if a.Cols != b.Rows {
		return fmt.Errorf("matrix: MulParallel: a is %dx%d, b is %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, ErrDimensionMismatch)
	}
	if c.Rows != a.Rows || c.Cols != b.Cols {
		return fmt.Errorf("matrix: MulParallel: c is %dx%d, want %dx%d: %w", c.Rows, c.Cols, a.Rows, b.Cols, ErrDimensionMismatch)
	}

	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > b.Cols {
		workers = b.Cols
	}
	if workers <= 1 {
		return Mul(c, a, b)
	}

	// Split the m=b.Cols output columns into `workers` slabs, as close to
	// equal as an integer division allows; the first `leftover` slabs
	// absorb one extra column each so every column is covered exactly
	// once.
	base := b.Cols / workers
	leftover := b.Cols - workers*base

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		width := base
		if w < leftover {
			width++
		}
		if width == 0 {
			continue
		}
		lo, hi := start, start+width
		start = hi

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			mulColumnSlab(c, a, b, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return nil
}

// mulColumnSlab computes c[:, lo:hi] = (a*b)[:, lo:hi]. It never touches
// columns outside [lo,hi), so concurrent calls over disjoint ranges need
// no locking.
func mulColumnSlab(c, a, b *Dense, lo, hi int) {
	width := hi - lo
	for i := 0; i < a.Rows; i++ {
		arow := a.Row(i)
		crow := c.Row(i)[lo:hi]
		for j := range crow {
			crow[j] = 0
		}
		for k := 0; k < a.Cols; k++ {
			brow := b.Row(k)[lo : lo+width]
			field.MulXorBytes(crow, brow, arow[k])
		}
	}
}
