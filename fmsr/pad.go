package fmsr

import "fmt"

// Pad writes the sentinel byte 0x01 at data[size] and zero-fills the rest
// of data. data must already be allocated to length PaddedSize(k, n,
// size); only the first size bytes are assumed meaningful on entry.
func Pad(k, n byte, data []byte, size int) error {
	want := PaddedSize(k, n, size)
	if len(data) != want {
		return fmt.Errorf("fmsr: Pad: data has length %d, want %d", len(data), want)
	}

	data[size] = 1
	for i := size + 1; i < len(data); i++ {
		data[i] = 0
	}

	return nil
}

// Unpad returns the true (pre-padding) length of data, scanning from the
// end for the sentinel 0x01 that Pad wrote. If the final byte is
// non-zero and not the sentinel, the buffer is considered corrupt and
// Unpad returns 0; any non-final non-zero byte found while scanning back
// is trusted to be the sentinel without a value check, since Pad never
// writes anything else there.
func Unpad(data []byte) int {
	n := len(data)
	if n == 0 {
		return 0
	}

	if data[n-1] != 0 {
		if data[n-1] == 1 {
			return n - 1
		}

		return 0
	}

	for idx := n - 2; idx >= 0; idx-- {
		if data[idx] != 0 {
			return idx
		}
	}

	return 0
}
