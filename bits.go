package dpll

import "math/bits"

// Popcount returns the number of set bits in w.
func Popcount(w uint64) int {
	return bits.OnesCount64(w)
}

// LSBIndex returns the zero-based position of the least significant set bit
// in w. w must be nonzero.
func LSBIndex(w uint64) int {
	return bits.TrailingZeros64(w)
}
