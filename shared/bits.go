package shared

import "math/bits"

// WordBits is the width of a machine word, the largest number of bits a
// single raw push or pop may move.
const WordBits = bits.UintSize

// Mask returns a word with the n least-significant bits set.
// Mask(WordBits) has all bits set.
func Mask(n uint) uint {
	AssertLE(n, WordBits)
	if n == WordBits {
		return ^uint(0)
	}
	return (1 << n) - 1
}

// NumBits returns the number of bits needed to represent val.
// NumBits(0) is 0.
func NumBits(val uint64) int {
	return bits.Len64(val)
}

func Min(x, y uint) uint {
	if x < y {
		return x
	}
	return y
}
