// Package bitbucket provides a single-word bit register, the partial-word
// head and tail of a bit fifo.
//
// A BitBucket holds between 0 and shared.WordBits valid bits in the low end
// of a word. Bits enter at the low end and leave from the high end, so the
// earliest-pushed bit is always the most significant valid bit.
package bitbucket

import (
	"strconv"
	"strings"

	"github.com/spacemeshos/bitfifo/shared"
)

// BitBucket is a word-sized register. Only the Count least-significant bits
// of Bits are meaningful; all others are kept zero.
//
// The zero value is an empty register.
type BitBucket struct {
	Bits  uint
	Count uint
}

// New returns a register holding the count low bits of bits.
// Higher bits of bits are dropped.
func New(bits, count uint) BitBucket {
	return BitBucket{
		Bits:  bits & shared.Mask(count),
		Count: count,
	}
}

// Empty returns a register with no bits.
func Empty() BitBucket {
	return BitBucket{}
}

func (b BitBucket) IsEmpty() bool {
	return b.Count == 0
}

// Valid reports whether the register respects its width and mask invariants.
func (b BitBucket) Valid() bool {
	return b.Count <= shared.WordBits && b.Bits&^shared.Mask(b.Count) == 0
}

// MergeLeft appends other's bits below b's bits, keeping at most limit bits.
//
// If all of other fits, taken holds b followed by other and remainder is
// empty. Otherwise taken holds exactly limit bits: all of b followed by the
// high (earliest) bits of other, and remainder holds the rest of other.
//
// limit must not exceed shared.WordBits and b.Count must not exceed limit;
// use PopBits to shrink a register instead.
func (b BitBucket) MergeLeft(other BitBucket, limit uint) (taken, remainder BitBucket) {
	shared.AssertLE(limit, shared.WordBits)
	shared.AssertLE(b.Count, limit)

	total := b.Count + other.Count

	if limit >= total {
		return BitBucket{
			Bits:  (b.Bits << other.Count) | other.Bits,
			Count: total,
		}, Empty()
	}

	tomove := shared.SafeSub(limit, b.Count)
	keep := shared.SafeSub(other.Count, tomove)

	taken = BitBucket{
		Bits:  (b.Bits << tomove) | (other.Bits >> keep),
		Count: limit,
	}
	remainder = BitBucket{
		Bits:  other.Bits & shared.Mask(keep),
		Count: keep,
	}
	return taken, remainder
}

// PopBits removes and returns the count earliest bits of b.
// Popping 0 bits is a no-op returning an empty register.
func (b *BitBucket) PopBits(count uint) BitBucket {
	if count == 0 {
		return Empty()
	}

	keep := shared.SafeSub(b.Count, count)

	result := BitBucket{
		Bits:  b.Bits >> keep,
		Count: count,
	}

	b.Bits &= shared.Mask(keep)
	b.Count = keep

	return result
}

// String renders the valid bits most-significant first, followed by the
// bit count, e.g. "11011/5". An empty register renders as "/0".
func (b BitBucket) String() string {
	var sb strings.Builder
	for i := b.Count; i > 0; i-- {
		if (b.Bits>>(i-1))&1 == 1 {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	sb.WriteString("/")
	sb.WriteString(strconv.FormatUint(uint64(b.Count), 10))
	return sb.String()
}
