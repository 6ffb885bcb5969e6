package bitfifo

import (
	"strconv"

	"github.com/spacemeshos/bitfifo/shared"
)

// Limit is an optional cap, in bits, on how much a push or pop may move.
// The zero value, NoLimit, leaves the operation unbounded.
type Limit struct {
	bits uint
	set  bool
}

// NoLimit is the absent limit.
var NoLimit = Limit{}

// Bits returns a limit of n bits.
func Bits(n uint) Limit {
	return Limit{bits: n, set: true}
}

// Get returns the limit and whether one is set.
func (l Limit) Get() (uint, bool) {
	return l.bits, l.set
}

// Min returns n capped by the limit.
func (l Limit) Min(n uint) uint {
	if !l.set {
		return n
	}
	return shared.Min(n, l.bits)
}

// Sub returns the limit left after spending n bits. NoLimit stays NoLimit.
func (l Limit) Sub(n uint) Limit {
	if !l.set {
		return l
	}
	return Bits(shared.SafeSub(l.bits, n))
}

// Exhausted reports whether a limit is set and has no bits left.
func (l Limit) Exhausted() bool {
	return l.set && l.bits == 0
}

func (l Limit) String() string {
	if !l.set {
		return "none"
	}
	return strconv.FormatUint(uint64(l.bits), 10)
}
