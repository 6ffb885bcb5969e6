package bitfifo

import (
	"github.com/spacemeshos/bitfifo/bitbucket"
	"github.com/spacemeshos/bitfifo/shared"
)

// Bool is a single bit: 0 is false, 1 is true.
type Bool bool

// ParseBool decodes a boolean from a popped pattern.
// Any pattern other than 0 or 1 is a *DecodeError.
func ParseBool(pattern BitBucket) (Bool, error) {
	switch pattern.Bits {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &DecodeError{Type: "bool", Pattern: pattern}
	}
}

func (b Bool) BitCount() uint { return 1 }

func (b Bool) PushInto(f *Fifo, limit Limit) {
	var bits uint
	if b {
		bits = 1
	}
	f.PushUint(bits, pushCount(b, limit))
}

func (Bool) BitCapacity() Limit { return Bits(1) }

func (Bool) PopFrom(f *Fifo, limit Limit) (Bool, uint, error) {
	pattern := f.PopBitBucket(popCount[Bool](f, limit))
	b, err := ParseBool(pattern)
	return b, pattern.Count, err
}

// Uint is a word-sized unsigned integer.
type Uint uint

func (u Uint) BitCount() uint { return WordBits }

func (u Uint) PushInto(f *Fifo, limit Limit) {
	f.PushUint(uint(u), pushCount(u, limit))
}

func (Uint) BitCapacity() Limit { return Bits(WordBits) }

func (Uint) PopFrom(f *Fifo, limit Limit) (Uint, uint, error) {
	bits, n := f.PopUint(popCount[Uint](f, limit))
	return Uint(bits), n, nil
}

// Uint64 is a 64 bit unsigned integer.
type Uint64 uint64

func (u Uint64) BitCount() uint { return 64 }

func (u Uint64) PushInto(f *Fifo, limit Limit) {
	pushWide(f, uint64(u), pushCount(u, limit))
}

func (Uint64) BitCapacity() Limit { return Bits(64) }

func (Uint64) PopFrom(f *Fifo, limit Limit) (Uint64, uint, error) {
	n := popCount[Uint64](f, limit)
	return Uint64(popWide(f, n)), n, nil
}

// Uint32 is a 32 bit unsigned integer.
type Uint32 uint32

func (u Uint32) BitCount() uint { return 32 }

func (u Uint32) PushInto(f *Fifo, limit Limit) {
	f.PushUint(uint(u), pushCount(u, limit))
}

func (Uint32) BitCapacity() Limit { return Bits(32) }

func (Uint32) PopFrom(f *Fifo, limit Limit) (Uint32, uint, error) {
	bits, n := f.PopUint(popCount[Uint32](f, limit))
	return Uint32(bits), n, nil
}

// Uint16 is a 16 bit unsigned integer.
type Uint16 uint16

func (u Uint16) BitCount() uint { return 16 }

func (u Uint16) PushInto(f *Fifo, limit Limit) {
	f.PushUint(uint(u), pushCount(u, limit))
}

func (Uint16) BitCapacity() Limit { return Bits(16) }

func (Uint16) PopFrom(f *Fifo, limit Limit) (Uint16, uint, error) {
	bits, n := f.PopUint(popCount[Uint16](f, limit))
	return Uint16(bits), n, nil
}

// Uint8 is an 8 bit unsigned integer.
type Uint8 uint8

func (u Uint8) BitCount() uint { return 8 }

func (u Uint8) PushInto(f *Fifo, limit Limit) {
	f.PushUint(uint(u), pushCount(u, limit))
}

func (Uint8) BitCapacity() Limit { return Bits(8) }

func (Uint8) PopFrom(f *Fifo, limit Limit) (Uint8, uint, error) {
	bits, n := f.PopUint(popCount[Uint8](f, limit))
	return Uint8(bits), n, nil
}

// Raw is a group of bits passed through as is.
type Raw bitbucket.BitBucket

func (r Raw) BitCount() uint { return r.Count }

// PushInto appends the bits of r. Under a smaller limit only the low limit
// bits are appended, as with integers.
func (r Raw) PushInto(f *Fifo, limit Limit) {
	f.PushUint(r.Bits, pushCount(r, limit))
}

func (Raw) BitCapacity() Limit { return Bits(WordBits) }

func (Raw) PopFrom(f *Fifo, limit Limit) (Raw, uint, error) {
	bb := f.PopBitBucket(popCount[Raw](f, limit))
	return Raw(bb), bb.Count, nil
}

// pushWide appends the n low bits of v, splitting into word-sized pushes
// where a word is narrower than v.
func pushWide(f *Fifo, v uint64, n uint) {
	for n > WordBits {
		n = shared.SafeSub(n, WordBits)
		f.PushUint(uint(v>>n), WordBits)
	}
	f.PushUint(uint(v), n)
}

// popWide pops n bits, at most 64, as a right-aligned integer.
func popWide(f *Fifo, n uint) uint64 {
	var v uint64
	for n > 0 {
		chunk := shared.Min(n, WordBits)
		bits, _ := f.PopUint(chunk)
		v = v<<chunk | uint64(bits)
		n = shared.SafeSub(n, chunk)
	}
	return v
}
