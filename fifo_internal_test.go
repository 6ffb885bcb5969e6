package bitfifo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitfifo/bitbucket"
)

func TestPopBitBucket_PartialBoundary(t *testing.T) {
	r := require.New(t)

	w1 := ^uint(0) / 3 // 0101...
	w2 := ^uint(0) / 5 // 00110011...
	w3 := uint(0xDEADBEEF)

	f := New()
	f.PushUint(w1, WordBits)
	f.PushUint(w2, WordBits)
	f.PushUint(w3, WordBits)
	f.PushUint(0xA5, 8)
	r.Equal(3, f.Words())
	r.Equal(uint(8), f.incoming.Count)
	r.True(f.outgoing.IsEmpty())

	// Outgoing is empty: exactly one word is dequeued.
	got := f.PopBitBucket(4)
	r.Equal(bitbucket.New(w1>>(WordBits-4), 4), got)
	r.Equal(2, f.Words())
	r.Equal(uint(WordBits-4), f.outgoing.Count)

	// Fewer bits than outgoing holds: the queue is left alone.
	got = f.PopBitBucket(WordBits - 8)
	r.Equal(bitbucket.New(w1>>4, WordBits-8), got)
	r.Equal(2, f.Words())
	r.Equal(uint(4), f.outgoing.Count)

	// More bits than outgoing holds: old outgoing bits on top of the
	// dequeued word's prefix.
	old := f.outgoing
	got = f.PopBitBucket(12)
	r.Equal(1, f.Words())
	r.Equal(bitbucket.New(old.Bits<<8|w2>>(WordBits-8), 12), got)
	r.Equal(uint(WordBits-8), f.outgoing.Count)
	r.Equal(bitbucket.New(w2, WordBits-8), f.outgoing)
}

func TestPopBitBucket_RefillFromIncoming(t *testing.T) {
	r := require.New(t)

	f := New()
	f.PushUint(0x3, 2)
	f.PushUint(0x0, 3)
	r.Equal(0, f.Words())
	r.Equal(uint(5), f.incoming.Count)

	got := f.PopBitBucket(1)
	r.Equal(bitbucket.New(1, 1), got)
	r.True(f.incoming.IsEmpty())
	r.Equal(uint(4), f.outgoing.Count)

	f.PushUint(0x1, 1)
	got = f.PopBitBucket(5)
	r.Equal(bitbucket.New(0x11, 5), got)
	r.Equal(uint(0), f.Count())
}

func TestQuiescentRegisters(t *testing.T) {
	r := require.New(t)

	f := New()
	for i := uint(1); i <= 3*WordBits; i++ {
		f.PushUint(i, i%WordBits+1)
		r.Less(f.incoming.Count, uint(WordBits))
		r.Less(f.outgoing.Count, uint(WordBits))
	}
	for f.Count() > 0 {
		f.PopBitBucket(min(f.Count(), 7))
		r.Less(f.incoming.Count, uint(WordBits))
		r.Less(f.outgoing.Count, uint(WordBits))
	}
}
