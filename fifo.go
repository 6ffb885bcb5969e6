// Package bitfifo implements a first-in first-out queue of bits.
//
// Values of arbitrary, possibly non-byte-aligned, widths are pushed at the
// tail and popped at the head in the exact order they were pushed, while the
// data is stored packed into machine words. A Fifo is made of an incoming
// register (tail), a queue of full words (middle) and an outgoing register
// (head). Neither register holds a full word between calls.
//
// Raw access moves at most shared.WordBits bits per call. Typed access goes
// through the Item protocol (see item.go).
//
// A Fifo is not safe for concurrent use.
package bitfifo

import (
	"go.uber.org/zap"

	"github.com/spacemeshos/bitfifo/bitbucket"
	"github.com/spacemeshos/bitfifo/shared"
	"github.com/spacemeshos/bitfifo/wordqueue"
)

// WordBits is the maximum number of bits moved by a single raw push or pop.
const WordBits = shared.WordBits

type BitBucket = bitbucket.BitBucket

type Fifo struct {
	queue    *wordqueue.Queue
	incoming BitBucket
	outgoing BitBucket

	logger *zap.Logger
}

// New returns an empty Fifo.
func New(opts ...OptionFunc) *Fifo {
	options := applyOpts(opts...)
	return &Fifo{
		queue:  wordqueue.New(),
		logger: options.logger,
	}
}

// Count returns the number of bits currently held.
func (f *Fifo) Count() uint {
	return f.outgoing.Count + WordBits*uint(f.queue.Len()) + f.incoming.Count
}

// Words returns the number of full words waiting between the two registers.
func (f *Fifo) Words() int {
	return f.queue.Len()
}

// Reset drops every bit held by the fifo.
func (f *Fifo) Reset() {
	f.queue.Clear()
	f.incoming = bitbucket.Empty()
	f.outgoing = bitbucket.Empty()
}

// PushBitBucket appends the bits of source at the tail.
// source must hold at most WordBits bits.
func (f *Fifo) PushBitBucket(source BitBucket) {
	shared.AssertLE(source.Count, WordBits)
	shared.AssertLE(f.incoming.Count+source.Count, 2*WordBits)

	merged, spill := f.incoming.MergeLeft(source, WordBits)
	if merged.Count == WordBits {
		f.queue.PushBack(merged.Bits)
		f.incoming = spill

		f.logger.Debug("bitfifo: word queued",
			zap.Int("words", f.queue.Len()),
			zap.Uint("incoming", f.incoming.Count),
		)
		return
	}

	f.incoming = merged
}

// PopBitBucket removes and returns the count earliest bits.
// count must not exceed WordBits nor Count().
func (f *Fifo) PopBitBucket(count uint) BitBucket {
	shared.AssertLE(count, WordBits)
	shared.AssertLE(count, f.Count())

	if count <= f.outgoing.Count {
		return f.outgoing.PopBits(count)
	}

	next := f.popInternal()
	result, remainder := f.outgoing.MergeLeft(next, count)
	f.outgoing = remainder

	f.logger.Debug("bitfifo: outgoing refilled",
		zap.Uint("requested", count),
		zap.Uint("outgoing", f.outgoing.Count),
		zap.Int("words", f.queue.Len()),
	)

	return result
}

// popInternal takes the next chunk of bits following the outgoing register:
// the oldest queued word or, when no word is queued, the whole incoming
// register.
func (f *Fifo) popInternal() BitBucket {
	if word, ok := f.queue.PopFront(); ok {
		return BitBucket{Bits: word, Count: WordBits}
	}

	next := f.incoming
	f.incoming = bitbucket.Empty()
	return next
}

// PushUint appends the count low bits of bits.
func (f *Fifo) PushUint(bits, count uint) {
	f.PushBitBucket(bitbucket.New(bits, count))
}

// PopUint removes count bits and returns them right-aligned.
func (f *Fifo) PopUint(count uint) (bits, n uint) {
	bb := f.PopBitBucket(count)
	return bb.Bits, bb.Count
}

// Push appends every bit of x.
func (f *Fifo) Push(x Pushable) {
	x.PushInto(f, NoLimit)
}

// PushLimit appends at most limit bits of x.
func (f *Fifo) PushLimit(x Pushable, limit Limit) {
	x.PushInto(f, limit)
}
