package bitfifo

// Seq is an ordered sequence of items. Its length is not fixed, so popping
// a Seq without a limit drains the whole fifo.
type Seq[T Item[T]] []T

// SeqOf builds a Seq from its elements.
func SeqOf[T Item[T]](elems ...T) Seq[T] {
	return Seq[T](elems)
}

func (s Seq[T]) BitCount() uint {
	var sum uint
	for _, x := range s {
		sum += x.BitCount()
	}
	return sum
}

// PushInto pushes the elements in order, each bounded by what is left of
// limit, and stops once limit is spent.
func (s Seq[T]) PushInto(f *Fifo, limit Limit) {
	remaining := limit
	for _, x := range s {
		if remaining.Exhausted() {
			break
		}

		sublimit := pushCount(x, remaining)
		x.PushInto(f, Bits(sublimit))
		remaining = remaining.Sub(sublimit)
	}
}

func (Seq[T]) BitCapacity() Limit { return NoLimit }

// PopFrom decodes elements while f holds bits and limit is not spent.
// On a decode error it returns the elements decoded so far, the bits
// consumed including those of the failed element, and the error.
// It also stops at an element that consumes no bits.
func (Seq[T]) PopFrom(f *Fifo, limit Limit) (Seq[T], uint, error) {
	var (
		result    Seq[T]
		count     uint
		remaining = limit
	)

	for f.Count() > 0 && !remaining.Exhausted() {
		sublimit := popCount[T](f, remaining)
		elem, subcount, err := PopLimit[T](f, Bits(sublimit))
		count += subcount
		remaining = remaining.Sub(subcount)
		if err != nil {
			return result, count, err
		}
		if subcount == 0 {
			break
		}
		result = append(result, elem)
	}

	return result, count, nil
}
