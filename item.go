package bitfifo

// Pushable is implemented by values that can be appended to a Fifo.
type Pushable interface {
	// BitCount returns the number of bits this value occupies.
	BitCount() uint

	// PushInto appends the value, or at most limit bits of it, to f.
	PushInto(f *Fifo, limit Limit)
}

// Poppable is implemented by types that can be decoded from a Fifo.
// Its methods are called on the zero value of T, so they must not depend
// on the receiver.
type Poppable[T any] interface {
	// BitCapacity returns the fixed width of T, or NoLimit for types of
	// variable length.
	BitCapacity() Limit

	// PopFrom decodes a T from at most limit bits at the head of f.
	// It returns the value and the number of bits consumed.
	PopFrom(f *Fifo, limit Limit) (T, uint, error)
}

// Item is a value type that can both ride and be rebuilt from a Fifo.
type Item[T any] interface {
	Pushable
	Poppable[T]
}

// Capacity returns the fixed width of T, or NoLimit.
func Capacity[T Poppable[T]]() Limit {
	var zero T
	return zero.BitCapacity()
}

// Pop decodes a T from the head of f using up to the full capacity of T.
func Pop[T Poppable[T]](f *Fifo) (T, uint, error) {
	return PopLimit[T](f, NoLimit)
}

// PopLimit decodes a T from at most limit bits at the head of f.
func PopLimit[T Poppable[T]](f *Fifo, limit Limit) (T, uint, error) {
	var zero T
	return zero.PopFrom(f, limit)
}

// pushCount is the number of bits x pushes under limit.
func pushCount(x Pushable, limit Limit) uint {
	return limit.Min(x.BitCount())
}

// popCount is the number of bits a T pops from f under limit: bounded by
// what f holds, by the capacity of T and by limit.
func popCount[T Poppable[T]](f *Fifo, limit Limit) uint {
	return limit.Min(Capacity[T]().Min(f.Count()))
}
