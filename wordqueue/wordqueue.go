// Package wordqueue stores full machine words in arrival order.
package wordqueue

import (
	"github.com/gammazero/deque"
)

// Queue is a FIFO of full words backed by a ring buffer.
// It has no notion of bits: every stored word is assumed complete.
type Queue struct {
	words *deque.Deque[uint]
}

func New() *Queue {
	return &Queue{words: deque.New[uint]()}
}

// PushBack appends word at the tail of the queue.
func (q *Queue) PushBack(word uint) {
	q.words.PushBack(word)
}

// PopFront removes and returns the oldest word.
// ok is false when the queue is empty.
func (q *Queue) PopFront() (word uint, ok bool) {
	if q.words.Len() == 0 {
		return 0, false
	}
	return q.words.PopFront(), true
}

// Front returns the oldest word without removing it.
func (q *Queue) Front() (word uint, ok bool) {
	if q.words.Len() == 0 {
		return 0, false
	}
	return q.words.Front(), true
}

func (q *Queue) Len() int {
	return q.words.Len()
}

func (q *Queue) Clear() {
	q.words.Clear()
}
