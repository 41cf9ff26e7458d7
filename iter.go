package vecarray

import "iter"

// Values returns a forward iterator over the live elements in index order,
// reading from whichever store is active. The array must not be mutated
// while the sequence is in use; call Values again for a fresh sequence.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns a forward iterator over index/element pairs, in index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Refs returns a forward iterator over pointers to the live elements,
// allowing each element to be updated in place during traversal. The array
// itself must not be mutated while the sequence is in use.
func (a *Array[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		s := a.Slice()
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// Drain consumes the array and returns an iterator over its elements in
// order. The active store is detached when Drain is called: the array is
// empty from that moment, and the returned sequence owns the detached
// elements, zeroing each slot as it yields it. Breaking out of the
// sequence early discards the remainder.
func (a *Array[T]) Drain() iter.Seq[T] {
	if a.inlineMode() {
		cur := &inlineCursor[T]{limit: a.length}
		copy(cur.slots[:], a.inline[:a.length])
		clear(a.inline[:a.length])
		a.length = 0
		return cur.seq
	}

	s := a.heap
	a.heap = nil
	a.length = 0
	return func(yield func(T) bool) {
		var zero T
		for i := range s {
			v := s[i]
			s[i] = zero
			if !yield(v) {
				return
			}
		}
	}
}

// inlineCursor owns inline slots detached from an Array and yields each
// live slot exactly once, zeroing it as it goes. Slots at or beyond limit
// are never touched.
type inlineCursor[T any] struct {
	slots [InlineCapacity]T
	limit int
	next  int
}

func (c *inlineCursor[T]) seq(yield func(T) bool) {
	var zero T
	for c.next < c.limit {
		v := c.slots[c.next]
		c.slots[c.next] = zero
		c.next++
		if !yield(v) {
			return
		}
	}
}
