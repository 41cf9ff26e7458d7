package vecarray

import "fmt"

// Get returns a copy of the element at i. The second return is false when
// i is out of range.
func (a *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= a.length {
		var zero T
		return zero, false
	}
	if a.inlineMode() {
		return a.inline[i], true
	}
	return a.heap[i], true
}

// Ref returns a pointer to the element at i for in-place mutation. The
// pointer is valid until the next mutation of the array. The second return
// is false when i is out of range.
func (a *Array[T]) Ref(i int) (*T, bool) {
	if i < 0 || i >= a.length {
		return nil, false
	}
	if a.inlineMode() {
		return &a.inline[i], true
	}
	return &a.heap[i], true
}

// At returns a pointer to the element at i, panicking when i is outside
// [0, Len()). It is the bracket-indexing analogue of Ref: both reads and
// writes go through the returned pointer.
func (a *Array[T]) At(i int) *T {
	p, ok := a.Ref(i)
	if !ok {
		panic(fmt.Sprintf("vecarray: index %d out of range [0, %d)", i, a.length))
	}
	return p
}

// Slice returns the live elements as a view of the active store. The view
// is valid until the next mutation of the array. Its capacity is capped at
// its length, so appending to it never writes into the array's storage.
func (a *Array[T]) Slice() []T {
	if a.inlineMode() {
		return a.inline[:a.length:a.length]
	}
	return a.heap[:a.length:a.length]
}
