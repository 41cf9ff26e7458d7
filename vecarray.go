package vecarray

import "slices"

// InlineCapacity is the number of elements an Array holds in embedded
// storage before spilling to the heap.
//
// Four slots cover the common tiny-collection cases (short argument lists,
// small result sets) while keeping the struct compact. The constant is a
// build-time decision shared by every instantiation; Go generics cannot
// carry an array length as a type parameter.
const InlineCapacity = 4

// Array is a growable sequence that stores up to InlineCapacity elements
// directly in the struct, avoiding heap allocation for small collections.
// Growing past InlineCapacity transparently spills every element into a
// heap-backed slice; shrinking back to InlineCapacity moves them back into
// the inline slots and releases the heap allocation.
//
// Exactly one store is active at a time. When Len() <= InlineCapacity the
// first Len() inline slots hold the elements in order and the heap slice is
// empty; otherwise the heap slice holds all elements in order and every
// inline slot holds the zero value. Element order is preserved across both
// transitions.
//
// The zero value is an empty array ready for use.
//
// An Array is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize externally. See the package
// documentation.
type Array[T any] struct {
	length int
	inline [InlineCapacity]T
	heap   []T
}

// New returns an empty array. Equivalent to new(Array[T]); provided for
// symmetry with the other constructors.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// Len returns the number of elements held.
func (a *Array[T]) Len() int {
	return a.length
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.length == 0
}

// inlineMode reports whether the inline store is the active one.
func (a *Array[T]) inlineMode() bool {
	return a.length <= InlineCapacity
}

// spill moves every inline element into the heap store, in order, and
// zeroes the vacated slots. The caller is about to grow the array past
// InlineCapacity.
func (a *Array[T]) spill() {
	if len(a.heap) != 0 {
		panic("vecarray: spill while heap store is active")
	}
	if a.length != InlineCapacity {
		panic("vecarray: spill before inline store is full")
	}
	a.heap = append(a.heap, a.inline[:InlineCapacity]...)
	clear(a.inline[:])
}

// absorb moves the remaining heap elements back into the (empty) inline
// slots and releases the heap allocation. The caller has just shrunk the
// array to exactly InlineCapacity.
func (a *Array[T]) absorb() {
	if len(a.heap) != InlineCapacity {
		panic("vecarray: absorb with partial heap store")
	}
	copy(a.inline[:], a.heap)
	a.heap = nil
}

// Push appends v to the end of the array.
func (a *Array[T]) Push(v T) {
	switch {
	case a.length == InlineCapacity:
		a.spill()
		a.heap = append(a.heap, v)
	case a.inlineMode():
		a.inline[a.length] = v
	default:
		a.heap = append(a.heap, v)
	}
	a.length++
}

// Append pushes every value, in order.
func (a *Array[T]) Append(values ...T) {
	for _, v := range values {
		a.Push(v)
	}
}

// Insert places v at position i, shifting later elements one slot to the
// right. The index is clamped to [0, Len()]: inserting past the end is an
// append, since position Len() is still a legal insert target and the
// caller's value is still placed. Remove, by contrast, reports absence for
// out-of-range indices, because clamping a removal would act on an element
// the caller never named.
func (a *Array[T]) Insert(i int, v T) {
	switch {
	case i < 0:
		i = 0
	case i > a.length:
		i = a.length
	}

	switch {
	case a.length == InlineCapacity:
		a.spill()
		a.heap = slices.Insert(a.heap, i, v)
	case a.inlineMode():
		copy(a.inline[i+1:a.length+1], a.inline[i:a.length])
		a.inline[i] = v
	default:
		a.heap = slices.Insert(a.heap, i, v)
	}
	a.length++
}

// Pop removes and returns the last element. The second return is false
// when the array is empty.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if a.length == 0 {
		return zero, false
	}

	var v T
	if a.inlineMode() {
		v = a.inline[a.length-1]
		a.inline[a.length-1] = zero // release the slot for GC
		a.length--
	} else {
		last := len(a.heap) - 1
		v = a.heap[last]
		a.heap[last] = zero
		a.heap = a.heap[:last]
		a.length--
		if a.length == InlineCapacity {
			a.absorb()
		}
	}

	return v, true
}

// Remove deletes the element at i, shifting later elements one slot to the
// left. It returns the removed element, or false when i is out of range.
func (a *Array[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= a.length {
		return zero, false
	}

	var v T
	if a.inlineMode() {
		v = a.inline[i]
		copy(a.inline[i:a.length-1], a.inline[i+1:a.length])
		a.inline[a.length-1] = zero
		a.length--
	} else {
		v = a.heap[i]
		a.heap = slices.Delete(a.heap, i, i+1)
		a.length--
		if a.length == InlineCapacity {
			a.absorb()
		}
	}

	return v, true
}

// Take replaces the element at i with the zero value of T and returns the
// original. Length and storage mode are unchanged. The second return is
// false when i is out of range.
func (a *Array[T]) Take(i int) (T, bool) {
	var zero T
	if i < 0 || i >= a.length {
		return zero, false
	}

	var v T
	if a.inlineMode() {
		v, a.inline[i] = a.inline[i], zero
	} else {
		v, a.heap[i] = a.heap[i], zero
	}

	return v, true
}

// Clear removes every element, zeroing the live inline slots and releasing
// the heap allocation if one is held. The array is left in inline mode,
// indistinguishable from a freshly constructed one.
func (a *Array[T]) Clear() {
	if a.inlineMode() {
		clear(a.inline[:a.length])
	} else {
		a.heap = nil
	}
	a.length = 0
}

// Transfer moves the entire contents into dest, discarding whatever dest
// held. The receiver is left empty; dest ends up with the receiver's prior
// elements, order and storage mode included. The heap allocation, when
// active, is handed over rather than copied. Transferring an array into
// itself is a no-op.
func (a *Array[T]) Transfer(dest *Array[T]) {
	if dest == a {
		return
	}

	dest.Clear()
	if a.inlineMode() {
		copy(dest.inline[:], a.inline[:a.length])
		clear(a.inline[:a.length])
	} else {
		dest.heap = a.heap
		a.heap = nil
	}
	dest.length = a.length
	a.length = 0
}
