package vecarray

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
)

// From builds an array from the given values, pushing each in order.
func From[T any](values ...T) Array[T] {
	var a Array[T]
	a.Append(values...)
	return a
}

// Collect builds an array from an input sequence, pushing each element in
// order.
func Collect[T any](seq iter.Seq[T]) Array[T] {
	var a Array[T]
	for v := range seq {
		a.Push(v)
	}
	return a
}

// FromSlice builds an array that takes ownership of s. When s holds
// InlineCapacity or fewer elements they are copied into the inline slots;
// otherwise s itself becomes the heap store, so the caller must not use s
// afterwards.
func FromSlice[T any](s []T) Array[T] {
	var a Array[T]
	a.length = len(s)
	if len(s) <= InlineCapacity {
		copy(a.inline[:], s)
	} else {
		a.heap = s
	}
	return a
}

// IntoSlice converts the array into a plain slice holding its elements in
// order, leaving the array empty. When the heap store is active it is
// handed over without copying; otherwise the inline elements are moved into
// a fresh allocation (nil for an empty array).
func (a *Array[T]) IntoSlice() []T {
	var s []T
	if a.inlineMode() {
		if a.length > 0 {
			s = append(s, a.inline[:a.length]...)
			clear(a.inline[:a.length])
		}
	} else {
		s = a.heap
		a.heap = nil
	}
	a.length = 0
	return s
}

// Clone returns a copy of the array holding copies of the elements. The
// clone mirrors the source's storage mode: an inline source yields an
// inline clone, a heap source yields a heap clone with its own allocation.
func (a *Array[T]) Clone() Array[T] {
	c := Array[T]{length: a.length}
	if a.inlineMode() {
		c.inline = a.inline
	} else {
		c.heap = slices.Clone(a.heap)
	}
	return c
}

// Equal reports whether a and b hold the same elements in the same order.
// Storage mode is not part of identity: an inline array and a heap array
// with equal elements compare equal.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Hash returns a seeded hash of the live elements, folded in index order.
// Arrays that compare Equal hash identically regardless of storage mode.
func Hash[T comparable](seed maphash.Seed, a *Array[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var buf [8]byte
	for _, v := range a.Slice() {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the live elements in order.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.Slice())
}
