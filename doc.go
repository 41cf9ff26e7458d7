// Package vecarray provides Array, a growable sequence container that
// avoids heap allocation while it holds no more than InlineCapacity
// elements.
//
// Array keeps two stores: a fixed block of InlineCapacity slots embedded
// in the struct, and a heap-backed slice for overflow. Up to
// InlineCapacity elements live entirely in the embedded slots, with no
// allocation and no pointer chasing. The first push past that limit spills
// every element into the heap slice, and the operation that shrinks the
// array back to InlineCapacity moves them back and drops the allocation.
// Both transitions preserve element order and cost O(InlineCapacity).
//
// # Quick Start
//
//	a := vecarray.From(1, 2, 3)
//	a.Push(4)                   // still inline, no allocation
//	a.Push(5)                   // spills to the heap store
//	v, ok := a.Pop()            // v == 5; array absorbs back inline
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//	s := a.IntoSlice()          // convert to a plain slice, emptying a
//
// The zero value is an empty array ready for use, so Array embeds cleanly
// in other structs. FromSlice converts a plain slice into an Array without
// copying when the slice is longer than InlineCapacity; IntoSlice is the
// reverse. Array also marshals to and from JSON as a plain array of its
// elements.
//
// # Choosing an access style
//
// Out-of-range indices are reported, not fatal: Get, Ref, Pop, Remove and
// Take return a second boolean result. At is the exception: it mirrors
// ordinary slice indexing and panics on a bad index. Insert clamps its
// index to the end, turning an out-of-range insert into an append.
//
// # Concurrency
//
// An Array is a plain value with no internal locking. One goroutine may
// mutate it at a time; concurrent readers are fine only while no mutation
// is running. Sequences returned by Values, All and Refs read the live
// storage and must not be used across a mutation of the same array.
// Callers that share an Array between goroutines must bring their own
// synchronization.
//
// # Cost model
//
// Workloads that oscillate across the InlineCapacity boundary pay one
// spill and one absorb per crossing, including an allocation per spill.
// That is the designed trade-off, not a defect: the container is meant for
// collections that are usually tiny and only occasionally grow.
package vecarray
