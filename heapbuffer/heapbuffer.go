// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heapbuffer provides a growable contiguous buffer whose contents
// are kept in binary heap order under a comparison function supplied at
// construction time. It is intended as the backing store for priority
// queues, schedulers and merge algorithms rather than as an end-user
// collection in its own right. Indices run from 0 to Len(); the element
// at index 0 is always the most extreme under the comparison function.
// The buffer is not safe for concurrent use.
package heapbuffer

// Ordered represents the set of types that have an intrinsic ordering
// and hence can be used with NewMin and NewMax.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Buffer is a contiguous store of elements arranged so that no element
// sorts before its parent under the sort function supplied to New. The
// first Len() slots of the storage hold live elements, the remainder are
// zeroed so that pointer-bearing element types can be GC'd.
type Buffer[T any] struct {
	storage []T // len(storage) is the current capacity.
	used    int // number of live elements, 0 <= used <= len(storage).
	sort    func(a, b T) bool
}

// New creates a new Buffer using sort as its ordering; sort(a, b) must
// implement a strict weak ordering and return true when a should be
// closer to the root than b. New panics if sort is nil.
func New[T any](sort func(a, b T) bool, opts ...Option[T]) *Buffer[T] {
	if sort == nil {
		panic("heapbuffer: nil sort function")
	}
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	b := &Buffer[T]{sort: sort}
	switch {
	case o.data != nil:
		b.storage = make([]T, capacityFor(len(o.data)))
		b.used = copy(b.storage, o.data)
		b.heapify()
	case o.repeat > 0:
		b.storage = make([]T, capacityFor(o.repeat))
		for i := 0; i < o.repeat; i++ {
			b.storage[i] = o.repeated
		}
		// Identical elements trivially satisfy the heap order since
		// sort is irreflexive.
		b.used = o.repeat
	default:
		b.storage = make([]T, capacityFor(o.capacity))
	}
	return b
}

// NewMin creates a Buffer whose root is the smallest element.
func NewMin[T Ordered](opts ...Option[T]) *Buffer[T] {
	return New(func(a, b T) bool { return a < b }, opts...)
}

// NewMax creates a Buffer whose root is the largest element.
func NewMax[T Ordered](opts ...Option[T]) *Buffer[T] {
	return New(func(a, b T) bool { return a > b }, opts...)
}

// Len returns the current number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return b.used
}

// Cap returns the current capacity of the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

// IsEmpty returns true if the buffer contains no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.used == 0
}

// IsFull returns true if an insertion would trigger a reallocation.
func (b *Buffer[T]) IsFull() bool {
	return b.used == len(b.storage)
}

// Copy returns an independent duplicate of the buffer that shares the
// sort function but none of the storage, with room for at least reserve
// additional elements.
func (b *Buffer[T]) Copy(reserve int) *Buffer[T] {
	if reserve < 0 {
		panic("heapbuffer: negative reserve")
	}
	c := &Buffer[T]{
		storage: make([]T, capacityFor(b.used+reserve)),
		sort:    b.sort,
	}
	c.used = copy(c.storage, b.storage[:b.used])
	return c
}
