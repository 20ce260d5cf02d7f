// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer

// Peek returns the root element without removing it. The second return
// value is false if the buffer is empty.
func (b *Buffer[T]) Peek() (T, bool) {
	if b.used == 0 {
		var zero T
		return zero, false
	}
	return b.storage[0], true
}

// Push adds v to the buffer, growing the storage if necessary.
func (b *Buffer[T]) Push(v T) {
	if b.used == len(b.storage) {
		b.grow(b.used + 1)
	}
	b.storage[b.used] = v
	b.used++
	b.siftUp(b.used - 1)
}

// Pop removes and returns the root element. It panics if the buffer is
// empty; use Extract when emptiness is an expected condition.
func (b *Buffer[T]) Pop() T {
	if b.used == 0 {
		panic("heapbuffer: Pop on an empty buffer")
	}
	n := b.used - 1
	b.swap(0, n)
	v := b.storage[n]
	var zero T
	b.storage[n] = zero
	b.used = n
	b.siftDown(0)
	b.shrink()
	return v
}

// Extract removes and returns the root element. The second return value
// is false if the buffer is empty.
func (b *Buffer[T]) Extract() (T, bool) {
	if b.used == 0 {
		var zero T
		return zero, false
	}
	return b.Pop(), true
}

// PushPop is equivalent to a Push followed by a Pop, but avoids the
// sift-up when v would be popped straight back out: if the buffer is
// empty or v is at least as extreme as the current root, v is returned
// unchanged and the buffer is not modified.
func (b *Buffer[T]) PushPop(v T) T {
	if b.used == 0 || !b.sort(b.storage[0], v) {
		return v
	}
	v, b.storage[0] = b.storage[0], v
	b.siftDown(0)
	return v
}

// Replace swaps v into the root slot and returns the prior root. It
// panics if the buffer is empty. Unlike PushPop the exchange is
// unconditional.
func (b *Buffer[T]) Replace(v T) T {
	if b.used == 0 {
		panic("heapbuffer: Replace on an empty buffer")
	}
	v, b.storage[0] = b.storage[0], v
	b.siftDown(0)
	return v
}

// InsertAt places v at position i, shifting the elements at and after i
// one slot towards the end. i must be in [0, Len()]; inserting at Len()
// is equivalent to Push. An element placed at an arbitrary position can
// break the heap order at multiple unrelated points, so the heap is
// rebuilt in full rather than repaired locally.
func (b *Buffer[T]) InsertAt(i int, v T) {
	if i < 0 || i > b.used {
		panic("heapbuffer: index out of range")
	}
	if i == b.used {
		b.Push(v)
		return
	}
	if b.used == len(b.storage) {
		b.grow(b.used + 1)
	}
	copy(b.storage[i+1:b.used+1], b.storage[i:b.used])
	b.storage[i] = v
	b.used++
	b.heapify()
}

// RemoveAt removes and returns the element at position i, which must be
// in [0, Len()). The last element takes its place and is sifted in
// whichever direction the heap order requires.
func (b *Buffer[T]) RemoveAt(i int) T {
	if i < 0 || i >= b.used {
		panic("heapbuffer: index out of range")
	}
	n := b.used - 1
	v := b.storage[i]
	if i != n {
		b.swap(i, n)
	}
	var zero T
	b.storage[n] = zero
	b.used = n
	if i != n {
		// The replacement's relation to its new neighbourhood is
		// unknown in either direction; at most one of the two sifts
		// moves it.
		if !b.siftDown(i) {
			b.siftUp(i)
		}
	}
	b.shrink()
	return v
}

// At returns the element at position i, which must be in [0, Len()).
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.used {
		panic("heapbuffer: index out of range")
	}
	return b.storage[i]
}

// Set replaces the element at position i with v and restores the heap
// order. A replacement at a fixed position can violate the order in one
// direction only, so a single sift suffices: down if v is no more
// extreme than the value it replaces, up otherwise.
func (b *Buffer[T]) Set(i int, v T) {
	if i < 0 || i >= b.used {
		panic("heapbuffer: index out of range")
	}
	prev := b.storage[i]
	b.storage[i] = v
	if !b.sort(v, prev) {
		b.siftDown(i)
		return
	}
	b.siftUp(i)
}
