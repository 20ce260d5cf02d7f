// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer

import (
	"math"
	"math/bits"
)

// minCapacity is the smallest storage allocation the buffer will make.
const minCapacity = 4

// capacityFor returns the smallest power of two that is at least
// max(n, minCapacity), saturating at the largest int. It panics if n is
// negative.
func capacityFor(n int) int {
	if n < 0 {
		panic("heapbuffer: negative capacity")
	}
	if n <= minCapacity {
		return minCapacity
	}
	c := 1 << bits.Len(uint(n-1))
	if c < 0 {
		// 1 << 63 overflowed.
		return math.MaxInt
	}
	return c
}

// grow reallocates the storage to hold at least n elements, moving the
// live elements into the new block in their existing order.
func (b *Buffer[T]) grow(n int) {
	s := make([]T, capacityFor(n))
	copy(s, b.storage[:b.used])
	b.storage = s
}

// shrink reallocates the storage down to the convenient capacity for the
// current element count if that is smaller than the current capacity.
// It is called after every removal so that memory in use remains
// proportional to the number of live elements.
func (b *Buffer[T]) shrink() {
	if c := capacityFor(b.used); c < len(b.storage) {
		s := make([]T, c)
		copy(s, b.storage[:b.used])
		b.storage = s
	}
}

// ReserveCapacity ensures that at least n more elements can be added
// without a reallocation. It is a no-op if that many free slots already
// exist.
func (b *Buffer[T]) ReserveCapacity(n int) {
	if n < 0 {
		panic("heapbuffer: negative capacity")
	}
	if len(b.storage)-b.used >= n {
		return
	}
	b.grow(b.used + n)
}
