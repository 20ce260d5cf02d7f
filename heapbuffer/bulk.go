// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer

// The bulk operations below change multiple positions at once, which
// makes localized sifting unsound; they all finish with a full rebuild.

// InsertSlice inserts values starting at position i, shifting the
// existing elements at and after i towards the end. i must be in
// [0, Len()].
func (b *Buffer[T]) InsertSlice(i int, values []T) {
	if i < 0 || i > b.used {
		panic("heapbuffer: index out of range")
	}
	if len(values) == 0 {
		return
	}
	total := b.used + len(values)
	if total > len(b.storage) {
		s := make([]T, capacityFor(total))
		copy(s, b.storage[:i])
		copy(s[i:], values)
		copy(s[i+len(values):], b.storage[i:b.used])
		b.storage = s
	} else {
		copy(b.storage[i+len(values):total], b.storage[i:b.used])
		copy(b.storage[i:], values)
	}
	b.used = total
	b.heapify()
}

// RemoveRange removes n contiguous elements starting at position i and
// returns them in their storage order at the time of the call. Removing
// every element is a fast clear that skips the rebuild; keepCapacity
// retains the current allocation instead of shrinking it.
func (b *Buffer[T]) RemoveRange(i, n int, keepCapacity bool) []T {
	if n == 0 {
		if i < 0 || i > b.used {
			panic("heapbuffer: index out of range")
		}
		return nil
	}
	if i < 0 || i >= b.used || n < 0 || n > b.used-i {
		panic("heapbuffer: range out of bounds")
	}
	out := make([]T, n)
	copy(out, b.storage[i:i+n])
	if n == b.used {
		if keepCapacity {
			clear(b.storage[:b.used])
		} else {
			b.storage = make([]T, minCapacity)
		}
		b.used = 0
		return out
	}
	remaining := b.used - n
	if c := capacityFor(remaining); !keepCapacity && c < len(b.storage) {
		s := make([]T, c)
		copy(s, b.storage[:i])
		copy(s[i:], b.storage[i+n:b.used])
		b.storage = s
	} else {
		copy(b.storage[i:], b.storage[i+n:b.used])
		clear(b.storage[remaining:b.used])
	}
	b.used = remaining
	b.heapify()
	return out
}

// ReplaceRange replaces the n elements starting at position i with
// values. An empty values slice degenerates to RemoveRange and n == 0
// degenerates to InsertSlice; the range must lie within [0, Len()].
func (b *Buffer[T]) ReplaceRange(i, n int, values []T) {
	if i < 0 || n < 0 || i > b.used || n > b.used-i {
		panic("heapbuffer: range out of bounds")
	}
	if len(values) == 0 {
		if n > 0 {
			b.RemoveRange(i, n, false)
		}
		return
	}
	if n == 0 {
		b.InsertSlice(i, values)
		return
	}
	total := b.used - n + len(values)
	s := make([]T, capacityFor(total))
	copy(s, b.storage[:i])
	copy(s[i:], values)
	copy(s[i+len(values):], b.storage[i+n:b.used])
	b.storage = s
	b.used = total
	b.heapify()
}
