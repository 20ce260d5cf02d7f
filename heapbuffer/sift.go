// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (2 * i) + 1 }
func right(i int) int  { return (2 * i) + 2 }

func (b *Buffer[T]) less(i, j int) bool {
	return b.sort(b.storage[i], b.storage[j])
}

func (b *Buffer[T]) swap(i, j int) {
	b.storage[i], b.storage[j] = b.storage[j], b.storage[i]
}

// siftUp walks the element at j towards the root until its parent no
// longer sorts after it.
func (b *Buffer[T]) siftUp(j int) {
	for {
		i := parent(j)
		if i == j || !b.less(j, i) {
			break
		}
		b.swap(i, j)
		j = i
	}
}

// siftDown walks the element at i0 towards the leaves, swapping it with
// the more extreme of its children while one of them sorts before it.
// It reports whether the element moved.
func (b *Buffer[T]) siftDown(i0 int) bool {
	i := i0
	n := b.used
	for {
		j1 := left(i)
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := right(i); j2 < n && b.less(j2, j1) {
			j = j2 // right child, only if more extreme than the left
		}
		if !b.less(j, i) {
			break
		}
		b.swap(i, j)
		i = j
	}
	return i > i0
}

// heapify reorders the entire contents into heap order in O(n).
func (b *Buffer[T]) heapify() {
	for i := b.used/2 - 1; i >= 0; i-- {
		b.siftDown(i)
	}
}
