// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer

import (
	"fmt"

	"cloudeng.io/errors"
)

// View passes the live contiguous region to f for read-only use. The
// slice aliases the buffer's storage and must not be retained or
// appended to after f returns; its capacity is clipped to prevent
// appends from reaching the spare slots. Any error from f is returned
// unchanged.
func (b *Buffer[T]) View(f func([]T) error) error {
	return f(b.storage[:b.used:b.used])
}

// Update detaches the buffer's storage and passes the live region to f
// for arbitrary in-place modification; while f runs the buffer itself
// is empty. The modified storage is re-attached with its original
// element count when f returns and the heap is rebuilt unconditionally,
// since arbitrary edits can break the heap order anywhere. The rebuild
// happens even when f returns an error, so the buffer remains usable;
// the error is then propagated. f must not retain the slice beyond the
// call.
func (b *Buffer[T]) Update(f func([]T) error) error {
	storage, used := b.storage, b.used
	b.storage, b.used = nil, 0
	err := f(storage[:used:used])
	b.storage, b.used = storage, used
	b.heapify()
	return err
}

// Validate checks the buffer's internal invariants, returning all of
// the violations found: the element count must not exceed the capacity,
// the capacity must be the convenient power of two and no element may
// sort before its parent. A nil return means the buffer is consistent.
func (b *Buffer[T]) Validate() error {
	errs := errors.M{}
	if b.used > len(b.storage) {
		errs.Append(fmt.Errorf("count %v exceeds capacity %v", b.used, len(b.storage)))
	}
	if c := len(b.storage); c < minCapacity || c&(c-1) != 0 {
		errs.Append(fmt.Errorf("capacity %v is not a power of two >= %v", c, minCapacity))
	}
	n := b.used
	if n > len(b.storage) {
		n = len(b.storage)
	}
	for i := 1; i < n; i++ {
		if p := parent(i); b.less(i, p) {
			errs.Append(fmt.Errorf("heap order violated: [%v] %v sorts before its parent [%v] %v", i, b.storage[i], p, b.storage[p]))
		}
	}
	return errs.Err()
}
