// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer

// The storage encodes an implicit binary tree with the children of the
// element at i stored at 2i+1 and 2i+2. The traversals below follow
// that shape; each stops at the first visitor error, which is returned
// to the caller unchanged.

// LevelOrder visits the live elements in storage order, which for the
// implicit tree layout is breadth-first order.
func (b *Buffer[T]) LevelOrder(visit func(T) error) error {
	for i := 0; i < b.used; i++ {
		if err := visit(b.storage[i]); err != nil {
			return err
		}
	}
	return nil
}

// PreOrder visits the subtree rooted at position i, each element before
// its children. Pass 0 to visit the entire buffer. Positions at or
// beyond Len() are empty subtrees and visit nothing.
func (b *Buffer[T]) PreOrder(i int, visit func(T) error) error {
	if i < 0 {
		panic("heapbuffer: index out of range")
	}
	if i >= b.used {
		return nil
	}
	if err := visit(b.storage[i]); err != nil {
		return err
	}
	if err := b.PreOrder(left(i), visit); err != nil {
		return err
	}
	return b.PreOrder(right(i), visit)
}

// InOrder visits the subtree rooted at position i, left subtree first,
// then the element, then the right subtree.
func (b *Buffer[T]) InOrder(i int, visit func(T) error) error {
	if i < 0 {
		panic("heapbuffer: index out of range")
	}
	if i >= b.used {
		return nil
	}
	if err := b.InOrder(left(i), visit); err != nil {
		return err
	}
	if err := visit(b.storage[i]); err != nil {
		return err
	}
	return b.InOrder(right(i), visit)
}

// PostOrder visits the subtree rooted at position i, both subtrees
// before the element.
func (b *Buffer[T]) PostOrder(i int, visit func(T) error) error {
	if i < 0 {
		panic("heapbuffer: index out of range")
	}
	if i >= b.used {
		return nil
	}
	if err := b.PostOrder(left(i), visit); err != nil {
		return err
	}
	if err := b.PostOrder(right(i), visit); err != nil {
		return err
	}
	return visit(b.storage[i])
}

// Index returns the position of the first element equal to target in
// the pre-order walk of the subtree rooted at from, or false if there
// is none. Subtrees whose root sorts after target are skipped entirely:
// no element sorts before its ancestors, so target cannot appear below
// such a root.
func Index[T comparable](b *Buffer[T], target T, from int) (int, bool) {
	if from < 0 {
		panic("heapbuffer: index out of range")
	}
	if from >= b.used {
		return 0, false
	}
	if b.sort(target, b.storage[from]) {
		return 0, false
	}
	if b.storage[from] == target {
		return from, true
	}
	if i, ok := Index(b, target, left(from)); ok {
		return i, true
	}
	return Index(b, target, right(from))
}
