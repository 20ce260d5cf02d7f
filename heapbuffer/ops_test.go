// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer_test

import (
	"reflect"
	"sort"
	"testing"

	"cloudeng.io/container/heapbuffer"
)

func newMaxWith(t *testing.T, vals []int) *heapbuffer.Buffer[int] {
	t.Helper()
	b := heapbuffer.NewMax[int]()
	for _, v := range vals {
		b.Push(v)
		validate(t, b)
	}
	return b
}

func TestPeekExtractEmpty(t *testing.T) {
	b := heapbuffer.NewMax[int]()
	if _, ok := b.Peek(); ok {
		t.Errorf("expected no root element")
	}
	if _, ok := b.Extract(); ok {
		t.Errorf("expected no root element")
	}
	expectPanic(t, "empty pop", func() { b.Pop() })
	expectPanic(t, "empty replace", func() { b.Replace(0) })
}

func TestPushPop(t *testing.T) {
	b := newMaxWith(t, []int{1, 2, 3, 4, 5})

	// 6 sorts before the current root and so would be popped straight
	// back out: returned unchanged, buffer untouched.
	if got, want := b.PushPop(6), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if v, _ := b.Peek(); v != 5 {
		t.Errorf("got %v, want %v", v, 5)
	}
	if got, want := b.Len(), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	validate(t, b)

	// 0 enters the buffer and the prior root comes out.
	if got, want := b.PushPop(0), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if v, _ := b.Peek(); v != 4 {
		t.Errorf("got %v, want %v", v, 4)
	}
	if got, want := b.Len(), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	validate(t, b)

	if got, want := drain(t, b), []int{4, 3, 2, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// On an empty buffer PushPop is the identity.
	if got, want := b.PushPop(3), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReplace(t *testing.T) {
	b := newMaxWith(t, []int{1, 2, 3, 4, 5})
	// Unlike PushPop, the exchange happens even when the new value
	// sorts before the root.
	if got, want := b.Replace(6), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	validate(t, b)
	if got, want := b.Replace(0), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	validate(t, b)
	if got, want := drain(t, b), []int{4, 3, 2, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInsertAt(t *testing.T) {
	b := heapbuffer.NewMin[int]()
	for i, v := range uniformRand(0x517, 33) {
		b.InsertAt(i%(b.Len()+1), v)
		validate(t, b)
	}
	if got, want := b.Len(), 33; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Inserting at Len() is Push.
	b = heapbuffer.NewMin(heapbuffer.WithData(ascending(4)))
	b.InsertAt(4, -1)
	validate(t, b)
	if v, _ := b.Peek(); v != -1 {
		t.Errorf("got %v, want %v", v, -1)
	}
	if got, want := b.Cap(), 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	expectPanic(t, "index past end", func() { b.InsertAt(b.Len()+1, 0) })
	expectPanic(t, "negative index", func() { b.InsertAt(-1, 0) })
}

func TestRemoveAt(t *testing.T) {
	vals := uniformRand(0x9e3, 65)
	b := heapbuffer.NewMin(heapbuffer.WithData(vals))
	validate(t, b)

	var removed []int
	rm := func(i int) {
		t.Helper()
		want := b.At(i)
		n := b.Len()
		if got := b.RemoveAt(i); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := b.Len(), n-1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		validate(t, b)
		removed = append(removed, want)
	}
	rm(b.Len() - 1) // last live index: removed without any sifting
	rm(0)
	rm(b.Len() / 2)
	for !b.IsEmpty() {
		rm(b.Len() % 7 * b.Len() / 7)
	}

	sort.Ints(vals)
	sort.Ints(removed)
	if got, want := removed, vals; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	expectPanic(t, "empty remove", func() { b.RemoveAt(0) })
}

func TestSet(t *testing.T) {
	// Pushing descending values into a max buffer never sifts, so the
	// storage order is known: 14, 13, ..., 0.
	b := newMaxWith(t, descending(15))
	// A leaf promoted above everything must sift up to the root.
	b.Set(b.Len()-1, 100)
	validate(t, b)
	if v, _ := b.Peek(); v != 100 {
		t.Errorf("got %v, want %v", v, 100)
	}
	// A demoted root must sift down.
	b.Set(0, -1)
	validate(t, b)
	if v, _ := b.Peek(); v != 14 {
		t.Errorf("got %v, want %v", v, 14)
	}
	// Replacing with an equal value leaves the arrangement valid.
	b.Set(3, b.At(3))
	validate(t, b)

	expectPanic(t, "index past end", func() { b.Set(b.Len(), 0) })
	expectPanic(t, "negative index", func() { b.At(-1) })
}
