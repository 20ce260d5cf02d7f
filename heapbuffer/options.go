// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapbuffer

type options[T any] struct {
	capacity int
	data     []T
	repeated T
	repeat   int
}

// Option represents the options that can be passed to New, NewMin and
// NewMax.
type Option[T any] func(*options[T])

// WithCapacity sets the initial capacity of the buffer. The capacity
// actually allocated is the smallest power of two (minimum 4) that can
// hold n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			panic("heapbuffer: negative capacity")
		}
		o.capacity = n
	}
}

// WithData sets the initial contents of the buffer. The values are
// copied into the buffer's own storage and reordered into heap order.
func WithData[T any](values []T) Option[T] {
	return func(o *options[T]) {
		o.data = values
	}
}

// WithRepeated initializes the buffer with n copies of v.
func WithRepeated[T any](v T, n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			panic("heapbuffer: negative count")
		}
		o.repeated = v
		o.repeat = n
	}
}
