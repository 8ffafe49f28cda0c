// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package freelist keeps released objects around for reuse.
package freelist

// Ring is a bounded FIFO of released objects.
// The zero value holds nothing; call Reset to give it a capacity.
type Ring[T any] struct {
	buffer           []T
	capacity, length int
	head, tail       int
}

// Reset drops every parked object and resizes the ring.
func (ring *Ring[T]) Reset(capacity int) {
	ring.capacity = max(capacity, 0)
	ring.length = 0
	ring.head = 0
	ring.tail = 0
	ring.buffer = make([]T, ring.capacity)
}

func (ring *Ring[T]) Len() int {
	return ring.length
}

func (ring *Ring[T]) Cap() int {
	return ring.capacity
}

func (ring *Ring[T]) Full() bool {
	return ring.length == ring.capacity
}

func (ring *Ring[T]) Empty() bool {
	return ring.length == 0
}

// Push parks v. It returns false when the ring is full and v was dropped.
func (ring *Ring[T]) Push(v T) bool {
	if ring.Full() {
		return false
	}

	ring.buffer[ring.tail] = v
	ring.tail = (ring.tail + 1) % ring.capacity
	ring.length++
	return true
}

// Shift takes the oldest parked object.
func (ring *Ring[T]) Shift() (v T, ok bool) {
	if ring.Empty() {
		return
	}

	var zero T
	v = ring.buffer[ring.head]
	ring.buffer[ring.head] = zero
	ring.head = (ring.head + 1) % ring.capacity
	ring.length--
	return v, true
}
