// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

// Package fifocache provides a bounded, concurrency-safe membership set
// with first-in-first-out eviction.
//
// The JID layer uses one cache per address component (node, domain,
// resource) to remember strings that are known fixed points of string
// preparation, so that repeated construction of common addresses skips
// the expensive profile application. Eviction is deliberately FIFO
// rather than LRU: membership probes are far more frequent than
// inserts, and recording access order on every probe would put a write
// on the hot path.
package fifocache

import "sync"

// Cache is a bounded set of values with FIFO eviction. The zero value
// is not usable; construct with New.
//
// All methods are safe for concurrent use. A single mutex guards the
// membership map and the insertion-order queue; no lock is ever held
// across calls outside the package.
type Cache[T comparable] struct {
	mu       sync.Mutex
	capacity int
	members  map[T]struct{}

	// queue records insertion order. Each current member appears
	// exactly once: values are appended only on first insert and
	// removed only when evicted. head indexes the oldest live entry.
	queue []T
	head  int
}

// New constructs a cache that holds at most capacity values.
// Panics if capacity is not positive.
func New[T comparable](capacity int) *Cache[T] {
	if capacity < 1 {
		panic("fifocache: capacity must be positive")
	}
	return &Cache[T]{
		capacity: capacity,
		members:  make(map[T]struct{}, capacity),
	}
}

// Put inserts value if it is not already present. Inserting an existing
// value is a no-op: it does not refresh the value's position in the
// eviction order. When an insert pushes the set over capacity, the
// oldest-inserted values are evicted until the set fits again.
func (c *Cache[T]) Put(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.members[value]; ok {
		return
	}
	c.members[value] = struct{}{}
	c.queue = append(c.queue, value)

	for len(c.members) > c.capacity {
		oldest := c.queue[c.head]
		var zero T
		c.queue[c.head] = zero
		c.head++
		delete(c.members, oldest)
	}

	// Compact the queue once the consumed prefix dominates, so the
	// backing array does not grow without bound under churn.
	if c.head > len(c.queue)/2 {
		c.queue = append(c.queue[:0], c.queue[c.head:]...)
		c.head = 0
	}
}

// Contains reports whether value is currently in the set.
func (c *Cache[T]) Contains(value T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.members[value]
	return ok
}

// Len returns the number of values currently in the set.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.members)
}

// Capacity returns the maximum number of values the set can hold.
func (c *Cache[T]) Capacity() int {
	return c.capacity
}
