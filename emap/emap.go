// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emap

import (
	"container/heap"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/set"
)

// Item defines an interface accepted by EMap
type Item interface {
	ID() ids.ID    // unique identifier of the item
	Expiry() int64 // time after which the item can be forgotten
}

// EMap remembers the IDs of items until their expiry passes. It is used to
// reject an item that was already processed while it could still be valid.
type EMap[T Item] struct {
	mu sync.RWMutex

	bh    *bucketHeap
	seen  set.Set[ids.ID]   // IDs currently remembered
	times map[int64]*bucket // expiry -> bucket of IDs
}

// NewEMap returns an empty EMap.
func NewEMap[T Item]() *EMap[T] {
	return &EMap[T]{
		seen:  set.Set[ids.ID]{},
		times: make(map[int64]*bucket),
		bh: &bucketHeap{
			buckets: []*bucket{},
		},
	}
}

// Add remembers every item in [items].
func (e *EMap[T]) Add(items []T) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, item := range items {
		e.add(item.ID(), item.Expiry())
	}
}

// add ignores items with a zero expiry and IDs that are already known.
// Assumes [e.mu] is held.
func (e *EMap[T]) add(id ids.ID, t int64) {
	if t == 0 {
		return
	}
	if e.seen.Contains(id) {
		return
	}
	e.seen.Add(id)

	if b, ok := e.times[t]; ok {
		b.items = append(b.items, id)
		return
	}
	b := &bucket{
		t:     t,
		items: []ids.ID{id},
	}
	e.times[t] = b
	heap.Push(e.bh, b)
}

// SetMin forgets every item expiring before [t] and returns their IDs.
func (e *EMap[T]) SetMin(t int64) []ids.ID {
	e.mu.Lock()
	defer e.mu.Unlock()

	evicted := []ids.ID{}
	for {
		b := e.bh.Peek()
		if b == nil || b.t >= t {
			break
		}
		heap.Pop(e.bh)
		for _, id := range b.items {
			e.seen.Remove(id)
			evicted = append(evicted, id)
		}
		delete(e.times, b.t)
	}
	return evicted
}

// Contains reports whether [id] is remembered.
func (e *EMap[T]) Contains(id ids.ID) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.seen.Contains(id)
}

// Len returns the number of remembered IDs.
func (e *EMap[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.seen.Len()
}
