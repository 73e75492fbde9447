// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package emap

import (
	"container/heap"

	"github.com/ava-labs/avalanchego/ids"
)

var _ heap.Interface = (*bucketHeap)(nil)

type bucket struct {
	t     int64    // Expiry shared by every item in the bucket
	items []ids.ID // IDs of the items expiring at t
}

// bucketHeap is a min-heap of buckets ordered by expiry.
type bucketHeap struct {
	buckets []*bucket
}

func (bh bucketHeap) Len() int {
	return len(bh.buckets)
}

func (bh bucketHeap) Less(i, j int) bool {
	return bh.buckets[i].t < bh.buckets[j].t
}

func (bh bucketHeap) Swap(i, j int) {
	bh.buckets[i], bh.buckets[j] = bh.buckets[j], bh.buckets[i]
}

// Push panics if [x] is not a *bucket.
func (bh *bucketHeap) Push(x interface{}) {
	bh.buckets = append(bh.buckets, x.(*bucket))
}

func (bh *bucketHeap) Pop() interface{} {
	old := bh.buckets
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	bh.buckets = old[:n-1]
	return b
}

// Peek returns the bucket that expires first, or nil if the heap is empty.
func (bh *bucketHeap) Peek() *bucket {
	if len(bh.buckets) == 0 {
		return nil
	}
	return bh.buckets[0]
}
