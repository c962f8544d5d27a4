package radixheap

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/amallia/radixheap/internal/bitarray"
)

// PairHeap is a specialization of Heap for values that do not embed their
// key. It avoids redundant key storage: a row-0 bucket holds exactly one key
// value, implied by the bucket index and the insertion limit, so ranks are
// recorded in a parallel sequence only for buckets of higher rows. Use it
// instead of Heap whenever the key is not derivable from the value.
//
// The behavioral contract is identical to Heap.
//
// A PairHeap is not safe for concurrent use.
type PairHeap[K constraints.Integer, V any] struct {
	enc  rankEncoder[K]
	bmap bucketMap

	data   [][]V
	keys   [][]uint64 // parallel ranks, maintained only for buckets >= radix
	mins   []uint64
	filled *bitarray.Array

	size    int
	limit   uint64
	current int
}

// NewPair creates a radix heap over (key, value) pairs with integer key
// type K.
func NewPair[K constraints.Integer, V any](opts ...Option) (*PairHeap[K, V], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	enc := newRankEncoder[K]()
	bmap := newBucketMap(uint64(o.radix), enc.keyBits)

	h := &PairHeap[K, V]{
		enc:    enc,
		bmap:   bmap,
		data:   make([][]V, bmap.count),
		keys:   make([][]uint64, bmap.count),
		mins:   make([]uint64, bmap.count),
		filled: bitarray.New(bmap.count),
	}
	h.initialize()

	return h, nil
}

// Radix returns the configured bucket-hierarchy branching factor.
func (h *PairHeap[K, V]) Radix() uint { return uint(h.bmap.radix) }

// Len returns the number of elements currently stored.
func (h *PairHeap[K, V]) Len() int { return h.size }

// Empty reports whether Len() == 0.
func (h *PairHeap[K, V]) Empty() bool { return h.size == 0 }

// Push inserts a value with the given priority key. The key has to be at
// least as large as the key of the last extracted minimum; pushing a smaller
// key panics.
func (h *PairHeap[K, V]) Push(key K, v V) {
	rank := h.enc.rankOf(key)
	if rank < h.limit {
		panic("radixheap: pushed key below the insertion limit")
	}

	idx := h.bmap.bucketOf(rank, h.limit)

	if len(h.data[idx]) == 0 {
		h.filled.Set(idx)
	}
	h.data[idx] = append(h.data[idx], v)
	if idx >= int(h.bmap.radix) {
		h.keys[idx] = append(h.keys[idx], rank)
	}
	if h.mins[idx] > rank {
		h.mins[idx] = rank
	}

	h.size++
}

// PeekMinKey returns the currently smallest key without raising the
// insertion limit. It panics if the heap is empty.
func (h *PairHeap[K, V]) PeekMinKey() K {
	if h.size == 0 {
		panic("radixheap: PeekMinKey on empty heap")
	}
	return h.enc.keyAt(h.mins[h.filled.FindFirst()])
}

// Top returns the smallest key and its value without removing them.
//
// Top raises the insertion limit to the minimum key; no smaller keys can be
// inserted afterwards. It panics if the heap is empty.
func (h *PairHeap[K, V]) Top() (K, V) {
	h.reorganize()
	b := h.data[h.current]
	return h.enc.keyAt(h.mins[h.current]), b[len(b)-1]
}

// Pop removes and returns the smallest key and its value. Order among
// elements sharing the minimum key is unspecified.
//
// Pop raises the insertion limit to the minimum key; no smaller keys can be
// inserted afterwards. It panics if the heap is empty.
func (h *PairHeap[K, V]) Pop() (K, V) {
	h.reorganize()

	key := h.enc.keyAt(h.mins[h.current])

	b := h.data[h.current]
	v := b[len(b)-1]

	var zero V
	b[len(b)-1] = zero // release the payload reference
	h.data[h.current] = b[:len(b)-1]

	if len(h.data[h.current]) == 0 {
		h.filled.Clear(h.current)
	}
	h.size--

	return key, v
}

// SwapTopBucket exchanges the bucket holding the minimum with the empty
// caller-provided slice, removing all its elements in one O(1) swap. Every
// drained element carries the same minimum key, obtainable from PeekMinKey
// beforehand. Passing a non-empty slice panics.
//
// SwapTopBucket raises the insertion limit to the minimum key; no smaller
// keys can be inserted afterwards. It panics if the heap is empty.
func (h *PairHeap[K, V]) SwapTopBucket(bucket *[]V) {
	if len(*bucket) != 0 {
		panic("radixheap: SwapTopBucket requires an empty exchange bucket")
	}

	h.reorganize()

	// The current bucket is in row 0 and thus carries no parallel ranks.
	h.data[h.current], *bucket = *bucket, h.data[h.current]
	h.filled.Clear(h.current)
	h.size -= len(*bucket)
}

// Clear removes all elements and resets the insertion limit to the minimum
// representable key, making previously forbidden small keys insertable
// again. Bucket storage is retained.
func (h *PairHeap[K, V]) Clear() {
	for i := range h.data {
		clear(h.data[i])
		h.data[i] = h.data[i][:0]
		h.keys[i] = h.keys[i][:0]
	}
	h.initialize()
}

func (h *PairHeap[K, V]) initialize() {
	h.size = 0
	h.limit = 0
	h.current = 0

	for i := range h.mins {
		h.mins[i] = emptyMin
	}
	h.filled.ClearAll()
}

// reorganize establishes the invariant that h.current is a row-0 bucket
// holding the true minimum. Requires a non-empty heap. See Heap.reorganize;
// the only difference is that ranks are read from the parallel key sequence
// instead of being extracted from the values.
func (h *PairHeap[K, V]) reorganize() {
	if h.size == 0 {
		panic("radixheap: heap is empty")
	}

	if checkInvariants {
		total := 0
		for i := range h.data {
			total += len(h.data[i])
		}
		if total != h.size {
			panic(fmt.Sprintf("radixheap: size %d does not match %d stored elements", h.size, total))
		}
	}

	if len(h.data[h.current]) != 0 {
		return
	}

	h.mins[h.current] = emptyMin
	h.filled.Clear(h.current)

	first := h.filled.FindFirst()

	if checkInvariants {
		for i := 0; i < first; i++ {
			if len(h.data[i]) != 0 || h.mins[i] != emptyMin {
				panic(fmt.Sprintf("radixheap: bucket %d below first non-empty %d not empty", i, first))
			}
		}
		if len(h.data[first]) == 0 {
			panic(fmt.Sprintf("radixheap: bucket %d flagged non-empty but has no elements", first))
		}
		for i := int(h.bmap.radix); i <= first; i++ {
			if len(h.data[i]) != len(h.keys[i]) {
				panic(fmt.Sprintf("radixheap: bucket %d has %d values but %d keys", i, len(h.data[i]), len(h.keys[i])))
			}
		}
	}

	if first < int(h.bmap.radix) {
		h.current = first
		return
	}

	if checkInvariants && h.mins[first] <= h.limit {
		panic("radixheap: new insertion limit does not raise the old one")
	}
	h.limit = h.mins[first]

	src := h.data[first]
	srcKeys := h.keys[first]

	var zero V
	for i := range src {
		rank := srcKeys[i]
		idx := h.bmap.bucketOf(rank, h.limit)

		if checkInvariants {
			if rank < h.mins[first] {
				panic("radixheap: element rank below its bucket's cached minimum")
			}
			if idx >= first {
				panic(fmt.Sprintf("radixheap: redistribution did not move element forward (%d -> %d)", first, idx))
			}
		}

		if len(h.data[idx]) == 0 {
			h.filled.Set(idx)
		}
		h.data[idx] = append(h.data[idx], src[i])
		if idx >= int(h.bmap.radix) {
			h.keys[idx] = append(h.keys[idx], rank)
		}
		if h.mins[idx] > rank {
			h.mins[idx] = rank
		}

		src[i] = zero
	}
	h.data[first] = src[:0]
	h.keys[first] = srcKeys[:0]

	h.mins[first] = emptyMin
	h.filled.Clear(first)

	h.current = h.filled.FindFirst()

	if checkInvariants {
		if h.current >= int(h.bmap.radix) {
			panic(fmt.Sprintf("radixheap: reorganize left a coarse current bucket %d", h.current))
		}
		if len(h.data[h.current]) == 0 {
			panic("radixheap: reorganize left an empty current bucket")
		}
		if h.mins[h.current] < h.limit {
			panic("radixheap: current bucket minimum below the insertion limit")
		}
	}
}
