package radixheap

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/amallia/radixheap/internal/bitarray"
)

// emptyMin is the cached-minimum sentinel for buckets without elements.
const emptyMin = ^uint64(0)

// Heap is a monotone integer min priority queue, more specifically a
// multi-level radix heap.
//
// Monotone refers to the fact that the heap maintains an insertion limit and
// does not allow the insertion of keys smaller than this limit. The limit is
// raised to the current minimum by Top, Pop and SwapTopBucket; to query the
// smallest key without raising the limit use PeekMinKey.
//
// Keys are obtained from elements through the extraction function supplied
// to New. For elements that do not embed their key, PairHeap stores keys
// more compactly.
//
// Instead of one bucket per key bit the heap keeps ceil(keyBits/log2(radix))
// rows of radix buckets each, which reduces the number of element moves
// during reorganization. Elements are moved at most once per row over their
// lifetime, so Pop costs amortized O(keyBits/log2(radix)) regardless of the
// element count, and Push is O(1).
//
// A Heap is not safe for concurrent use.
type Heap[V any, K constraints.Integer] struct {
	keyOf func(V) K
	enc   rankEncoder[K]
	bmap  bucketMap

	buckets [][]V
	mins    []uint64
	filled  *bitarray.Array

	size    int
	limit   uint64 // insertion limit (ranked); never decreases except in Clear
	current int    // bucket guaranteed to hold the minimum after reorganize
}

// New creates a radix heap over elements of type V whose priority key of
// integer type K is obtained via keyOf.
func New[V any, K constraints.Integer](keyOf func(V) K, opts ...Option) (*Heap[V, K], error) {
	if keyOf == nil {
		return nil, ErrNilKeyFunc
	}

	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	enc := newRankEncoder[K]()
	bmap := newBucketMap(uint64(o.radix), enc.keyBits)

	h := &Heap[V, K]{
		keyOf:   keyOf,
		enc:     enc,
		bmap:    bmap,
		buckets: make([][]V, bmap.count),
		mins:    make([]uint64, bmap.count),
		filled:  bitarray.New(bmap.count),
	}
	h.initialize()

	return h, nil
}

// Radix returns the configured bucket-hierarchy branching factor.
func (h *Heap[V, K]) Radix() uint { return uint(h.bmap.radix) }

// Len returns the number of elements currently stored.
func (h *Heap[V, K]) Len() int { return h.size }

// Empty reports whether Len() == 0.
func (h *Heap[V, K]) Empty() bool { return h.size == 0 }

// Push inserts an element. Its key has to be at least as large as the key of
// the last extracted minimum; pushing a smaller key panics.
func (h *Heap[V, K]) Push(v V) {
	rank := h.enc.rankOf(h.keyOf(v))
	if rank < h.limit {
		panic("radixheap: pushed key below the insertion limit")
	}

	idx := h.bmap.bucketOf(rank, h.limit)

	if len(h.buckets[idx]) == 0 {
		h.filled.Set(idx)
	}
	h.buckets[idx] = append(h.buckets[idx], v)
	if h.mins[idx] > rank {
		h.mins[idx] = rank
	}

	h.size++
}

// PeekMinKey returns the currently smallest key without raising the
// insertion limit. It panics if the heap is empty.
func (h *Heap[V, K]) PeekMinKey() K {
	if h.size == 0 {
		panic("radixheap: PeekMinKey on empty heap")
	}
	return h.enc.keyAt(h.mins[h.filled.FindFirst()])
}

// Top returns the element with the smallest key without removing it.
//
// Top raises the insertion limit to the minimum key; no smaller keys can be
// inserted afterwards. It panics if the heap is empty.
func (h *Heap[V, K]) Top() V {
	h.reorganize()
	b := h.buckets[h.current]
	return b[len(b)-1]
}

// Pop removes and returns an element with the smallest key. Order among
// elements sharing the minimum key is unspecified.
//
// Pop raises the insertion limit to the minimum key; no smaller keys can be
// inserted afterwards. It panics if the heap is empty.
func (h *Heap[V, K]) Pop() V {
	h.reorganize()

	b := h.buckets[h.current]
	v := b[len(b)-1]

	var zero V
	b[len(b)-1] = zero // release the payload reference
	h.buckets[h.current] = b[:len(b)-1]

	if len(h.buckets[h.current]) == 0 {
		h.filled.Clear(h.current)
	}
	h.size--

	return v
}

// SwapTopBucket exchanges the bucket holding the minimum with the empty
// caller-provided slice, removing all its elements in one O(1) swap. Every
// drained element carries the same minimum key. Passing a non-empty slice
// panics.
//
// SwapTopBucket raises the insertion limit to the minimum key; no smaller
// keys can be inserted afterwards. It panics if the heap is empty.
func (h *Heap[V, K]) SwapTopBucket(bucket *[]V) {
	if len(*bucket) != 0 {
		panic("radixheap: SwapTopBucket requires an empty exchange bucket")
	}

	h.reorganize()

	h.buckets[h.current], *bucket = *bucket, h.buckets[h.current]
	h.filled.Clear(h.current)
	h.size -= len(*bucket)
}

// Clear removes all elements and resets the insertion limit to the minimum
// representable key, making previously forbidden small keys insertable
// again. Bucket storage is retained.
func (h *Heap[V, K]) Clear() {
	for i := range h.buckets {
		clear(h.buckets[i])
		h.buckets[i] = h.buckets[i][:0]
	}
	h.initialize()
}

func (h *Heap[V, K]) initialize() {
	h.size = 0
	h.limit = 0
	h.current = 0

	for i := range h.mins {
		h.mins[i] = emptyMin
	}
	h.filled.ClearAll()
}

// reorganize establishes the invariant that h.current is a row-0 bucket
// holding the true minimum. Requires a non-empty heap.
//
// If the tracked bucket still has elements it already holds the minimum and
// nothing happens. Otherwise the lowest non-empty bucket is located via the
// bitmap: a row-0 bucket can be adopted directly, while a coarser bucket is
// drained under an insertion limit raised to its cached minimum. Every
// drained element lands in a strictly smaller bucket index, and the element
// whose rank equals the new limit lands in bucket 0, so a single
// redistribution always exposes a row-0 minimum.
func (h *Heap[V, K]) reorganize() {
	if h.size == 0 {
		panic("radixheap: heap is empty")
	}

	if checkInvariants {
		total := 0
		for i := range h.buckets {
			total += len(h.buckets[i])
		}
		if total != h.size {
			panic(fmt.Sprintf("radixheap: size %d does not match %d stored elements", h.size, total))
		}
	}

	if len(h.buckets[h.current]) != 0 {
		return
	}

	// Mark the exhausted bucket as empty.
	h.mins[h.current] = emptyMin
	h.filled.Clear(h.current)

	first := h.filled.FindFirst()

	if checkInvariants {
		for i := 0; i < first; i++ {
			if len(h.buckets[i]) != 0 || h.mins[i] != emptyMin {
				panic(fmt.Sprintf("radixheap: bucket %d below first non-empty %d not empty", i, first))
			}
		}
		if len(h.buckets[first]) == 0 {
			panic(fmt.Sprintf("radixheap: bucket %d flagged non-empty but has no elements", first))
		}
	}

	if first < int(h.bmap.radix) {
		// A row-0 bucket contains exactly one key value and needs no
		// redistribution.
		h.current = first
		return
	}

	if checkInvariants && h.mins[first] <= h.limit {
		panic("radixheap: new insertion limit does not raise the old one")
	}
	h.limit = h.mins[first]

	src := h.buckets[first]
	var zero V
	for i := range src {
		v := src[i]
		rank := h.enc.rankOf(h.keyOf(v))
		idx := h.bmap.bucketOf(rank, h.limit)

		if checkInvariants {
			if rank < h.mins[first] {
				panic("radixheap: element rank below its bucket's cached minimum")
			}
			if idx >= first {
				panic(fmt.Sprintf("radixheap: redistribution did not move element forward (%d -> %d)", first, idx))
			}
		}

		if len(h.buckets[idx]) == 0 {
			h.filled.Set(idx)
		}
		h.buckets[idx] = append(h.buckets[idx], v)
		if h.mins[idx] > rank {
			h.mins[idx] = rank
		}

		src[i] = zero
	}
	h.buckets[first] = src[:0]

	h.mins[first] = emptyMin
	h.filled.Clear(first)

	h.current = h.filled.FindFirst()

	if checkInvariants {
		if h.current >= int(h.bmap.radix) {
			panic(fmt.Sprintf("radixheap: reorganize left a coarse current bucket %d", h.current))
		}
		if len(h.buckets[h.current]) == 0 {
			panic("radixheap: reorganize left an empty current bucket")
		}
		if h.mins[h.current] < h.limit {
			panic("radixheap: current bucket minimum below the insertion limit")
		}
	}
}
