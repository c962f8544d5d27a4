package radixheap

import (
	"container/heap"
	"math/rand"
	"testing"
)

const benchSize = 1 << 14

func benchKeys() []uint64 {
	rng := rand.New(rand.NewSource(23))
	keys := make([]uint64, benchSize)
	for i := range keys {
		keys[i] = rng.Uint64()
	}
	return keys
}

func BenchmarkHeap_Push(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h, _ := New(identity[uint64])
		for _, k := range keys {
			h.Push(k)
		}
	}
}

func BenchmarkHeap_PushPop(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h, _ := New(identity[uint64])
		for _, k := range keys {
			h.Push(k)
		}
		for !h.Empty() {
			_ = h.Pop()
		}
	}
}

func BenchmarkPairHeap_PushPop(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h, _ := NewPair[uint64, uint64]()
		for _, k := range keys {
			h.Push(k, k)
		}
		for !h.Empty() {
			_, _ = h.Pop()
		}
	}
}

// uint64Heap is a plain container/heap baseline for comparison.
type uint64Heap []uint64

func (h uint64Heap) Len() int           { return len(h) }
func (h uint64Heap) Less(i, j int) bool { return h[i] < h[j] }
func (h uint64Heap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *uint64Heap) Push(x any)        { *h = append(*h, x.(uint64)) }
func (h *uint64Heap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func BenchmarkStdlibHeap_PushPop(b *testing.B) {
	keys := benchKeys()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h := make(uint64Heap, 0, benchSize)
		for _, k := range keys {
			heap.Push(&h, k)
		}
		for h.Len() > 0 {
			_ = heap.Pop(&h)
		}
	}
}
