// Package radixheap provides a monotone integer min priority queue for Go.
//
// A radix heap extracts elements in non-decreasing key order without
// per-operation comparisons by exploiting the binary digit structure of
// integer keys. Push is O(1) and Pop is amortized O(keyBits/log2(radix)),
// independent of the number of stored elements. The price is monotonicity:
// once a minimum has been extracted, no smaller key may be inserted. This
// restriction is naturally satisfied by shortest-path computation, event
// simulation and similar algorithms that only ever advance a frontier.
//
// # Quick Start
//
// Heap derives keys from elements through an extraction function:
//
//	type task struct {
//		deadline uint32
//		name     string
//	}
//
//	h, _ := radixheap.New(func(t task) uint32 { return t.deadline })
//	h.Push(task{deadline: 30, name: "b"})
//	h.Push(task{deadline: 10, name: "a"})
//	first := h.Pop() // task "a"
//
// PairHeap stores explicit (key, value) pairs and avoids redundant key
// storage for singleton-precision buckets:
//
//	h, _ := radixheap.NewPair[int32, string]()
//	h.Push(-5, "negative")
//	h.Push(7, "positive")
//	key, value := h.Pop() // -5, "negative"
//
// Signed and unsigned fixed-width integer key types are supported alike;
// internally keys are mapped to order-preserving unsigned ranks.
//
// # Bulk Extraction
//
// When many elements share the minimum key, SwapTopBucket removes all of
// them in a single O(1) bucket swap instead of per-element Pop calls.
//
// # Contract Violations
//
// Pushing below the insertion limit, extracting from an empty heap and
// draining into a non-empty bucket are programming errors and panic.
// Internal consistency assertions can additionally be compiled in with
// the radixheapcheck build tag.
//
// Heaps are not safe for concurrent use; callers needing shared access
// must serialize externally.
package radixheap
