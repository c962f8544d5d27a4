package bitarray

import (
	"fmt"
	"math/bits"
)

// MaxCapacity is the largest number of bits an Array can hold: one summary
// word fanning out to 64 leaf words.
const MaxCapacity = 64 * 64

// Array is a fixed-capacity bit vector optimized for finding the lowest set
// bit. It is organized as a two-level tree: leaf words pack 64 bits each and
// a single summary word keeps one bit per non-empty leaf, so Set, Clear and
// FindFirst all run in constant time via hardware trailing-zero counts.
//
// Array is not safe for concurrent use.
type Array struct {
	summary uint64
	leaves  []uint64
	n       int
}

// New creates an Array holding capacity bits, all initially clear.
// It panics if capacity is not in (0, MaxCapacity].
func New(capacity int) *Array {
	if capacity <= 0 || capacity > MaxCapacity {
		panic(fmt.Sprintf("bitarray: capacity %d out of range (0, %d]", capacity, MaxCapacity))
	}
	return &Array{
		leaves: make([]uint64, (capacity+63)/64),
		n:      capacity,
	}
}

// Len returns the capacity in bits.
func (a *Array) Len() int { return a.n }

// Set sets bit i.
func (a *Array) Set(i int) {
	a.leaves[i>>6] |= 1 << (uint(i) & 63)
	a.summary |= 1 << uint(i>>6)
}

// Clear clears bit i. The summary bit of the containing leaf is cleared only
// when the leaf becomes empty.
func (a *Array) Clear(i int) {
	w := i >> 6
	a.leaves[w] &^= 1 << (uint(i) & 63)
	if a.leaves[w] == 0 {
		a.summary &^= 1 << uint(w)
	}
}

// Test reports whether bit i is set.
func (a *Array) Test(i int) bool {
	return a.leaves[i>>6]&(1<<(uint(i)&63)) != 0
}

// ClearAll clears every bit.
func (a *Array) ClearAll() {
	a.summary = 0
	for i := range a.leaves {
		a.leaves[i] = 0
	}
}

// Empty reports whether no bit is set.
func (a *Array) Empty() bool { return a.summary == 0 }

// FindFirst returns the smallest index with a set bit. The summary word
// selects the lowest non-empty leaf and the leaf word yields the bit, one
// trailing-zero count each.
//
// The result is undefined if the array is empty.
func (a *Array) FindFirst() int {
	w := bits.TrailingZeros64(a.summary)
	return w<<6 | bits.TrailingZeros64(a.leaves[w])
}

// Count returns the number of set bits.
func (a *Array) Count() int {
	count := 0
	for _, leaf := range a.leaves {
		if leaf != 0 {
			count += bits.OnesCount64(leaf)
		}
	}
	return count
}
