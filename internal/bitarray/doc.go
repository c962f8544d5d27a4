// Package bitarray provides a fixed-capacity bit vector optimized to find
// the lowest set bit in constant time.
//
// Architecture:
//   - Two-level design: 64-bit leaf words plus one 64-bit summary word
//   - Summary bit per leaf, set iff the leaf has any bit set
//   - FindFirst descends summary → leaf with two trailing-zero counts
//
// Used internally for:
//   - Tracking which radix-heap buckets are non-empty
//   - Locating the bucket holding the current minimum
package bitarray
