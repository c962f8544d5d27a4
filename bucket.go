package radixheap

import "math/bits"

// bucketMap computes which bucket a ranked key belongs to, relative to the
// current insertion limit.
//
// Buckets are organized in rows of radix entries. The row of a key is
// determined by the most significant bit in which it differs from the limit,
// divided by log2(radix); the position within the row is the key's digit at
// that row. Keys equal to the limit map to bucket 0. Row-0 buckets
// (indices 1..radix-1) differ from the limit only below the first digit
// boundary and therefore hold exactly one key value per limit, which is what
// makes them extractable without further redistribution.
type bucketMap struct {
	radix     uint64
	radixBits uint // log2(radix)
	keyBits   uint
	count     int // total number of buckets
}

func newBucketMap(radix uint64, keyBits uint) bucketMap {
	m := bucketMap{
		radix:     radix,
		radixBits: uint(bits.Len64(radix)) - 1,
		keyBits:   keyBits,
	}

	// One bucket per digit value and row, minus the overlap absorbed by
	// lower rows, plus the shared bucket 0. A partial top row contributes
	// one bucket per representable digit.
	m.count = 1
	remaining := keyBits
	for remaining >= m.radixBits {
		m.count += int(radix) - 1
		remaining -= m.radixBits
	}
	m.count += (1 << remaining) - 1

	return m
}

// bucketOf returns the index of the bucket a key of rank x belongs to, given
// the current insertion limit. Requires x >= limit.
func (m bucketMap) bucketOf(x, limit uint64) int {
	diff := x ^ limit
	if diff == 0 {
		return 0
	}

	diffBit := uint(bits.Len64(diff)) - 1

	row := diffBit / m.radixBits
	inRow := ((x >> (m.radixBits * row)) & (m.radix - 1)) - uint64(row)

	return int(uint64(row)*m.radix + inRow)
}

// lowerBound returns the smallest rank bucket idx can hold, assuming an
// insertion limit of zero.
func (m bucketMap) lowerBound(idx int) uint64 {
	if idx < int(m.radix) {
		return uint64(idx)
	}

	row := uint((idx - 1) / (int(m.radix) - 1))
	digit := uint64(idx) - uint64(row)*(m.radix-1)

	return digit << (m.radixBits * row)
}

// upperBound returns the largest rank bucket idx can hold, assuming an
// insertion limit of zero.
func (m bucketMap) upperBound(idx int) uint64 {
	if idx == m.count-1 {
		return ^uint64(0) >> (64 - m.keyBits)
	}
	return m.lowerBound(idx+1) - 1
}
