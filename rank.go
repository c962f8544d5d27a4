package radixheap

import "golang.org/x/exp/constraints"

// rankEncoder maps keys of an integer type K to unsigned ranks so that the
// order of ranks matches the order of keys: x < y implies
// rankOf(x) < rankOf(y). For unsigned key types the mapping is the identity;
// for signed key types it flips the sign bit at the type's width, mapping
// the most negative value to rank 0 and the most positive to the maximum
// rank. keyAt inverts rankOf.
//
// Ranks are carried as uint64 regardless of the key width so that bucket
// arithmetic is uniform across key types; only the low keyBits bits are
// ever non-zero.
type rankEncoder[K constraints.Integer] struct {
	keyBits  uint   // width of K in bits
	signFlip uint64 // sign bit of K's width, zero for unsigned types
	mask     uint64 // low keyBits bits
}

func newRankEncoder[K constraints.Integer]() rankEncoder[K] {
	var width uint
	for v := K(1); v != 0; v <<= 1 {
		width++
	}

	e := rankEncoder[K]{
		keyBits: width,
		mask:    ^uint64(0) >> (64 - width),
	}
	if ^K(0) < 0 { // signed type
		e.signFlip = 1 << (width - 1)
	}
	return e
}

// rankOf returns the rank of k within K's domain.
func (e rankEncoder[K]) rankOf(k K) uint64 {
	return (uint64(k) & e.mask) ^ e.signFlip
}

// keyAt returns the key whose rank is r. It is the inverse of rankOf:
// keyAt(rankOf(k)) == k for every k in K's domain.
func (e rankEncoder[K]) keyAt(r uint64) K {
	return K(r ^ e.signFlip)
}

// maxRank returns the largest rank representable for K.
func (e rankEncoder[K]) maxRank() uint64 { return e.mask }
