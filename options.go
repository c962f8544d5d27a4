package radixheap

import "math/bits"

// DefaultRadix is the bucket-hierarchy branching factor used when no
// WithRadix option is given. Eight is a good default for 32- and 64-bit
// keys: few enough rows to keep redistribution cheap, few enough buckets
// to keep the footprint small.
const DefaultRadix = 8

type options struct {
	radix uint
}

// Option configures heap construction.
type Option func(*options)

// WithRadix sets the branching factor of the bucket hierarchy. It has to
// be a power of two between 2 and 64.
//
// A larger radix means fewer rows (elements are redistributed at most once
// per row over their lifetime) at the cost of more buckets per row and
// coarser lazy redistribution.
func WithRadix(radix uint) Option {
	return func(o *options) {
		o.radix = radix
	}
}

func newOptions(opts ...Option) (options, error) {
	o := options{radix: DefaultRadix}
	for _, opt := range opts {
		opt(&o)
	}

	if o.radix < 2 || o.radix > 64 || bits.OnesCount(o.radix) != 1 {
		return options{}, &ErrInvalidRadix{Radix: o.radix}
	}

	return o, nil
}
