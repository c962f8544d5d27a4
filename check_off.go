//go:build !radixheapcheck

package radixheap

// checkInvariants enables internal consistency assertions during
// reorganization. Build with -tags radixheapcheck to turn them on; the
// default build carries no checking cost.
const checkInvariants = false
