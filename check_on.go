//go:build radixheapcheck

package radixheap

const checkInvariants = true
