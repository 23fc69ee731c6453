package huffman

import (
	mathbits "math/bits"
)

func log2uint64(x uint64) uint64 {
	if x == 0 {
		x = 1
	}
	return uint64(64 - mathbits.LeadingZeros64(x))
}

// symbolWidth returns the number of bits needed to hold every symbol up to
// and including max.
func symbolWidth(max Symbol) byte {
	return byte(log2uint64(uint64(max)))
}
