package huffman

import (
	"fmt"
)

// Stats compares the size of a Huffman-coded input against a fixed-width
// code for the same alphabet.
type Stats struct {
	// Symbols is the length of the input.
	Symbols uint64

	// Distinct is the number of distinct symbols in the input.
	Distinct int

	// EncodedBits is the sum of frequency × code size over all symbols.
	EncodedBits uint64

	// FixedWidthBits is ceil(log2(Distinct)) × Symbols, with a width of at
	// least 1 bit.
	FixedWidthBits uint64
}

// MakeStats computes the Stats for input with the given frequencies, coded
// with the given table.
func MakeStats(freq FrequencyTable, table EncodingTable) Stats {
	var st Stats
	st.Distinct = len(freq)
	for symbol, count := range freq {
		st.Symbols += count
		st.EncodedBits += count * uint64(table[symbol].Size)
	}
	st.FixedWidthBits = uint64(FixedWidth(len(freq))) * st.Symbols
	return st
}

// FixedWidth returns the number of bits per symbol needed by a fixed-width
// code over an alphabet of the given size.  This is ceil(log2(distinct)),
// except that it never returns less than 1.
func FixedWidth(distinct int) byte {
	if distinct <= 2 {
		return 1
	}
	return byte(log2uint64(uint64(distinct - 1)))
}

// Ratio returns EncodedBits / FixedWidthBits, or 0 for empty input.
func (st Stats) Ratio() float64 {
	if st.FixedWidthBits == 0 {
		return 0
	}
	return float64(st.EncodedBits) / float64(st.FixedWidthBits)
}

// Saved returns the number of bits saved relative to the fixed-width code.
func (st Stats) Saved() int64 {
	return int64(st.FixedWidthBits) - int64(st.EncodedBits)
}

// String returns a one-line summary of these Stats.
func (st Stats) String() string {
	return fmt.Sprintf("%d symbols (%d distinct): %d bits vs %d bits fixed-width (%.3f)",
		st.Symbols, st.Distinct, st.EncodedBits, st.FixedWidthBits, st.Ratio())
}

var _ fmt.Stringer = Stats{}
