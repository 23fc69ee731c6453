package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// CountFrequencies returns the FrequencyTable for input.  Empty input yields
// an empty table.
func CountFrequencies(input []Symbol) FrequencyTable {
	freq := make(FrequencyTable)
	for _, symbol := range input {
		assert.Assertf(symbol >= 0, "invalid symbol %d", symbol)
		freq[symbol]++
	}
	return freq
}

// Merge adds the counts from other into this table.  Tables counted over
// disjoint shards of an input merge into the table for the whole input.
func (freq FrequencyTable) Merge(other FrequencyTable) {
	for symbol, count := range other {
		freq[symbol] = addSaturating(freq[symbol], count)
	}
}

// Total returns the sum of all counts.
func (freq FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total += count
	}
	return total
}

// Symbols returns the keys of this table in ascending order.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freq))
	for symbol := range freq {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (freq FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range freq.Symbols() {
		fmt.Fprintf(&buf, "\t%d: %d\n", symbol, freq[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
