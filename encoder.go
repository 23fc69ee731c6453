package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder maps Symbols to their Huffman codes.
type Encoder struct {
	codes   EncodingTable
	minSize byte
	maxSize byte
}

// NewEncoder is a convenience function that constructs an Encoder for the
// tree rooted at root.
func NewEncoder(root *Node) Encoder {
	var e Encoder
	e.Init(root)
	return e
}

// Init initializes this Encoder from the tree rooted at root.  A nil root
// yields an Encoder that knows no symbols.
func (e *Encoder) Init(root *Node) {
	codes := GenerateTable(root)
	minSize, maxSize := codes.sizeRange()
	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode encodes a Symbol into a Huffman-coded bit string.  Symbols not in
// the code map to the zero Code.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// EncodeAll appends the code for each symbol of input, in order, to a new
// Stream.  It fails with ErrLookup if any symbol has no code, which means
// the Encoder was built for a different input.
func (e Encoder) EncodeAll(input []Symbol) (*Stream, error) {
	s := new(Stream)
	for index, symbol := range input {
		hc, found := e.codes[symbol]
		if !found {
			return nil, fmt.Errorf("%w: symbol %d at index %d", ErrLookup, symbol, index)
		}
		s.Append(hc)
	}
	return s, nil
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// NumSymbols returns the number of symbols that have a code.
func (e Encoder) NumSymbols() int {
	return len(e.codes)
}

// Table returns a copy of the Encoder's code table.  This table can be used
// by Decoder to decode streams on the receiving end.
func (e Encoder) Table() EncodingTable {
	out := make(EncodingTable, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.codes.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
