package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// EncodingTable maps each Symbol to its Code.
type EncodingTable map[Symbol]Code

// GenerateTable walks the tree rooted at root and returns the Code for every
// leaf.  Going left appends a 0 bit and going right appends a 1 bit.  A tree
// consisting of a single leaf assigns that leaf the one-bit code "0", since
// an empty code could not be counted or decoded.
//
// A nil root yields an empty table.  The tree must be no deeper than
// MaxCodeSize, which BuildTree and UnmarshalTree guarantee; deeper trees
// assembled by hand with NewInternal are a programming error and panic.
//
func GenerateTable(root *Node) EncodingTable {
	table := make(EncodingTable)
	switch {
	case root == nil:
		// pass
	case root.IsLeaf():
		table[root.symbol] = MakeCode(1, 0)
	default:
		path := make([]byte, 0, MaxCodeSize)
		walkTable(table, root, &path)
	}
	return table
}

// walkTable visits every leaf under n.  The path buffer is shared by the
// whole walk: each level pushes one bit before descending and pops it on
// return, so the buffer is only copied when a leaf is reached.
func walkTable(table EncodingTable, n *Node, path *[]byte) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		table[n.symbol] = codeFromPath(*path)
		return
	}

	*path = append(*path, 0)
	walkTable(table, n.left, path)
	(*path)[len(*path)-1] = 1
	walkTable(table, n.right, path)
	*path = (*path)[:len(*path)-1]
}

func codeFromPath(path []byte) Code {
	assert.Assertf(len(path) <= MaxCodeSize, "code size %d > MaxCodeSize %d", len(path), MaxCodeSize)
	var bits uint64
	for i, bit := range path {
		bits |= uint64(bit) << uint(i)
	}
	return MakeCode(byte(len(path)), bits)
}

// Invert returns the inverse mapping, from Code to Symbol.
func (table EncodingTable) Invert() map[Code]Symbol {
	out := make(map[Code]Symbol, len(table))
	for symbol, hc := range table {
		out[hc] = symbol
	}
	return out
}

// MinSize is the bit length of the shortest code in the table.
func (table EncodingTable) MinSize() byte {
	minSize, _ := table.sizeRange()
	return minSize
}

// MaxSize is the bit length of the longest code in the table.
func (table EncodingTable) MaxSize() byte {
	_, maxSize := table.sizeRange()
	return maxSize
}

func (table EncodingTable) sizeRange() (minSize byte, maxSize byte) {
	first := true
	for _, hc := range table {
		if first {
			minSize, maxSize = hc.Size, hc.Size
			first = false
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}
	return
}

// Symbols returns the keys of this table in ascending order.
func (table EncodingTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table EncodingTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("EncodingTable{\n")
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\t%d: %s\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
