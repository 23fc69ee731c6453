package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A leaf holds exactly one Symbol and no
// children.  An internal node holds no Symbol and two children, and its
// weight is the sum of its children's weights.
//
// Each node is owned by exactly one parent, and trees are never modified
// after they are built.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node
}

// NewLeaf returns a leaf node for the given symbol and weight.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	assert.Assertf(symbol >= 0, "invalid symbol %d", symbol)
	return &Node{symbol: symbol, weight: weight}
}

// NewInternal returns an internal node with the given children.  Either
// child may be nil, but such a tree will be rejected by the decoders.
func NewInternal(left, right *Node) *Node {
	return &Node{
		symbol: InvalidSymbol,
		weight: addSaturating(left.Weight(), right.Weight()),
		left:   left,
		right:  right,
	}
}

// IsLeaf returns true iff this node holds a Symbol.
func (n *Node) IsLeaf() bool {
	return n.symbol >= 0
}

// Symbol returns the leaf's symbol, or InvalidSymbol for internal nodes.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the node's weight.  Trees read back by UnmarshalTree carry
// no weights, so every node reports 0.
func (n *Node) Weight() uint64 {
	if n == nil {
		return 0
	}
	return n.weight
}

// Left returns the child reached by a 0 bit.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit.
func (n *Node) Right() *Node {
	return n.right
}

// Child returns Left() for bit 0 and Right() for bit 1.
func (n *Node) Child(bit uint) *Node {
	if bit == 0 {
		return n.left
	}
	return n.right
}

// Depth returns the length of the longest path from this node to a leaf.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	l, r := n.left.Depth(), n.right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// NumLeaves returns the number of leaves under this node.
func (n *Node) NumLeaves() int {
	switch {
	case n == nil:
		return 0
	case n.IsLeaf():
		return 1
	default:
		return n.left.NumLeaves() + n.right.NumLeaves()
	}
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	dumpNode(&buf, n, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, indent int) {
	for i := 0; i < indent; i++ {
		buf.WriteByte('\t')
	}
	switch {
	case n == nil:
		buf.WriteString("nil\n")
	case n.IsLeaf():
		fmt.Fprintf(buf, "Leaf(%d) weight=%d\n", n.symbol, n.weight)
	default:
		fmt.Fprintf(buf, "Node weight=%d\n", n.weight)
		dumpNode(buf, n.left, indent+1)
		dumpNode(buf, n.right, indent+1)
	}
}

// BuildTree builds the Huffman tree for the given frequencies and returns
// its root.  A table with a single entry yields a single leaf.
//
// Nodes of equal weight are extracted in a fixed order, so the same table
// always yields the same tree: leaves before internal nodes, leaves by
// ascending Symbol, internal nodes by order of creation.
//
// An empty table fails with ErrEmptyInput.  Frequencies so skewed that some
// code would exceed MaxCodeSize bits fail with ErrTooDeep.
//
func BuildTree(freq FrequencyTable) (*Node, error) {
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: build a minheap with one leaf per symbol.  Leaves are
	// ranked 0..n-1 by symbol; internal nodes are ranked n, n+1, ... as
	// they are created.

	symbols := freq.Symbols()
	items := make([]nodeAndOrder, len(symbols))
	for index, symbol := range symbols {
		items[index] = nodeAndOrder{NewLeaf(symbol, freq[symbol]), uint64(index)}
	}

	h := nodeHeap{items}
	h.Init()

	// Step 2: pop the two lightest nodes, combine them into a new internal
	// node, and push it back, until one node remains.

	nextOrder := uint64(len(symbols))
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndOrder)
		b := heap.Pop(&h).(nodeAndOrder)
		heap.Push(&h, nodeAndOrder{NewInternal(a.node, b.node), nextOrder})
		nextOrder++
	}

	root := heap.Pop(&h).(nodeAndOrder).node
	if depth := root.Depth(); depth > MaxCodeSize {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrTooDeep, depth, MaxCodeSize)
	}
	return root, nil
}

func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}

// type nodeAndOrder + type nodeHeap {{{

type nodeAndOrder struct {
	node  *Node
	order uint64
}

type nodeHeap struct {
	list []nodeAndOrder
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndOrder))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndOrder{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
