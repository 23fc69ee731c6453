package huffman

import (
	"fmt"
)

// MarshalTree serializes the tree rooted at root.
//
// The first byte holds the symbol width w, the number of bits needed for the
// largest symbol in the tree.  It is followed by a Stream in the form written
// by Stream.MarshalBinary, holding a pre-order walk of the tree: a 0 bit for
// each internal node, and a 1 bit followed by the w-bit symbol for each leaf.
//
// Weights are not serialized.  A nil root fails with ErrEmptyInput.  Trees
// that UnmarshalTree would reject fail with ErrInvalidStructure: internal
// nodes missing a child, two leaves for the same symbol, or leaves deeper
// than MaxCodeSize.
//
func MarshalTree(root *Node) ([]byte, error) {
	if root == nil {
		return nil, ErrEmptyInput
	}

	maxSymbol := Symbol(0)
	seen := make(map[Symbol]struct{})
	if err := visitLeaves(root, 0, func(n *Node) error {
		if _, dup := seen[n.symbol]; dup {
			return fmt.Errorf("%w: duplicate leaf for symbol %d", ErrInvalidStructure, n.symbol)
		}
		seen[n.symbol] = struct{}{}
		if maxSymbol < n.symbol {
			maxSymbol = n.symbol
		}
		return nil
	}); err != nil {
		return nil, err
	}
	width := symbolWidth(maxSymbol)

	var s Stream
	writeNode(&s, root, width)

	body, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(body))
	out = append(out, width)
	out = append(out, body...)
	return out, nil
}

// UnmarshalTree is the inverse of MarshalTree.  Every node of the result has
// weight 0.
func UnmarshalTree(data []byte) (*Node, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing symbol width", ErrInvalidStructure)
	}
	width := data[0]
	if width == 0 || width > symbolWidth(MaxSymbol) {
		return nil, fmt.Errorf("%w: invalid symbol width %d", ErrInvalidStructure, width)
	}

	var s Stream
	if err := s.UnmarshalBinary(data[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
	}

	tr := treeReader{
		r:     s.reader(),
		width: width,
		seen:  make(map[Symbol]struct{}),
	}
	root, err := tr.readNode(0)
	if err != nil {
		return nil, err
	}
	if rem := tr.r.remaining(); rem != 0 {
		return nil, fmt.Errorf("%w: %d trailing bits after tree", ErrInvalidStructure, rem)
	}
	return root, nil
}

func visitLeaves(n *Node, depth int, fn func(*Node) error) error {
	switch {
	case depth > MaxCodeSize:
		return fmt.Errorf("%w: tree deeper than %d", ErrInvalidStructure, MaxCodeSize)
	case n == nil:
		return fmt.Errorf("%w: internal node is missing a child", ErrInvalidStructure)
	case n.IsLeaf():
		return fn(n)
	default:
		if err := visitLeaves(n.left, depth+1, fn); err != nil {
			return err
		}
		return visitLeaves(n.right, depth+1, fn)
	}
}

func writeNode(s *Stream, n *Node, width byte) {
	if n.IsLeaf() {
		s.AppendBit(1)
		s.AppendUint(uint64(n.symbol), width)
		return
	}
	s.AppendBit(0)
	writeNode(s, n.left, width)
	writeNode(s, n.right, width)
}

type treeReader struct {
	r     *bitReader
	width byte
	seen  map[Symbol]struct{}
}

func (tr *treeReader) readNode(depth int) (*Node, error) {
	if depth > MaxCodeSize {
		return nil, fmt.Errorf("%w: tree deeper than %d", ErrInvalidStructure, MaxCodeSize)
	}

	bit, ok := tr.r.readBit()
	if !ok {
		return nil, fmt.Errorf("%w: truncated tree", ErrInvalidStructure)
	}

	if bit == 1 {
		value, ok := tr.r.readUint(tr.width)
		if !ok {
			return nil, fmt.Errorf("%w: truncated leaf symbol", ErrInvalidStructure)
		}
		symbol := Symbol(value)
		if _, dup := tr.seen[symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate leaf for symbol %d", ErrInvalidStructure, symbol)
		}
		tr.seen[symbol] = struct{}{}
		return NewLeaf(symbol, 0), nil
	}

	left, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := tr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return NewInternal(left, right), nil
}
