package huffman

import (
	"fmt"
	"unicode/utf8"
)

// Encode builds the Huffman tree for input and encodes input with it.  It
// returns the encoded Stream together with the tree's root, which is needed
// to decode the Stream.
//
// Empty input fails with ErrEmptyInput.
//
func Encode(input []Symbol) (*Stream, *Node, error) {
	root, err := BuildTree(CountFrequencies(input))
	if err != nil {
		return nil, nil, err
	}

	s, err := NewEncoder(root).EncodeAll(input)
	if err != nil {
		return nil, nil, err
	}
	return s, root, nil
}

// Decode is the inverse of Encode.  It walks the tree from root, taking the
// left child for each 0 bit and the right child for each 1 bit, and emits a
// symbol every time it reaches a leaf.
//
// It fails with ErrMalformedStream if the stream ends between leaves or
// contains a bit that no code starts with, and with ErrInvalidStructure if
// an internal node is missing a child that the stream asks for.  A nil
// Stream is treated as empty.
//
func Decode(s *Stream, root *Node) ([]Symbol, error) {
	if s == nil {
		s = new(Stream)
	}
	if root == nil {
		if s.Len() != 0 {
			return nil, fmt.Errorf("%w: %d bits but no tree", ErrMalformedStream, s.Len())
		}
		return nil, nil
	}

	// A lone leaf has the code "0".
	if root.IsLeaf() {
		out := make([]Symbol, 0, s.Len())
		for i := uint64(0); i < s.Len(); i++ {
			if s.Bit(i) != 0 {
				return nil, fmt.Errorf("%w: bit %d is 1 but the only code is \"0\"", ErrMalformedStream, i)
			}
			out = append(out, root.symbol)
		}
		return out, nil
	}

	var out []Symbol
	n := root
	r := s.reader()
	for {
		bit, ok := r.readBit()
		if !ok {
			break
		}
		child := n.Child(bit)
		if child == nil {
			return nil, fmt.Errorf("%w: internal node has no child for bit %d (stream bit %d)", ErrInvalidStructure, bit, r.pos-1)
		}
		n = child
		if n.IsLeaf() {
			out = append(out, n.symbol)
			n = root
		}
	}

	if n != root {
		return nil, fmt.Errorf("%w: stream ends inside a code", ErrMalformedStream)
	}
	return out, nil
}

// EncodeString is Encode for the runes of a string.  Strings that are not
// valid UTF-8 fail with ErrInvalidUTF8, since their runes would not decode
// back to the same bytes.
func EncodeString(input string) (*Stream, *Node, error) {
	if !utf8.ValidString(input) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidUTF8, input)
	}
	return Encode(SymbolsFromString(input))
}

// EncodeBytes is Encode for the bytes of a byte string.
func EncodeBytes(input []byte) (*Stream, *Node, error) {
	return Encode(SymbolsFromBytes(input))
}

// DecodeBytes is Decode for streams produced by EncodeBytes.  It fails with
// ErrInvalidStructure if the tree holds a symbol larger than a byte.
func DecodeBytes(s *Stream, root *Node) ([]byte, error) {
	symbols, err := Decode(s, root)
	if err != nil {
		return nil, err
	}
	out, ok := SymbolsToBytes(symbols)
	if !ok {
		return nil, fmt.Errorf("%w: tree holds symbols that are not bytes", ErrInvalidStructure)
	}
	return out, nil
}

// DecodeString is Decode for streams produced by EncodeString.
func DecodeString(s *Stream, root *Node) (string, error) {
	symbols, err := Decode(s, root)
	if err != nil {
		return "", err
	}
	return SymbolsToString(symbols), nil
}
