package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Magic is the first 4 bytes of every container written by Pack.
const Magic = "HUF1"

const checksumSize = 8

// Pack encodes input and returns a self-contained byte slice holding both the
// tree and the stream.  The layout is:
//
//     Magic
//     uvarint  length of the tree section
//     tree     (see MarshalTree)
//     stream   (see Stream.MarshalBinary)
//     uint64   xxhash64 of all preceding bytes, little-endian
//
// Empty input fails with ErrEmptyInput.
//
func Pack(input []Symbol) ([]byte, error) {
	s, root, err := Encode(input)
	if err != nil {
		return nil, err
	}
	return PackStream(s, root)
}

// PackStream is Pack for input that has already been encoded.
func PackStream(s *Stream, root *Node) ([]byte, error) {
	tree, err := MarshalTree(root)
	if err != nil {
		return nil, err
	}
	body, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var tmp [binary.MaxVarintLen64]byte
	buf.Grow(len(Magic) + len(tmp) + len(tree) + len(body) + checksumSize)
	buf.WriteString(Magic)
	buf.Write(tmp[:binary.PutUvarint(tmp[:], uint64(len(tree)))])
	buf.Write(tree)
	buf.Write(body)

	var sum [checksumSize]byte
	binary.LittleEndian.PutUint64(sum[:], xxhash.Sum64(buf.Bytes()))
	buf.Write(sum[:])
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack.
func Unpack(data []byte) ([]Symbol, error) {
	s, root, err := UnpackStream(data)
	if err != nil {
		return nil, err
	}
	return Decode(s, root)
}

// UnpackStream is the inverse of PackStream.  It fails with ErrChecksum if the
// data was corrupted, and with ErrMalformedStream or ErrInvalidStructure if
// the framing or its contents are invalid.
func UnpackStream(data []byte) (*Stream, *Node, error) {
	if len(data) < len(Magic)+checksumSize || string(data[:len(Magic)]) != Magic {
		return nil, nil, fmt.Errorf("%w: not a packed Huffman stream", ErrMalformedStream)
	}

	split := len(data) - checksumSize
	payload, sum := data[:split], data[split:]
	if xxhash.Sum64(payload) != binary.LittleEndian.Uint64(sum) {
		return nil, nil, ErrChecksum
	}

	payload = payload[len(Magic):]
	treeLen, k := binary.Uvarint(payload)
	if k <= 0 || treeLen > uint64(len(payload)-k) {
		return nil, nil, fmt.Errorf("%w: invalid tree length", ErrMalformedStream)
	}
	payload = payload[k:]

	root, err := UnmarshalTree(payload[:treeLen])
	if err != nil {
		return nil, nil, err
	}

	s := new(Stream)
	if err := s.UnmarshalBinary(payload[treeLen:]); err != nil {
		return nil, nil, err
	}
	return s, root, nil
}
