package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when asked to build a code for zero
	// symbols.  There is no Huffman tree for an empty alphabet, so Encode
	// rejects empty input rather than returning an empty Stream.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrTooDeep is returned when a tree would assign some symbol a code
	// longer than MaxCodeSize bits.  BuildTree returns it for heavily
	// skewed frequencies, such as a Fibonacci sequence of 66 or more
	// weights.
	ErrTooDeep = errors.New("huffman: tree deeper than MaxCodeSize")

	// ErrInvalidUTF8 is returned by EncodeString for strings that are not
	// valid UTF-8.  Use EncodeBytes to code arbitrary byte strings.
	ErrInvalidUTF8 = errors.New("huffman: invalid UTF-8")

	// ErrLookup is returned when a symbol has no entry in the code table.
	// It means the table was built for different input.
	ErrLookup = errors.New("huffman: symbol not in code table")

	// ErrMalformedStream is returned when a bit stream cannot be decoded.
	ErrMalformedStream = errors.New("huffman: malformed stream")

	// ErrInvalidStructure is returned when a tree or code table is not a
	// valid prefix-free code.
	ErrInvalidStructure = errors.New("huffman: invalid structure")

	// ErrChecksum is returned by Unpack when the trailing checksum does not
	// match the packed data.
	ErrChecksum = errors.New("huffman: checksum mismatch")
)
