package huffman

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Stream is an ordered sequence of bits.  Bits are packed into bytes least
// significant bit first, matching the bit order of Code.
//
// The zero value is an empty Stream ready for use.
type Stream struct {
	buf []byte
	n   uint64
}

// NewStream returns a Stream holding the first n bits of packed.
func NewStream(packed []byte, n uint64) *Stream {
	if uint64(len(packed))*8 < n {
		n = uint64(len(packed)) * 8
	}
	s := &Stream{buf: make([]byte, bytesFor(n)), n: n}
	copy(s.buf, packed)
	s.clearPadding()
	return s
}

// Len returns the number of bits in the stream.
func (s *Stream) Len() uint64 {
	return s.n
}

// AppendBit appends a single bit, which must be 0 or 1.
func (s *Stream) AppendBit(bit uint) {
	if s.n%8 == 0 {
		s.buf = append(s.buf, 0)
	}
	s.buf[s.n/8] |= byte(bit&1) << (s.n % 8)
	s.n++
}

// Append appends every bit of hc, first bit first.
func (s *Stream) Append(hc Code) {
	for i := byte(0); i < hc.Size; i++ {
		s.AppendBit(hc.Bit(i))
	}
}

// AppendUint appends the low width bits of value, least significant first.
func (s *Stream) AppendUint(value uint64, width byte) {
	s.Append(MakeCode(width, value))
}

// Bit returns the i'th bit.  It panics if i >= Len().
func (s *Stream) Bit(i uint64) uint {
	if i >= s.n {
		panic(fmt.Errorf("bit index %d out of range [0, %d)", i, s.n))
	}
	return uint(s.buf[i/8]>>(i%8)) & 1
}

// Bytes returns the packed bits.  Bits past Len() in the last byte are 0.
func (s *Stream) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// String returns the bits as '0' and '1' characters.
func (s *Stream) String() string {
	var sb strings.Builder
	sb.Grow(int(s.n))
	for i := uint64(0); i < s.n; i++ {
		sb.WriteByte('0' + byte(s.Bit(i)))
	}
	return sb.String()
}

// MarshalBinary fulfills encoding.BinaryMarshaler.  The output is the bit
// count as a uvarint, followed by the packed bits.
func (s *Stream) MarshalBinary() ([]byte, error) {
	var tmp [binary.MaxVarintLen64]byte
	k := binary.PutUvarint(tmp[:], s.n)
	out := make([]byte, 0, k+len(s.buf))
	out = append(out, tmp[:k]...)
	out = append(out, s.buf...)
	return out, nil
}

// UnmarshalBinary fulfills encoding.BinaryUnmarshaler.  The data must
// contain exactly the bytes needed for the bit count, and the padding bits
// must be 0.
func (s *Stream) UnmarshalBinary(data []byte) error {
	n, k := binary.Uvarint(data)
	if k <= 0 {
		return fmt.Errorf("%w: invalid bit count", ErrMalformedStream)
	}
	packed := data[k:]
	if n > uint64(len(packed))*8 || uint64(len(packed)) != bytesFor(n) {
		return fmt.Errorf("%w: %d bits need %d bytes, got %d", ErrMalformedStream, n, bytesFor(n), len(packed))
	}
	if rem := n % 8; rem != 0 && packed[len(packed)-1]>>rem != 0 {
		return fmt.Errorf("%w: nonzero padding bits", ErrMalformedStream)
	}
	*s = Stream{buf: make([]byte, len(packed)), n: n}
	copy(s.buf, packed)
	return nil
}

// reader returns a bitReader positioned at the first bit.
func (s *Stream) reader() *bitReader {
	return &bitReader{s: s}
}

func (s *Stream) clearPadding() {
	if rem := s.n % 8; rem != 0 {
		s.buf[len(s.buf)-1] &= byte(1<<rem) - 1
	}
}

func bytesFor(n uint64) uint64 {
	return (n + 7) / 8
}

type bitReader struct {
	s   *Stream
	pos uint64
}

func (r *bitReader) remaining() uint64 {
	return r.s.n - r.pos
}

func (r *bitReader) readBit() (uint, bool) {
	if r.pos >= r.s.n {
		return 0, false
	}
	bit := r.s.Bit(r.pos)
	r.pos++
	return bit, true
}

func (r *bitReader) readUint(width byte) (uint64, bool) {
	if r.remaining() < uint64(width) {
		return 0, false
	}
	var value uint64
	for i := byte(0); i < width; i++ {
		bit, _ := r.readBit()
		value |= uint64(bit) << i
	}
	return value, true
}
