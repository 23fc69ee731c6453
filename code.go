package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"strings"
)

// MaxCodeSize is the longest Code that can be represented.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits & mask(size)}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// ParseCode parses a string of '0' and '1' characters, first bit first.
func ParseCode(s string) (Code, error) {
	if len(s) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is too long: got %d bits, max %d", s, len(s), MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			hc.Bits |= uint64(1) << uint(i)
		default:
			return Code{}, fmt.Errorf("code %q contains invalid character %q", s, s[i])
		}
	}
	hc.Size = byte(len(s))
	return hc, nil
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>i) & 1
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// HasPrefix returns true iff prefix is a (possibly improper) prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits&mask(prefix.Size) == prefix.Bits
}

// Digits returns the bits of this Code as '0' and '1' characters, first bit
// first.
func (hc Code) Digits() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

// MarshalText fulfills encoding.TextMarshaler.
func (hc Code) MarshalText() ([]byte, error) {
	return []byte(hc.Digits()), nil
}

// UnmarshalText fulfills encoding.TextUnmarshaler.
func (hc *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*hc = parsed
	return nil
}

var _ fmt.Stringer = Code{}

func mask(size byte) uint64 {
	if size >= MaxCodeSize {
		return ^uint64(0)
	}
	return (uint64(1) << size) - 1
}

func reverseBits(size byte, bits uint64) uint64 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse64(bits) >> (MaxCodeSize - size)
}
