package huffman

import (
	"math"
	"strings"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsFromString returns one Symbol per rune of s.  Each byte of an
// invalid UTF-8 sequence becomes utf8.RuneError.
func SymbolsFromString(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// SymbolsFromBytes returns one Symbol per byte of b.
func SymbolsFromBytes(b []byte) []Symbol {
	out := make([]Symbol, len(b))
	for i, x := range b {
		out[i] = Symbol(x)
	}
	return out
}

// SymbolsToBytes is the inverse of SymbolsFromBytes.  It returns false if any
// symbol does not fit in a byte.
func SymbolsToBytes(symbols []Symbol) ([]byte, bool) {
	out := make([]byte, len(symbols))
	for i, symbol := range symbols {
		if symbol < 0 || symbol > math.MaxUint8 {
			return nil, false
		}
		out[i] = byte(symbol)
	}
	return out, true
}

// SymbolsToString is the inverse of SymbolsFromString for valid UTF-8
// strings.  Each Symbol is written as one rune.
func SymbolsToString(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, symbol := range symbols {
		sb.WriteRune(rune(symbol))
	}
	return sb.String()
}
