package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Decoder implements a table-driven decoder for Huffman codes.  It is the
// alternative to walking the tree: every code and every proper prefix of a
// code has an entry, so bits can be looked up one at a time.
type Decoder struct {
	table   map[Code]decoderData
	codes   EncodingTable
	minSize byte
	maxSize byte
}

// NewDecoder is a convenience function that constructs a Decoder.
func NewDecoder(codes EncodingTable) (Decoder, error) {
	var d Decoder
	err := d.Init(codes)
	return d, err
}

// Init initializes this Decoder from a table of codes, such as the one
// returned by GenerateTable or Encoder.Table.
//
// The codes must be prefix-free: no code may be empty, and no code may be a
// prefix of another.  A table with 0 symbols is permitted and yields a
// Decoder that rejects any non-empty stream.
//
func (d *Decoder) Init(codes EncodingTable) error {
	if len(codes) == 0 {
		*d = Decoder{}
		return nil
	}

	sorted := make(byCode, 0, len(codes))
	for symbol, hc := range codes {
		if symbol < 0 {
			return fmt.Errorf("%w: invalid symbol %d", ErrInvalidStructure, symbol)
		}
		if hc.Size == 0 || hc.Size > MaxCodeSize {
			return fmt.Errorf("%w: symbol %d has invalid code size %d", ErrInvalidStructure, symbol, hc.Size)
		}
		sorted = append(sorted, symbolAndCode{symbol, MakeCode(hc.Size, hc.Bits)})
	}
	sorted.Sort()

	// len(table) is approximately n×log2(n) when filled.
	n := uint64(len(sorted))
	numTableSlots := n * log2uint64(n)

	*d = Decoder{
		table:   make(map[Code]decoderData, numTableSlots),
		codes:   make(EncodingTable, len(sorted)),
		minSize: sorted[0].code.Size,
		maxSize: sorted[len(sorted)-1].code.Size,
	}

	// Shorter codes are inserted first, so a conflict is either a shorter
	// code that is a prefix of this one, or a duplicate of this one.
	for _, item := range sorted {
		if err := checkPrefixFree(d.table, item); err != nil {
			*d = Decoder{}
			return err
		}
		d.codes[item.symbol] = item.code
		fillTable(d.table, item.symbol, item.code)
	}

	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and at
// least (minSize - hc.Size) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size) additional bits will be required.
//
// If the Decode fails due to unreasonable input, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// DecodeStream decodes every symbol in s.  It fails with ErrMalformedStream
// if the bits do not form a sequence of complete codes.  A nil Stream is
// treated as empty.
func (d Decoder) DecodeStream(s *Stream) ([]Symbol, error) {
	if s == nil {
		s = new(Stream)
	}
	var out []Symbol
	if d.minSize != 0 {
		out = make([]Symbol, 0, s.Len()/uint64(d.minSize))
	}

	var hc Code
	r := s.reader()
	for {
		bit, ok := r.readBit()
		if !ok {
			break
		}
		hc.Bits |= uint64(bit) << hc.Size
		hc.Size++

		dd, found := d.table[hc]
		if !found {
			return nil, fmt.Errorf("%w: no code begins with %s (bit %d)", ErrMalformedStream, hc, r.pos-1)
		}
		if dd.symbol != InvalidSymbol {
			out = append(out, dd.symbol)
			hc = Code{}
		}
	}

	if hc.Size != 0 {
		return nil, fmt.Errorf("%w: stream ends inside code %s", ErrMalformedStream, hc)
	}
	return out, nil
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// NumSymbols returns the number of symbols that have a code.
func (d Decoder) NumSymbols() int {
	return len(d.codes)
}

// Table returns a copy of the code table used to initialize this Decoder.
func (d Decoder) Table() EncodingTable {
	out := make(EncodingTable, len(d.codes))
	for symbol, hc := range d.codes {
		out[symbol] = hc
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make([]Code, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	sort.Slice(keys, func(i, j int) bool { return lessCode(keys[i], keys[j]) })
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d Decoder) DebugString() string {
	var sb strings.Builder
	_, _ = d.Dump(&sb)
	return sb.String()
}

// String returns a brief description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", len(d.codes), d.minSize, d.maxSize)
}

// GoString returns a Go expression that rebuilds this Decoder.
func (d Decoder) GoString() string {
	var buf bytes.Buffer
	buf.WriteString("NewDecoder(EncodingTable{")
	for index, symbol := range d.codes.Symbols() {
		if index > 0 {
			buf.WriteByte(',')
		}
		hc := d.codes[symbol]
		fmt.Fprintf(&buf, "%d:MakeCode(%d,%#x)", symbol, hc.Size, hc.Bits)
	}
	buf.WriteString("})")
	return buf.String()
}

// MarshalJSON fulfills json.Marshaler.  The Decoder is represented by its
// code table, as an object mapping each symbol to its code.
func (d Decoder) MarshalJSON() ([]byte, error) {
	codes := d.codes
	if codes == nil {
		codes = EncodingTable{}
	}
	return json.Marshal(map[Symbol]Code(codes))
}

// UnmarshalJSON fulfills json.Unmarshaler.
func (d *Decoder) UnmarshalJSON(raw []byte) error {
	var codes map[Symbol]Code
	if err := json.Unmarshal(raw, &codes); err != nil {
		return err
	}
	return d.Init(EncodingTable(codes))
}

var (
	_ fmt.Stringer     = Decoder{}
	_ fmt.GoStringer   = Decoder{}
	_ json.Marshaler   = Decoder{}
	_ json.Unmarshaler = (*Decoder)(nil)
)

type decoderData struct {
	symbol  Symbol
	minSize byte
	maxSize byte
}

func checkPrefixFree(table map[Code]decoderData, item symbolAndCode) error {
	hc := item.code
	if _, found := table[hc]; found {
		return fmt.Errorf("%w: code %s for symbol %d is already in use", ErrInvalidStructure, hc, item.symbol)
	}
	for size := byte(1); size < hc.Size; size++ {
		prefix := MakeCode(size, hc.Bits)
		if dd, found := table[prefix]; found && dd.symbol != InvalidSymbol {
			return fmt.Errorf("%w: code %s for symbol %d is a prefix of code %s for symbol %d", ErrInvalidStructure, prefix, dd.symbol, hc, item.symbol)
		}
	}
	return nil
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	dd := decoderData{symbol, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For each hc "...xxxa", compute "...xxxA" where A = NOT a.

		bit := uint64(1) << (hc.Size - 1)
		hc.Bits ^= bit

		// Merge the dd's from "...xxxa" (dd) and "...xxxA" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData{InvalidSymbol, dd.minSize, dd.maxSize}
		if ddSibling, found := table[hc]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "...xxxA" to "...xxx".

		hc.Size--
		hc.Bits &^= bit

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}

func lessCode(a, b Code) bool {
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Reversed().Bits < b.Reversed().Bits
}

// type symbolAndCode + type byCode {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byCode []symbolAndCode

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.code != b.code {
		return lessCode(a.code, b.code)
	}
	return a.symbol < b.symbol
}

var _ sort.Interface = byCode(nil)

// }}}
