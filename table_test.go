package huffman

import (
	"reflect"
	"strings"
	"testing"
)

func TestGenerateTable(t *testing.T) {
	root, err := BuildTree(CountFrequencies(SymbolsFromString("aaabbcd")))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table := GenerateTable(root)

	expectDump := strings.Join([]string{
		"EncodingTable{\n",
		"\t97: \"0\"\n",
		"\t98: \"10\"\n",
		"\t99: \"110\"\n",
		"\t100: \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if table.MinSize() != 1 || table.MaxSize() != 3 {
		t.Errorf("expected sizes 1 .. 3, got %d .. %d", table.MinSize(), table.MaxSize())
	}
}

func TestGenerateTable_SingleLeaf(t *testing.T) {
	table := GenerateTable(NewLeaf('a', 4))
	expect := EncodingTable{'a': MakeCode(1, 0)}
	if !reflect.DeepEqual(expect, table) {
		t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", expect, table)
	}
}

func TestGenerateTable_Nil(t *testing.T) {
	if table := GenerateTable(nil); len(table) != 0 {
		t.Errorf("expected empty table, got %v", table)
	}
}

func TestGenerateTable_PrefixFree(t *testing.T) {
	inputs := []string{
		"aaabbcd",
		"Hello, world!",
		"mississippi river",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			freq := CountFrequencies(SymbolsFromString(input))
			root, err := BuildTree(freq)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			table := GenerateTable(root)

			if len(table) != len(freq) {
				t.Errorf("expected %d codes, got %d", len(freq), len(table))
			}
			for symbol := range freq {
				if _, found := table[symbol]; !found {
					t.Errorf("symbol %d has no code", symbol)
				}
			}

			for a, ca := range table {
				if ca.Size == 0 {
					t.Errorf("symbol %d has an empty code", a)
				}
				for b, cb := range table {
					if a != b && cb.HasPrefix(ca) {
						t.Errorf("code %s for %d is a prefix of code %s for %d", ca, a, cb, b)
					}
				}
			}

			// Every code must lead back to its own leaf.
			for symbol, hc := range table {
				n := root
				for i := byte(0); i < hc.Size; i++ {
					n = n.Child(hc.Bit(i))
				}
				if !n.IsLeaf() || n.Symbol() != symbol {
					t.Errorf("code %s does not lead to symbol %d", hc, symbol)
				}
			}
		})
	}
}

func TestEncodingTable_Invert(t *testing.T) {
	table := EncodingTable{'a': MakeCode(1, 0), 'b': MakeCode(2, 1), 'c': MakeCode(2, 3)}
	inverse := table.Invert()
	if len(inverse) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(inverse))
	}
	for symbol, hc := range table {
		if inverse[hc] != symbol {
			t.Errorf("inverse[%s] = %d, expected %d", hc, inverse[hc], symbol)
		}
	}
}
