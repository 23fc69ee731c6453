package huffman

import (
	"reflect"
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freq := CountFrequencies(SymbolsFromString("aaabbcd"))

	expect := FrequencyTable{'a': 3, 'b': 2, 'c': 1, 'd': 1}
	if !reflect.DeepEqual(expect, freq) {
		t.Errorf("wrong frequencies:\n\texpect: %v\n\tactual: %v", expect, freq)
	}
	if total := freq.Total(); total != 7 {
		t.Errorf("expected total 7, got %d", total)
	}
	if symbols := freq.Symbols(); !reflect.DeepEqual(symbols, []Symbol{'a', 'b', 'c', 'd'}) {
		t.Errorf("wrong symbols: %v", symbols)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freq := CountFrequencies(nil)
	if len(freq) != 0 {
		t.Errorf("expected empty table, got %v", freq)
	}
	if total := freq.Total(); total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}
}

func TestFrequencyTable_Merge(t *testing.T) {
	input := SymbolsFromString("the quick brown fox jumps over the lazy dog")
	whole := CountFrequencies(input)

	merged := make(FrequencyTable)
	for i := 0; i < len(input); i += 10 {
		end := i + 10
		if end > len(input) {
			end = len(input)
		}
		merged.Merge(CountFrequencies(input[i:end]))
	}

	if !reflect.DeepEqual(whole, merged) {
		t.Errorf("merged shards differ from whole input:\n\texpect: %v\n\tactual: %v", whole, merged)
	}
}

func TestFrequencyTable_Dump(t *testing.T) {
	freq := CountFrequencies(SymbolsFromString("abca"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\t97: 2\n",
		"\t98: 1\n",
		"\t99: 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = freq.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
