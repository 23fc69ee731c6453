package huffman

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestPack(t *testing.T) {
	raw, err := Pack(SymbolsFromString("aaaa"))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	// magic, tree length, tree, stream, checksum
	expectPrefix := []byte{'H', 'U', 'F', '1', 3, 7, 8, 0xc3, 4, 0x00}
	if !bytes.HasPrefix(raw, expectPrefix) {
		t.Errorf("wrong output:\n\texpect prefix: %#v\n\tactual: %#v", expectPrefix, raw)
	}
	if len(raw) != len(expectPrefix)+checksumSize {
		t.Errorf("expected %d bytes, got %d", len(expectPrefix)+checksumSize, len(raw))
	}

	output, err := Unpack(raw)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if SymbolsToString(output) != "aaaa" {
		t.Errorf("expected \"aaaa\", got %q", SymbolsToString(output))
	}
}

func TestPack_RoundTrip(t *testing.T) {
	inputs := []string{
		"aaabbcd",
		"Hello, world!",
		"It was the best of times, it was the worst of times.",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			symbols := SymbolsFromString(input)
			raw, err := Pack(symbols)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			output, err := Unpack(raw)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if !reflect.DeepEqual(symbols, output) {
				t.Errorf("round trip failed:\n\texpect: %q\n\tactual: %q", input, SymbolsToString(output))
			}
		})
	}
}

func TestPack_Empty(t *testing.T) {
	if _, err := Pack(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestUnpack_Corrupt(t *testing.T) {
	raw, err := Pack(SymbolsFromString("Hello, world!"))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	for i := len(Magic); i < len(raw); i++ {
		corrupt := append([]byte(nil), raw...)
		corrupt[i] ^= 0x10
		if _, err := Unpack(corrupt); !errors.Is(err, ErrChecksum) {
			t.Errorf("byte %d: expected ErrChecksum, got %v", i, err)
		}
	}

	if _, err := Unpack(raw[:len(raw)-1]); !errors.Is(err, ErrChecksum) {
		t.Errorf("truncated: expected ErrChecksum, got %v", err)
	}
	if _, err := Unpack([]byte("HUF")); !errors.Is(err, ErrMalformedStream) {
		t.Errorf("short: expected ErrMalformedStream, got %v", err)
	}

	badMagic := append([]byte(nil), raw...)
	badMagic[0] = 'X'
	if _, err := Unpack(badMagic); !errors.Is(err, ErrMalformedStream) {
		t.Errorf("magic: expected ErrMalformedStream, got %v", err)
	}
}
