package accountpkg

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestNewFelt(t *testing.T) {
	tests := []struct {
		name    string
		value   uint64
		wantErr bool
	}{
		{"zero", 0, false},
		{"largest canonical", Modulus - 1, false},
		{"modulus", Modulus, true},
		{"max uint64", ^uint64(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFelt(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFelt) {
					t.Errorf("Expected ErrInvalidFelt, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if f.Uint64() != tt.value {
				t.Errorf("Expected %d, got %d", tt.value, f.Uint64())
			}
		})
	}
}

func TestParseFelt(t *testing.T) {
	tests := []struct {
		input   string
		want    Felt
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"0x2a", 42, false},
		{" 7 ", 7, false},
		{"0xffffffff00000000", Felt(Modulus - 1), false},
		{"0xffffffff00000001", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFelt(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFelt) {
					t.Errorf("Expected ErrInvalidFelt, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWordBytes(t *testing.T) {
	w, err := NewWord(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	b := w.Bytes()
	if len(b) != WordSize {
		t.Fatalf("Expected %d bytes, got %d", WordSize, len(b))
	}

	t.Run("elements are little-endian", func(t *testing.T) {
		for i := 0; i < WordElements; i++ {
			if b[i*8] != byte(i+1) {
				t.Errorf("Element %d: expected low byte %d, got %d", i, i+1, b[i*8])
			}
			for j := 1; j < 8; j++ {
				if b[i*8+j] != 0 {
					t.Errorf("Element %d: expected zero byte at %d, got %d", i, j, b[i*8+j])
				}
			}
		}
	})

	t.Run("round trip", func(t *testing.T) {
		decoded, err := WordFromBytes(b)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if decoded != w {
			t.Errorf("Expected %v, got %v", w, decoded)
		}
	})

	t.Run("hex round trip", func(t *testing.T) {
		parsed, err := ParseWord(w.Hex())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed != w {
			t.Errorf("Expected %v, got %v", w, parsed)
		}
	})
}

func TestParseWord(t *testing.T) {
	t.Run("empty word", func(t *testing.T) {
		w, err := ParseWord("0x0000000000000000000000000000000000000000000000000000000000000000")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !w.IsEmpty() {
			t.Errorf("Expected empty word, got %v", w)
		}
	})

	tests := []struct {
		name  string
		input string
	}{
		{"missing prefix", "0000000000000000000000000000000000000000000000000000000000000000"},
		{"too short", "0x00"},
		{"too long", "0x000000000000000000000000000000000000000000000000000000000000000000"},
		{"not hex", "0xzz00000000000000000000000000000000000000000000000000000000000000"},
		{"non-canonical element", "0xffffffffffffffff000000000000000000000000000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWord(tt.input)
			if !errors.Is(err, ErrInvalidWord) {
				t.Errorf("Expected ErrInvalidWord, got %v", err)
			}
		})
	}
}

func TestMustParseWordPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected MustParseWord to panic")
		}
	}()
	MustParseWord("0x01")
}

func TestWordFromDigest(t *testing.T) {
	var h common.Hash
	for i := range h {
		h[i] = 0xff
	}

	w := WordFromDigest(h)
	want := Felt(^uint64(0) % Modulus)
	for i, f := range w {
		if f != want {
			t.Errorf("Element %d: expected %d, got %d", i, want, f)
		}
	}
}
