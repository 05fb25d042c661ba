package accountpkg

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Field and word size constants.
const (
	// Modulus is the order of the base field, 2^64 - 2^32 + 1.
	Modulus uint64 = 0xFFFFFFFF00000001

	// WordElements is the number of field elements in a Word.
	WordElements = 4

	// WordSize is the size of a Word's canonical byte encoding.
	WordSize = WordElements * 8
)

// Felt is a canonical element of the base field (always below Modulus).
type Felt uint64

// NewFelt returns v as a Felt, rejecting non-canonical values.
func NewFelt(v uint64) (Felt, error) {
	if v >= Modulus {
		return 0, fmt.Errorf("%w: %d is not below the field modulus", ErrInvalidFelt, v)
	}
	return Felt(v), nil
}

// ParseFelt parses a decimal or 0x-prefixed hexadecimal field element.
func ParseFelt(s string) (Felt, error) {
	s = strings.TrimSpace(s)
	var (
		v   uint64
		err error
	)
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		v, err = strconv.ParseUint(rest, 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFelt, s)
	}
	return NewFelt(v)
}

// Uint64 returns the element as an integer.
func (f Felt) Uint64() uint64 {
	return uint64(f)
}

// String returns the decimal form of the element.
func (f Felt) String() string {
	return strconv.FormatUint(uint64(f), 10)
}

// Word is the unit of account storage: four field elements.
type Word [WordElements]Felt

// EmptyWord is the all-zero word.
var EmptyWord = Word{}

// NewWord builds a Word from four integers, rejecting non-canonical elements.
func NewWord(a, b, c, d uint64) (Word, error) {
	var w Word
	for i, v := range [WordElements]uint64{a, b, c, d} {
		f, err := NewFelt(v)
		if err != nil {
			return Word{}, err
		}
		w[i] = f
	}
	return w, nil
}

// WordFromBytes decodes the canonical 32-byte encoding. Element i is stored
// little-endian in bytes [8i, 8i+8).
func WordFromBytes(b []byte) (Word, error) {
	if len(b) != WordSize {
		return Word{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidWord, WordSize, len(b))
	}
	var w Word
	for i := range w {
		f, err := NewFelt(binary.LittleEndian.Uint64(b[i*8 : i*8+8]))
		if err != nil {
			return Word{}, fmt.Errorf("%w: element %d: %v", ErrInvalidWord, i, err)
		}
		w[i] = f
	}
	return w, nil
}

// ParseWord parses a 0x-prefixed hex literal of exactly 32 bytes.
func ParseWord(s string) (Word, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return Word{}, fmt.Errorf("%w: %q: %v", ErrInvalidWord, s, err)
	}
	return WordFromBytes(b)
}

// MustParseWord is like ParseWord but panics on error.
// Use only with compile-time constant values.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// WordFromDigest reduces a 32-byte digest into a Word, element-wise modulo the field.
func WordFromDigest(h common.Hash) Word {
	var w Word
	for i := range w {
		w[i] = Felt(binary.LittleEndian.Uint64(h[i*8:i*8+8]) % Modulus)
	}
	return w
}

// checkCanonical reports the first element of w that is not below Modulus.
func (w Word) checkCanonical() error {
	for i, f := range w {
		if _, err := NewFelt(uint64(f)); err != nil {
			return fmt.Errorf("%w: element %d: %v", ErrInvalidWord, i, err)
		}
	}
	return nil
}

// Bytes returns the canonical 32-byte encoding.
func (w Word) Bytes() []byte {
	b := make([]byte, WordSize)
	for i, f := range w {
		binary.LittleEndian.PutUint64(b[i*8:i*8+8], uint64(f))
	}
	return b
}

// Hex returns the 0x-prefixed hex encoding of the canonical bytes.
func (w Word) Hex() string {
	return hexutil.Encode(w.Bytes())
}

// String implements fmt.Stringer.
func (w Word) String() string {
	return w.Hex()
}

// IsEmpty reports whether every element is zero.
func (w Word) IsEmpty() bool {
	return w == EmptyWord
}
