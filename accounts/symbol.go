package accounts

import (
	"fmt"

	"github.com/branched-services/go-accountpkg"
)

// Token symbol encoding constants.
const (
	MaxTokenSymbolLength = 6
	tokenSymbolAlphabet  = 26
	tokenSymbolLenBits   = 3
)

// TokenSymbol is a fungible asset ticker of 1-6 uppercase ASCII letters,
// stored as a single field element.
type TokenSymbol struct {
	value accountpkg.Felt
}

// NewTokenSymbol validates and encodes s.
//
// The letters are read as base-26 digits (A = 0), then the length is packed
// into the low three bits so that leading A's survive decoding.
func NewTokenSymbol(s string) (TokenSymbol, error) {
	if len(s) == 0 || len(s) > MaxTokenSymbolLength {
		return TokenSymbol{}, fmt.Errorf("%w: %q must have 1 to %d characters", ErrInvalidTokenSymbol, s, MaxTokenSymbolLength)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return TokenSymbol{}, fmt.Errorf("%w: %q must contain only uppercase letters", ErrInvalidTokenSymbol, s)
		}
		v = v*tokenSymbolAlphabet + uint64(c-'A')
	}
	v = v<<tokenSymbolLenBits | uint64(len(s))
	return TokenSymbol{value: accountpkg.Felt(v)}, nil
}

// MustTokenSymbol is like NewTokenSymbol but panics on error.
func MustTokenSymbol(s string) TokenSymbol {
	sym, err := NewTokenSymbol(s)
	if err != nil {
		panic(err)
	}
	return sym
}

// TokenSymbolFromFelt decodes a stored symbol.
func TokenSymbolFromFelt(f accountpkg.Felt) (TokenSymbol, error) {
	if _, ok := decodeTokenSymbol(f.Uint64()); !ok {
		return TokenSymbol{}, fmt.Errorf("%w: %d is not an encoded symbol", ErrInvalidTokenSymbol, f)
	}
	return TokenSymbol{value: f}, nil
}

// Felt returns the encoded symbol.
func (s TokenSymbol) Felt() accountpkg.Felt {
	return s.value
}

// String returns the symbol letters.
func (s TokenSymbol) String() string {
	letters, _ := decodeTokenSymbol(s.value.Uint64())
	return letters
}

func decodeTokenSymbol(v uint64) (string, bool) {
	n := int(v & (1<<tokenSymbolLenBits - 1))
	if n == 0 || n > MaxTokenSymbolLength {
		return "", false
	}
	v >>= tokenSymbolLenBits

	letters := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		letters[i] = byte('A' + v%tokenSymbolAlphabet)
		v /= tokenSymbolAlphabet
	}
	return string(letters), v == 0
}
