package accountpkg

import (
	"fmt"
	"strings"
)

// PlaceholderKey names a substitution point. Keys are unique across a component's metadata.
type PlaceholderKey string

// NewPlaceholderKey validates s as a placeholder name: letters, digits, '-', '_' and '.'.
func NewPlaceholderKey(s string) (PlaceholderKey, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidPlaceholderKey)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidPlaceholderKey, s, r)
		}
	}
	return PlaceholderKey(s), nil
}

// String returns the key name.
func (k PlaceholderKey) String() string {
	return string(k)
}

// Token returns the textual placeholder form, {{key}}.
func (k PlaceholderKey) Token() string {
	return "{{" + string(k) + "}}"
}

// parsePlaceholder recognizes the {{key}} token. ok is false when s is not a
// placeholder at all; err is set when it looks like one but the key is malformed.
func parsePlaceholder(s string) (key PlaceholderKey, ok bool, err error) {
	inner, hasPrefix := strings.CutPrefix(strings.TrimSpace(s), "{{")
	if !hasPrefix {
		return "", false, nil
	}
	inner, hasSuffix := strings.CutSuffix(inner, "}}")
	if !hasSuffix {
		return "", true, fmt.Errorf("%w: unterminated placeholder %q", ErrInvalidPlaceholderKey, s)
	}
	key, err = NewPlaceholderKey(strings.TrimSpace(inner))
	return key, true, err
}

// PlaceholderType is the type of value a placeholder expects.
type PlaceholderType uint8

const (
	// PlaceholderTypeWord expects a full Word.
	PlaceholderTypeWord PlaceholderType = iota

	// PlaceholderTypeFelt expects a single field element.
	PlaceholderTypeFelt
)

// String returns the type name.
func (t PlaceholderType) String() string {
	switch t {
	case PlaceholderTypeWord:
		return "word"
	case PlaceholderTypeFelt:
		return "felt"
	default:
		return fmt.Sprintf("PlaceholderType(%d)", uint8(t))
	}
}

// PlaceholderValue is a typed value supplied at instantiation time.
// This is a sealed interface - only types within this package can implement it.
type PlaceholderValue interface {
	isPlaceholderValue()

	// Type returns the placeholder type this value satisfies.
	Type() PlaceholderType
}

// WordValue supplies a Word.
type WordValue Word

func (WordValue) isPlaceholderValue() {}

// Type returns PlaceholderTypeWord.
func (WordValue) Type() PlaceholderType {
	return PlaceholderTypeWord
}

// FeltValue supplies a scalar field element.
type FeltValue Felt

func (FeltValue) isPlaceholderValue() {}

// Type returns PlaceholderTypeFelt.
func (FeltValue) Type() PlaceholderType {
	return PlaceholderTypeFelt
}

// PlaceholderValues maps placeholder keys to the values that fill them.
type PlaceholderValues map[PlaceholderKey]PlaceholderValue

// lookup fetches key and checks it against the expected type.
func (v PlaceholderValues) lookup(key PlaceholderKey, expected PlaceholderType) (PlaceholderValue, error) {
	val, ok := v[key]
	if !ok || val == nil {
		return nil, &TemplateValueNotProvidedError{Key: key}
	}
	if val.Type() != expected {
		return nil, &IncorrectTemplateValueError{Key: key, Expected: expected, Got: val.Type()}
	}
	return val, nil
}

// PlaceholderRequirement describes one value an instantiator has to supply.
type PlaceholderRequirement struct {
	Key   PlaceholderKey
	Type  PlaceholderType
	Entry string
}

// WordRepresentation declares how a storage word is obtained.
// This is a sealed interface - only types within this package can implement it.
type WordRepresentation interface {
	isWordRepresentation()
}

// HexWord is a concrete word literal.
type HexWord struct {
	Word Word
}

func (HexWord) isWordRepresentation() {}

// ArrayWord is a word spelled out element by element. Nil elements are zero.
type ArrayWord [WordElements]FeltRepresentation

func (ArrayWord) isWordRepresentation() {}

// PlaceholderWord is filled with a WordValue at instantiation.
type PlaceholderWord struct {
	Key PlaceholderKey
}

func (PlaceholderWord) isWordRepresentation() {}

// FeltRepresentation declares how one element of an ArrayWord is obtained.
// This is a sealed interface - only types within this package can implement it.
type FeltRepresentation interface {
	isFeltRepresentation()
}

// FeltLiteral is a concrete element.
type FeltLiteral struct {
	Value Felt
}

func (FeltLiteral) isFeltRepresentation() {}

// FeltPlaceholder is filled with a FeltValue at instantiation.
type FeltPlaceholder struct {
	Key PlaceholderKey
}

func (FeltPlaceholder) isFeltRepresentation() {}

// Literal wraps a concrete word.
func Literal(w Word) WordRepresentation {
	return HexWord{Word: w}
}

// Array builds an array word from four concrete elements.
func Array(a, b, c, d Felt) WordRepresentation {
	return ArrayWord{FeltLiteral{a}, FeltLiteral{b}, FeltLiteral{c}, FeltLiteral{d}}
}

// Placeholder declares a word filled in at instantiation time.
func Placeholder(key PlaceholderKey) WordRepresentation {
	return PlaceholderWord{Key: key}
}

// resolveWord turns a representation into a concrete word using values.
func resolveWord(rep WordRepresentation, values PlaceholderValues) (Word, error) {
	switch r := rep.(type) {
	case HexWord:
		return r.Word, nil

	case ArrayWord:
		var w Word
		for i, elem := range r {
			f, err := resolveFelt(elem, values)
			if err != nil {
				return Word{}, err
			}
			w[i] = f
		}
		return w, nil

	case PlaceholderWord:
		val, err := values.lookup(r.Key, PlaceholderTypeWord)
		if err != nil {
			return Word{}, err
		}
		w := Word(val.(WordValue))
		if err := w.checkCanonical(); err != nil {
			return Word{}, err
		}
		return w, nil

	case nil:
		return EmptyWord, nil

	default:
		return Word{}, fmt.Errorf("%w: unknown representation %T", ErrInvalidWord, rep)
	}
}

// resolveFelt turns an element representation into a concrete element.
func resolveFelt(rep FeltRepresentation, values PlaceholderValues) (Felt, error) {
	switch r := rep.(type) {
	case FeltLiteral:
		return r.Value, nil

	case FeltPlaceholder:
		val, err := values.lookup(r.Key, PlaceholderTypeFelt)
		if err != nil {
			return 0, err
		}
		return NewFelt(uint64(val.(FeltValue)))

	case nil:
		return 0, nil

	default:
		return 0, fmt.Errorf("%w: unknown representation %T", ErrInvalidFelt, rep)
	}
}

// checkLiterals rejects literal elements of rep that are not below Modulus.
func checkLiterals(rep WordRepresentation) error {
	switch r := rep.(type) {
	case HexWord:
		return r.Word.checkCanonical()

	case ArrayWord:
		for _, elem := range r {
			if lit, ok := elem.(FeltLiteral); ok {
				if _, err := NewFelt(uint64(lit.Value)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// wordPlaceholders lists the placeholders a representation depends on, in declaration order.
func wordPlaceholders(rep WordRepresentation) []PlaceholderRequirement {
	switch r := rep.(type) {
	case PlaceholderWord:
		return []PlaceholderRequirement{{Key: r.Key, Type: PlaceholderTypeWord}}

	case ArrayWord:
		var reqs []PlaceholderRequirement
		for _, elem := range r {
			if p, ok := elem.(FeltPlaceholder); ok {
				reqs = append(reqs, PlaceholderRequirement{Key: p.Key, Type: PlaceholderTypeFelt})
			}
		}
		return reqs

	default:
		return nil
	}
}
