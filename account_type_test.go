package accountpkg

import (
	"errors"
	"slices"
	"testing"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input string
		want  AccountType
	}{
		{"FungibleFaucet", FungibleFaucet},
		{"nonfungiblefaucet", NonFungibleFaucet},
		{"RegularAccountImmutableCode", RegularAccountImmutableCode},
		{"regularaccountimmutablecode", RegularAccountImmutableCode},
		{"REGULARACCOUNTUPDATABLECODE", RegularAccountUpdatableCode},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseAccountTypeInvalid(t *testing.T) {
	for _, input := range []string{"", "Wallet", "Regular Account"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAccountType(input)

			var target *InvalidAccountTypeError
			if !errors.As(err, &target) {
				t.Fatalf("Expected InvalidAccountTypeError, got %v", err)
			}
			if target.Value != input {
				t.Errorf("Expected value %q, got %q", input, target.Value)
			}
		})
	}
}

func TestAccountTypeText(t *testing.T) {
	for _, typ := range AllAccountTypes {
		t.Run(typ.String(), func(t *testing.T) {
			text, err := typ.MarshalText()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			var decoded AccountType
			if err := decoded.UnmarshalText(text); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if decoded != typ {
				t.Errorf("Expected %s, got %s", typ, decoded)
			}
		})
	}

	t.Run("unknown value", func(t *testing.T) {
		if _, err := AccountType(9).MarshalText(); err == nil {
			t.Error("Expected error for unknown account type")
		}
	})
}

func TestAccountTypeClassification(t *testing.T) {
	tests := []struct {
		typ     AccountType
		faucet  bool
		regular bool
	}{
		{FungibleFaucet, true, false},
		{NonFungibleFaucet, true, false},
		{RegularAccountImmutableCode, false, true},
		{RegularAccountUpdatableCode, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if tt.typ.IsFaucet() != tt.faucet {
				t.Errorf("Expected IsFaucet=%v", tt.faucet)
			}
			if tt.typ.IsRegularAccount() != tt.regular {
				t.Errorf("Expected IsRegularAccount=%v", tt.regular)
			}
		})
	}
}

func TestNormalizeTargets(t *testing.T) {
	got := normalizeTargets([]AccountType{RegularAccountUpdatableCode, FungibleFaucet, RegularAccountUpdatableCode})
	want := []AccountType{FungibleFaucet, RegularAccountUpdatableCode}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if empty := normalizeTargets(nil); empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", empty)
	}
}
