package accountpkg

import (
	"fmt"
	"slices"
	"strings"
)

// AccountType is the kind of account a component can be installed on.
type AccountType uint8

const (
	// FungibleFaucet issues fungible assets.
	FungibleFaucet AccountType = iota

	// NonFungibleFaucet issues non-fungible assets.
	NonFungibleFaucet

	// RegularAccountImmutableCode is a regular account whose code cannot change.
	RegularAccountImmutableCode

	// RegularAccountUpdatableCode is a regular account whose code can be updated.
	RegularAccountUpdatableCode
)

// AllAccountTypes lists every account type in canonical order.
var AllAccountTypes = []AccountType{
	FungibleFaucet,
	NonFungibleFaucet,
	RegularAccountImmutableCode,
	RegularAccountUpdatableCode,
}

// String returns the canonical name.
func (t AccountType) String() string {
	switch t {
	case FungibleFaucet:
		return "FungibleFaucet"
	case NonFungibleFaucet:
		return "NonFungibleFaucet"
	case RegularAccountImmutableCode:
		return "RegularAccountImmutableCode"
	case RegularAccountUpdatableCode:
		return "RegularAccountUpdatableCode"
	default:
		return fmt.Sprintf("AccountType(%d)", uint8(t))
	}
}

// IsFaucet reports whether t is one of the faucet types.
func (t AccountType) IsFaucet() bool {
	return t == FungibleFaucet || t == NonFungibleFaucet
}

// IsRegularAccount reports whether t is one of the regular account types.
func (t AccountType) IsRegularAccount() bool {
	return t == RegularAccountImmutableCode || t == RegularAccountUpdatableCode
}

// ParseAccountType decodes an account type name, ignoring case.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(s) {
	case "fungiblefaucet":
		return FungibleFaucet, nil
	case "nonfungiblefaucet":
		return NonFungibleFaucet, nil
	case "regularaccountimmutablecode":
		return RegularAccountImmutableCode, nil
	case "regularaccountupdatablecode":
		return RegularAccountUpdatableCode, nil
	default:
		return 0, &InvalidAccountTypeError{Value: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t AccountType) MarshalText() ([]byte, error) {
	if t > RegularAccountUpdatableCode {
		return nil, &InvalidAccountTypeError{Value: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AccountType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// normalizeTargets returns targets as a sorted set.
func normalizeTargets(targets []AccountType) []AccountType {
	out := slices.Clone(targets)
	if out == nil {
		out = []AccountType{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
