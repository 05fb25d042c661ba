package accounts

import (
	"fmt"
	"slices"

	"github.com/branched-services/go-accountpkg"
)

// Fungible faucet limits.
const (
	MaxDecimals  = 18
	MaxMaxSupply = uint64(1) << 63
)

// Placeholders of the basic faucet token metadata slot.
const (
	MaxSupplyPlaceholder   accountpkg.PlaceholderKey = "max-supply"
	DecimalsPlaceholder    accountpkg.PlaceholderKey = "decimals"
	TokenSymbolPlaceholder accountpkg.PlaceholderKey = "token-symbol"
)

// NewBasicFaucet returns the components of a basic fungible faucet: the
// authentication component followed by the faucet component.
//
// Token metadata is stored in slot 1 of the faucet as
// [max supply, decimals, token symbol, 0].
func NewBasicFaucet(pubKey accountpkg.Word, symbol TokenSymbol, decimals uint8, maxSupply uint64, opts ...accountpkg.InstantiateOption) ([]*accountpkg.AccountComponent, error) {
	if decimals > MaxDecimals {
		return nil, &InvalidFaucetMetadataError{Reason: fmt.Sprintf("decimals must be at most %d, got %d", MaxDecimals, decimals)}
	}
	if maxSupply >= MaxMaxSupply {
		return nil, &InvalidFaucetMetadataError{Reason: "max supply must be < 2^63"}
	}

	opts = append(slices.Clip(opts), accountpkg.ForAccountType(accountpkg.FungibleFaucet))

	auth, err := AuthComponent(pubKey, opts...)
	if err != nil {
		return nil, err
	}
	faucet, err := BasicFaucetPackage().Instantiate(accountpkg.PlaceholderValues{
		PublicKeyPlaceholder:   accountpkg.WordValue(pubKey),
		MaxSupplyPlaceholder:   accountpkg.FeltValue(maxSupply),
		DecimalsPlaceholder:    accountpkg.FeltValue(decimals),
		TokenSymbolPlaceholder: accountpkg.FeltValue(symbol.Felt()),
	}, opts...)
	if err != nil {
		return nil, err
	}

	return []*accountpkg.AccountComponent{auth, faucet}, nil
}
