package accounts

import (
	"slices"

	"github.com/branched-services/go-accountpkg"
)

// NewBasicWallet returns the components of a basic wallet account of the given
// type: the authentication component followed by the wallet component.
//
// Basic wallets can have either mutable or immutable code; faucet account
// types are rejected with ErrFaucetAccountType.
func NewBasicWallet(pubKey accountpkg.Word, accountType accountpkg.AccountType, opts ...accountpkg.InstantiateOption) ([]*accountpkg.AccountComponent, error) {
	if accountType.IsFaucet() {
		return nil, ErrFaucetAccountType
	}

	opts = append(slices.Clip(opts), accountpkg.ForAccountType(accountType))

	auth, err := AuthComponent(pubKey, opts...)
	if err != nil {
		return nil, err
	}
	wallet, err := BasicWalletPackage().Instantiate(accountpkg.PlaceholderValues{
		PublicKeyPlaceholder: accountpkg.WordValue(pubKey),
	}, opts...)
	if err != nil {
		return nil, err
	}

	return []*accountpkg.AccountComponent{auth, wallet}, nil
}
