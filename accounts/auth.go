package accounts

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/branched-services/go-accountpkg"
)

// PublicKeyCommitment reduces an encoded public key to the word stored in the
// authentication slot.
func PublicKeyCommitment(encoded []byte) accountpkg.Word {
	return accountpkg.WordFromDigest(crypto.Keccak256Hash(encoded))
}

// AuthComponent instantiates the RpoFalcon512 authentication component with
// pubKey stored in slot 0.
func AuthComponent(pubKey accountpkg.Word, opts ...accountpkg.InstantiateOption) (*accountpkg.AccountComponent, error) {
	return AuthPackage().Instantiate(accountpkg.PlaceholderValues{
		PublicKeyPlaceholder: accountpkg.WordValue(pubKey),
	}, opts...)
}
