package accounts

import (
	"errors"
	"slices"
	"testing"

	"github.com/branched-services/go-accountpkg"
)

var testKey = accountpkg.Word{1, 2, 3, 4}

func TestEmbeddedPackages(t *testing.T) {
	for name, pkg := range Packages() {
		t.Run(name, func(t *testing.T) {
			if err := pkg.Metadata().Validate(); err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
			if len(pkg.Library().Exports()) == 0 {
				t.Error("Expected library exports")
			}

			data, err := pkg.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary failed: %v", err)
			}
			decoded, err := accountpkg.UnmarshalPackage(data)
			if err != nil {
				t.Fatalf("UnmarshalPackage failed: %v", err)
			}
			if !decoded.Equal(pkg) {
				t.Error("Expected round trip to preserve the package")
			}
		})
	}
}

func TestProcedureExports(t *testing.T) {
	src := "use.miden::account\n\nexport.receive_asset\n  exec.x\nend\n\n  export.create_note\nend\nproc.helper\nend\n"

	got := ProcedureExports(src)
	want := []string{"receive_asset", "create_note"}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBasicWalletPackage(t *testing.T) {
	m := BasicWalletPackage().Metadata()

	want := []accountpkg.AccountType{accountpkg.RegularAccountImmutableCode, accountpkg.RegularAccountUpdatableCode}
	if !slices.Equal(m.Targets(), want) {
		t.Errorf("Expected %v, got %v", want, m.Targets())
	}

	reqs := m.PlaceholderKeys()
	if len(reqs) != 1 || reqs[0].Key != PublicKeyPlaceholder {
		t.Errorf("Expected only the public-key placeholder, got %v", reqs)
	}

	lib := BasicWalletPackage().Library()
	for _, proc := range []string{"receive_asset", "create_note", "move_asset_to_note"} {
		if !lib.HasExport(proc) {
			t.Errorf("Expected wallet to export %s", proc)
		}
	}
}

func TestNewBasicWallet(t *testing.T) {
	t.Run("regular account", func(t *testing.T) {
		components, err := NewBasicWallet(testKey, accountpkg.RegularAccountUpdatableCode)
		if err != nil {
			t.Fatalf("NewBasicWallet failed: %v", err)
		}
		if len(components) != 2 {
			t.Fatalf("Expected 2 components, got %d", len(components))
		}

		auth, wallet := components[0], components[1]
		if !auth.Library().HasExport("auth_tx_rpo_falcon512") {
			t.Error("Expected first component to be the auth component")
		}
		if wallet.StorageSlots()[0].Value() != testKey {
			t.Errorf("Expected wallet slot 0 to hold the key, got %v", wallet.StorageSlots()[0].Value())
		}
		if !wallet.SupportsType(accountpkg.RegularAccountImmutableCode) {
			t.Error("Expected wallet to support immutable code accounts")
		}
	})

	t.Run("faucet type rejected", func(t *testing.T) {
		for _, typ := range []accountpkg.AccountType{accountpkg.FungibleFaucet, accountpkg.NonFungibleFaucet} {
			if _, err := NewBasicWallet(testKey, typ); !errors.Is(err, ErrFaucetAccountType) {
				t.Errorf("%s: expected ErrFaucetAccountType, got %v", typ, err)
			}
		}
	})
}

func TestAuthComponent(t *testing.T) {
	c, err := AuthComponent(testKey)
	if err != nil {
		t.Fatalf("AuthComponent failed: %v", err)
	}
	if c.StorageSize() != 1 {
		t.Fatalf("Expected 1 slot, got %d", c.StorageSize())
	}
	if c.StorageSlots()[0].Value() != testKey {
		t.Errorf("Expected slot 0 to hold the key, got %v", c.StorageSlots()[0].Value())
	}
	if !slices.Equal(c.SupportedTypes(), accountpkg.AllAccountTypes) {
		t.Errorf("Expected all account types, got %v", c.SupportedTypes())
	}
}

func TestPublicKeyCommitment(t *testing.T) {
	a := PublicKeyCommitment([]byte("key a"))
	b := PublicKeyCommitment([]byte("key b"))

	if a == b {
		t.Error("Expected different commitments for different keys")
	}
	if a != PublicKeyCommitment([]byte("key a")) {
		t.Error("Expected commitment to be deterministic")
	}
	for i, f := range a {
		if f.Uint64() >= accountpkg.Modulus {
			t.Errorf("Element %d is not canonical", i)
		}
	}
}
