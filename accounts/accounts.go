// Package accounts provides the standard account component packages: an
// RpoFalcon512 authentication component, a basic wallet and a basic fungible
// faucet.
//
// Each package is built from embedded metadata and code and is parsed and
// validated exactly like a third-party package would be.
package accounts

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/branched-services/go-accountpkg"
)

//go:embed templates/*.toml asm/*.masm
var assets embed.FS

// PublicKeyPlaceholder is the placeholder every standard package uses for the
// authentication key.
const PublicKeyPlaceholder accountpkg.PlaceholderKey = "public-key"

var (
	// ErrFaucetAccountType indicates a wallet requested for a faucet account type.
	ErrFaucetAccountType = errors.New("accounts: basic wallet accounts cannot have a faucet account type")

	// ErrInvalidTokenSymbol indicates a token symbol that is not 1-6 uppercase letters.
	ErrInvalidTokenSymbol = errors.New("accounts: invalid token symbol")
)

// InvalidFaucetMetadataError indicates token metadata outside the supported range.
type InvalidFaucetMetadataError struct {
	Reason string
}

func (e *InvalidFaucetMetadataError) Error() string {
	return fmt.Sprintf("accounts: invalid fungible faucet metadata: %s", e.Reason)
}

// loadPackage builds a package from an embedded template and its code.
// Exports are the names of the procedures declared with "export." in the code.
func loadPackage(name string) (*accountpkg.Package, error) {
	text, err := assets.ReadFile("templates/" + name + ".toml")
	if err != nil {
		return nil, err
	}
	metadata, err := accountpkg.ParseMetadata(text)
	if err != nil {
		return nil, fmt.Errorf("accounts: %s metadata: %w", name, err)
	}

	code, err := assets.ReadFile("asm/" + name + ".masm")
	if err != nil {
		return nil, err
	}
	lib, err := accountpkg.NewLibrary(code, ProcedureExports(string(code))...)
	if err != nil {
		return nil, fmt.Errorf("accounts: %s library: %w", name, err)
	}

	return accountpkg.NewPackage(metadata, lib)
}

// ProcedureExports lists the procedures exported by assembly source.
func ProcedureExports(src string) []string {
	var exports []string
	for _, line := range strings.Split(src, "\n") {
		if name, ok := strings.CutPrefix(strings.TrimSpace(line), "export."); ok {
			exports = append(exports, name)
		}
	}
	return exports
}

// mustLoad returns a loader that panics if the embedded package is invalid.
func mustLoad(name string) func() *accountpkg.Package {
	return sync.OnceValue(func() *accountpkg.Package {
		pkg, err := loadPackage(name)
		if err != nil {
			panic(err)
		}
		return pkg
	})
}

var (
	authPackage        = mustLoad("rpo_falcon512")
	basicWalletPackage = mustLoad("basic_wallet")
	basicFaucetPackage = mustLoad("basic_faucet")
)

// AuthPackage returns the RpoFalcon512 authentication package.
func AuthPackage() *accountpkg.Package {
	return authPackage()
}

// BasicWalletPackage returns the basic wallet package.
func BasicWalletPackage() *accountpkg.Package {
	return basicWalletPackage()
}

// BasicFaucetPackage returns the basic fungible faucet package.
func BasicFaucetPackage() *accountpkg.Package {
	return basicFaucetPackage()
}

// Packages returns every standard package keyed by a short name.
func Packages() map[string]*accountpkg.Package {
	return map[string]*accountpkg.Package{
		"auth":         AuthPackage(),
		"basic-wallet": BasicWalletPackage(),
		"basic-faucet": BasicFaucetPackage(),
	}
}
