// Package accountpkg provides a Go implementation of account component
// packages: distributable bundles of a code library plus the metadata that
// describes how the component's storage has to be initialized.
//
// A component package carries:
//   - Metadata: name, description, semantic version, supported account types
//     and an ordered list of storage entries
//   - A Library: the assembled code implementing the component
//
// Storage entries may contain placeholders, written {{key}}, which are filled
// in when the package is instantiated into an AccountComponent.
//
// # Basic Usage
//
// Parse metadata, bundle it with a library and instantiate:
//
//	metadata, err := accountpkg.MetadataFromTOML(walletTOML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lib := accountpkg.MustLibrary(code, "receive_asset", "create_note")
//	pkg, err := accountpkg.NewPackage(metadata, lib)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	component, err := pkg.Instantiate(accountpkg.PlaceholderValues{
//	    "public-key": accountpkg.WordValue(pubKey),
//	})
//
//	// Distribute
//	data, err := pkg.MarshalBinary()
//
// # Storage Entries
//
// Three kinds of entries describe storage:
//
//   - ValueEntry: one slot holding one word
//
//   - MultiSlotEntry: several slots, each initialized by its own word
//
//   - MapEntry: one slot holding the commitment to a key/value storage map
//
// Slot indices across all entries must be unique, start at 0 and be
// contiguous. Metadata is validated whenever it is built or decoded.
//
// # Word Representations
//
// A storage word is written as:
//
//   - A hex literal of 32 bytes (HexWord)
//
//   - Four field elements (ArrayWord), each a literal or a {{key}} felt placeholder
//
//   - A {{key}} word placeholder (PlaceholderWord)
//
// # Package Encoding
//
// Packages are encoded as a big-endian uint32 metadata length, the metadata in
// its TOML form and the self-describing library encoding. Decoding re-parses
// and re-validates the metadata.
package accountpkg
