package accountpkg

import (
	"fmt"
	"os"
)

// Package bundles validated component metadata with the library implementing
// the component. A Package is immutable; Instantiate turns it into an
// AccountComponent once the placeholder values are known.
type Package struct {
	metadata *Metadata
	library  *Library
}

// NewPackage creates a Package from validated metadata and a library.
func NewPackage(metadata *Metadata, library *Library) (*Package, error) {
	if metadata == nil {
		return nil, ErrNilMetadata
	}
	if library == nil {
		return nil, ErrNilLibrary
	}
	return &Package{metadata: metadata, library: library}, nil
}

// Metadata returns the package metadata.
func (p *Package) Metadata() *Metadata {
	return p.metadata
}

// Library returns the package library.
func (p *Package) Library() *Library {
	return p.library
}

// Instantiate resolves every storage entry against values and builds the
// AccountComponent. Slots are produced in entry declaration order.
//
// Errors (wrapped in *EntryError naming the failing entry):
//   - *TemplateValueNotProvidedError if a placeholder has no value
//   - *IncorrectTemplateValueError if a value has the wrong type
//   - *StorageMapError if a map entry's storage map cannot be built
//
// A rejection from NewAccountComponent is returned as *AccountComponentError.
// No partial component is ever returned.
func (p *Package) Instantiate(values PlaceholderValues, opts ...InstantiateOption) (*AccountComponent, error) {
	cfg := defaultInstantiateConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.accountType != nil && !p.metadata.SupportsType(*cfg.accountType) {
		return nil, fmt.Errorf("%w: %s does not target %s", ErrUnsupportedAccountType, p.metadata.Name(), *cfg.accountType)
	}

	var slots []StorageSlot
	for i, entry := range p.metadata.storage {
		entrySlots, err := storageSlots(entry, values)
		if err != nil {
			cfg.logger.Debug().
				Str("component", p.metadata.Name()).
				Int("entry", i).
				Str("name", entry.EntryName()).
				Err(err).
				Msg("storage entry conversion failed")
			return nil, &EntryError{EntryIndex: i, Entry: entry.EntryName(), Err: err}
		}
		cfg.logger.Debug().
			Str("component", p.metadata.Name()).
			Int("entry", i).
			Str("name", entry.EntryName()).
			Int("slots", len(entrySlots)).
			Msg("storage entry converted")
		slots = append(slots, entrySlots...)
	}

	component, err := NewAccountComponent(p.library, slots)
	if err != nil {
		return nil, &AccountComponentError{Err: err}
	}
	return component.WithSupportedTypes(p.metadata.targets...), nil
}

// MarshalBinary encodes the package as length-prefixed TOML metadata followed
// by the library encoding.
func (p *Package) MarshalBinary() ([]byte, error) {
	text, err := p.metadata.MarshalTOML()
	if err != nil {
		return nil, &MetadataDeserializationError{Err: err}
	}

	enc := newPackageEncoder()
	if err := enc.writeMetadata(text); err != nil {
		return nil, err
	}
	if err := enc.writeLibrary(p.library); err != nil {
		return nil, err
	}
	return enc.bytes(), nil
}

// UnmarshalPackage decodes a package container. The metadata is parsed and
// validated exactly as freshly built metadata is; previously serialized bytes
// are never trusted.
func UnmarshalPackage(data []byte) (*Package, error) {
	dec := newPackageDecoder(data)

	text, err := dec.readMetadata()
	if err != nil {
		return nil, &MetadataDeserializationError{Err: err}
	}
	metadata, err := ParseMetadata(text)
	if err != nil {
		return nil, &MetadataDeserializationError{Err: err}
	}
	library, err := dec.readLibrary()
	if err != nil {
		return nil, &MetadataDeserializationError{Err: err}
	}
	if err := dec.finish(); err != nil {
		return nil, &MetadataDeserializationError{Err: err}
	}

	pkg, err := NewPackage(metadata, library)
	if err != nil {
		return nil, &MetadataDeserializationError{Err: err}
	}
	return pkg, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. p is only updated
// when data decodes to a valid package.
func (p *Package) UnmarshalBinary(data []byte) error {
	decoded, err := UnmarshalPackage(data)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

// Equal reports whether both packages have equal metadata and library content.
func (p *Package) Equal(other *Package) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.metadata.Equal(other.metadata) && p.library.Equal(other.library)
}

// WriteFile writes the encoded package to path.
func (p *Package) WriteFile(path string) error {
	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("accountpkg: write %s: %w", path, err)
	}
	return nil
}

// ReadPackageFile reads and decodes the package stored at path.
func ReadPackageFile(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("accountpkg: read %s: %w", path, err)
	}
	return UnmarshalPackage(data)
}
