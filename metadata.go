package accountpkg

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
)

// Metadata describes a component and the storage layout it expects.
//
// Metadata is immutable: accessors return copies, and every constructor runs
// Validate before returning.
type Metadata struct {
	name        string
	description string
	version     Version
	targets     []AccountType
	storage     []StorageEntry
}

// NewMetadata builds and validates component metadata.
//
// Targets are stored as a sorted set. Storage entries keep their declaration
// order, which is also the order of the instantiated slots.
//
// Errors:
//   - *DuplicateSlotError if a slot index is declared twice
//   - ErrIncorrectStorageFirstSlot if the lowest slot is not 0
//   - ErrNonContiguousSlots if the slots have gaps
//   - ErrInvalidMultiSlotEntry if a multi-slot entry's slot and value counts differ
//   - ErrInvalidWord or ErrInvalidFelt if a literal element is not below Modulus
func NewMetadata(
	name string,
	description string,
	version Version,
	targets []AccountType,
	storage []StorageEntry,
) (*Metadata, error) {
	entries := make([]StorageEntry, len(storage))
	for i, entry := range storage {
		if entry == nil {
			return nil, fmt.Errorf("accountpkg: storage entry %d is nil", i)
		}
		entries[i] = cloneEntry(entry)
	}

	m := &Metadata{
		name:        name,
		description: description,
		version:     version,
		targets:     normalizeTargets(targets),
		storage:     entries,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the storage layout: slot indices across all entries must be
// unique, start at 0 and be contiguous. Literal words and elements must be
// canonical field elements. It never modifies m.
func (m *Metadata) Validate() error {
	if err := validateLayout(m.storage); err != nil {
		return err
	}
	for _, entry := range m.storage {
		for _, rep := range entryWords(entry) {
			if err := checkLiterals(rep); err != nil {
				return fmt.Errorf("accountpkg: storage entry %q: %w", entry.EntryName(), err)
			}
		}
	}
	return nil
}

// Name returns the component name.
func (m *Metadata) Name() string {
	return m.name
}

// Description returns the component description.
func (m *Metadata) Description() string {
	return m.description
}

// Version returns the component version.
func (m *Metadata) Version() Version {
	return m.version
}

// Targets returns the supported account types, sorted.
func (m *Metadata) Targets() []AccountType {
	return slices.Clone(m.targets)
}

// SupportsType reports whether t is among the targets.
func (m *Metadata) SupportsType(t AccountType) bool {
	_, found := slices.BinarySearch(m.targets, t)
	return found
}

// StorageEntries returns the storage entries in declaration order.
func (m *Metadata) StorageEntries() []StorageEntry {
	entries := make([]StorageEntry, len(m.storage))
	for i, entry := range m.storage {
		entries[i] = cloneEntry(entry)
	}
	return entries
}

// StorageSize returns the number of slots the layout occupies.
func (m *Metadata) StorageSize() int {
	n := 0
	for _, entry := range m.storage {
		n += len(entry.SlotIndices())
	}
	return n
}

// PlaceholderKeys returns the values an instantiator has to supply, sorted by
// key and type. A key used by several entries is listed once per type, naming
// the first entry that declares it.
func (m *Metadata) PlaceholderKeys() []PlaceholderRequirement {
	type keyType struct {
		key PlaceholderKey
		typ PlaceholderType
	}
	seen := make(map[keyType]struct{})
	var reqs []PlaceholderRequirement
	for _, entry := range m.storage {
		for _, req := range entryPlaceholders(entry) {
			kt := keyType{req.Key, req.Type}
			if _, ok := seen[kt]; ok {
				continue
			}
			seen[kt] = struct{}{}
			reqs = append(reqs, req)
		}
	}
	slices.SortFunc(reqs, func(a, b PlaceholderRequirement) int {
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type)
	})
	return reqs
}

// Equal reports whether m and other describe the same component. Two metadata
// values are equal when their canonical textual forms are identical.
func (m *Metadata) Equal(other *Metadata) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	a, errA := m.MarshalTOML()
	b, errB := other.MarshalTOML()
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}
