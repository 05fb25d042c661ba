package accountpkg

import (
	"slices"
)

// MaxStorageSlots is the most storage slots a single component may declare.
const MaxStorageSlots = 255

// AccountComponent is a finished unit of account behavior: a library plus
// concrete storage slots, ready for account assembly.
// AccountComponent is immutable - modifier methods return new instances.
type AccountComponent struct {
	library        *Library
	storageSlots   []StorageSlot
	supportedTypes []AccountType
}

// NewAccountComponent builds a component from a library and its storage slots.
// The component initially supports no account types.
func NewAccountComponent(library *Library, slots []StorageSlot) (*AccountComponent, error) {
	if library == nil {
		return nil, ErrNilLibrary
	}
	if len(slots) > MaxStorageSlots {
		return nil, ErrTooManyStorageSlots
	}
	return &AccountComponent{
		library:        library,
		storageSlots:   slices.Clone(slots),
		supportedTypes: []AccountType{},
	}, nil
}

// Library returns the component's code library.
func (c *AccountComponent) Library() *Library {
	return c.library
}

// StorageSlots returns the storage slots in the order they were given.
func (c *AccountComponent) StorageSlots() []StorageSlot {
	return slices.Clone(c.storageSlots)
}

// StorageSize returns the number of storage slots.
func (c *AccountComponent) StorageSize() int {
	return len(c.storageSlots)
}

// SupportedTypes returns the account types the component can be used with.
func (c *AccountComponent) SupportedTypes() []AccountType {
	return slices.Clone(c.supportedTypes)
}

// SupportsType returns true if the component can be used with t.
func (c *AccountComponent) SupportsType(t AccountType) bool {
	return slices.Contains(c.supportedTypes, t)
}

// WithSupportedTypes marks the component as usable with the given types.
//
// Returns a new AccountComponent with the types added.
func (c *AccountComponent) WithSupportedTypes(types ...AccountType) *AccountComponent {
	clone := c.clone()
	clone.supportedTypes = normalizeTargets(append(clone.supportedTypes, types...))
	return clone
}

// WithSupportsAllTypes marks the component as usable with every account type.
//
// Returns a new AccountComponent.
func (c *AccountComponent) WithSupportsAllTypes() *AccountComponent {
	return c.WithSupportedTypes(AllAccountTypes...)
}

// clone creates a copy of the component with its own slices.
func (c *AccountComponent) clone() *AccountComponent {
	clone := *c
	clone.storageSlots = slices.Clone(c.storageSlots)
	clone.supportedTypes = slices.Clone(c.supportedTypes)
	return &clone
}
