package accountpkg

import (
	"errors"
	"fmt"
)

// Sentinel errors for package validation and instantiation failures.
// Typed errors below unwrap to one of these, so callers can branch with errors.Is.
var (
	// ErrDuplicateSlots indicates the same slot index is declared more than once.
	ErrDuplicateSlots = errors.New("accountpkg: slot is defined multiple times")

	// ErrIncorrectStorageFirstSlot indicates the lowest declared slot index is not 0.
	ErrIncorrectStorageFirstSlot = errors.New("accountpkg: component storage slots have to start at 0")

	// ErrNonContiguousSlots indicates a gap in the sorted slot index sequence.
	ErrNonContiguousSlots = errors.New("accountpkg: component storage slots are not contiguous")

	// ErrInvalidMultiSlotEntry indicates a multi-slot entry whose slot and value counts differ.
	ErrInvalidMultiSlotEntry = errors.New("accountpkg: multi-slot entry should contain as many values as storage slot indices")

	// ErrTemplateValueNotProvided indicates a placeholder key is absent from the instantiation values.
	ErrTemplateValueNotProvided = errors.New("accountpkg: template value was not provided")

	// ErrIncorrectTemplateValue indicates a supplied value has the wrong type for its placeholder.
	ErrIncorrectTemplateValue = errors.New("accountpkg: template value was not of the expected type")

	// ErrStorageMap indicates the storage map for a map entry could not be built.
	ErrStorageMap = errors.New("accountpkg: error creating storage map")

	// ErrDeserialization indicates the textual metadata description could not be parsed.
	ErrDeserialization = errors.New("accountpkg: error deserializing component metadata")

	// ErrMetadataDeserialization indicates a binary package could not be decoded.
	ErrMetadataDeserialization = errors.New("accountpkg: error deserializing component package")

	// ErrAccountComponent indicates the account component rejected the resolved slots or library.
	ErrAccountComponent = errors.New("accountpkg: error creating account component")

	// ErrUnsupportedAccountType indicates the package does not target the requested account type.
	ErrUnsupportedAccountType = errors.New("accountpkg: account type not supported by component")

	// ErrInvalidFelt indicates a value is not a canonical field element.
	ErrInvalidFelt = errors.New("accountpkg: invalid field element")

	// ErrInvalidWord indicates a malformed word literal.
	ErrInvalidWord = errors.New("accountpkg: invalid word")

	// ErrInvalidPlaceholderKey indicates a malformed placeholder name.
	ErrInvalidPlaceholderKey = errors.New("accountpkg: invalid placeholder key")

	// ErrInvalidVersion indicates a version string that is not major.minor.patch semver.
	ErrInvalidVersion = errors.New("accountpkg: invalid semantic version")

	// ErrNilMetadata indicates a package was constructed without metadata.
	ErrNilMetadata = errors.New("accountpkg: nil component metadata")

	// ErrNilLibrary indicates a package or component was constructed without a library.
	ErrNilLibrary = errors.New("accountpkg: nil library")

	// ErrEmptyLibrary indicates a library with no code or no exported procedures.
	ErrEmptyLibrary = errors.New("accountpkg: library has no code or exports")

	// ErrTooManyStorageSlots indicates a component exceeds MaxStorageSlots.
	ErrTooManyStorageSlots = errors.New("accountpkg: too many storage slots (max 255)")
)

// DuplicateSlotError reports the first slot index seen twice during validation.
type DuplicateSlotError struct {
	Slot  SlotIndex
	Entry string
}

func (e *DuplicateSlotError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("accountpkg: slot %d is defined multiple times (entry %q)", e.Slot, e.Entry)
	}
	return fmt.Sprintf("accountpkg: slot %d is defined multiple times", e.Slot)
}

func (e *DuplicateSlotError) Unwrap() error {
	return ErrDuplicateSlots
}

// TemplateValueNotProvidedError indicates a placeholder key missing from the supplied values.
type TemplateValueNotProvidedError struct {
	Key PlaceholderKey
}

func (e *TemplateValueNotProvidedError) Error() string {
	return fmt.Sprintf("accountpkg: template value (%s) was not provided in the map", e.Key)
}

func (e *TemplateValueNotProvidedError) Unwrap() error {
	return ErrTemplateValueNotProvided
}

// IncorrectTemplateValueError indicates a supplied value whose type does not match its placeholder.
type IncorrectTemplateValueError struct {
	Key      PlaceholderKey
	Expected PlaceholderType
	Got      PlaceholderType
}

func (e *IncorrectTemplateValueError) Error() string {
	return fmt.Sprintf("accountpkg: template value (%s) was not of the expected type %s, got %s", e.Key, e.Expected, e.Got)
}

func (e *IncorrectTemplateValueError) Unwrap() error {
	return ErrIncorrectTemplateValue
}

// StorageMapError wraps a failure of the storage map primitive for a map entry.
type StorageMapError struct {
	Entry string
	Err   error
}

func (e *StorageMapError) Error() string {
	return fmt.Sprintf("accountpkg: error creating storage map %q: %v", e.Entry, e.Err)
}

func (e *StorageMapError) Unwrap() []error {
	return []error{ErrStorageMap, e.Err}
}

// DeserializationError wraps a parse failure of the textual metadata description.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("accountpkg: error deserializing component metadata: %v", e.Err)
}

func (e *DeserializationError) Unwrap() []error {
	return []error{ErrDeserialization, e.Err}
}

// MetadataDeserializationError wraps a failure to decode or re-validate a binary package.
type MetadataDeserializationError struct {
	Err error
}

func (e *MetadataDeserializationError) Error() string {
	return fmt.Sprintf("accountpkg: error deserializing component package: %v", e.Err)
}

func (e *MetadataDeserializationError) Unwrap() []error {
	return []error{ErrMetadataDeserialization, e.Err}
}

// AccountComponentError wraps a rejection from NewAccountComponent.
type AccountComponentError struct {
	Err error
}

func (e *AccountComponentError) Error() string {
	return fmt.Sprintf("accountpkg: error creating account component: %v", e.Err)
}

func (e *AccountComponentError) Unwrap() []error {
	return []error{ErrAccountComponent, e.Err}
}

// EntryError wraps a failure converting one storage entry during instantiation.
type EntryError struct {
	EntryIndex int
	Entry      string
	Err        error
}

func (e *EntryError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("accountpkg: storage entry %d (%s): %v", e.EntryIndex, e.Entry, e.Err)
	}
	return fmt.Sprintf("accountpkg: storage entry %d: %v", e.EntryIndex, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// InvalidAccountTypeError indicates a string that names no known account type.
type InvalidAccountTypeError struct {
	Value string
}

func (e *InvalidAccountTypeError) Error() string {
	return fmt.Sprintf("accountpkg: invalid value %q, expected a valid account type", e.Value)
}
