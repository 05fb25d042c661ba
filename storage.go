package accountpkg

import (
	"fmt"
	"slices"
)

// StorageEntry is one logical storage declaration in a component's metadata.
// This is a sealed interface - only ValueEntry, MultiSlotEntry and MapEntry implement it.
type StorageEntry interface {
	isStorageEntry()

	// EntryName returns the entry's human-readable name.
	EntryName() string

	// SlotIndices returns the slots the entry occupies, in declaration order.
	SlotIndices() []SlotIndex
}

// ValueEntry occupies one slot holding one word.
type ValueEntry struct {
	Name        string
	Description string
	Slot        SlotIndex
	Value       WordRepresentation
}

func (ValueEntry) isStorageEntry() {}

// EntryName returns the entry name.
func (e ValueEntry) EntryName() string {
	return e.Name
}

// SlotIndices returns the single slot.
func (e ValueEntry) SlotIndices() []SlotIndex {
	return []SlotIndex{e.Slot}
}

// MultiSlotEntry occupies several slots; Values[i] initializes Slots[i].
type MultiSlotEntry struct {
	Name        string
	Description string
	Slots       []SlotIndex
	Values      []WordRepresentation
}

func (MultiSlotEntry) isStorageEntry() {}

// EntryName returns the entry name.
func (e MultiSlotEntry) EntryName() string {
	return e.Name
}

// SlotIndices returns the declared slots.
func (e MultiSlotEntry) SlotIndices() []SlotIndex {
	return slices.Clone(e.Slots)
}

// MapItem is one initial key/value pair of a map entry. Either side may be a placeholder.
type MapItem struct {
	Key   WordRepresentation
	Value WordRepresentation
}

// MapEntry occupies one slot holding the commitment to a storage map.
type MapEntry struct {
	Name        string
	Description string
	Slot        SlotIndex
	Items       []MapItem
}

func (MapEntry) isStorageEntry() {}

// EntryName returns the entry name.
func (e MapEntry) EntryName() string {
	return e.Name
}

// SlotIndices returns the single slot.
func (e MapEntry) SlotIndices() []SlotIndex {
	return []SlotIndex{e.Slot}
}

// entryWords returns every word representation of entry, map keys included.
func entryWords(entry StorageEntry) []WordRepresentation {
	switch e := entry.(type) {
	case ValueEntry:
		return []WordRepresentation{e.Value}
	case MultiSlotEntry:
		return e.Values
	case MapEntry:
		reps := make([]WordRepresentation, 0, 2*len(e.Items))
		for _, item := range e.Items {
			reps = append(reps, item.Key, item.Value)
		}
		return reps
	default:
		return nil
	}
}

// storageSlots converts an entry into concrete slots, resolving placeholders
// from values. The entry is not modified.
func storageSlots(entry StorageEntry, values PlaceholderValues) ([]StorageSlot, error) {
	switch e := entry.(type) {
	case ValueEntry:
		w, err := resolveWord(e.Value, values)
		if err != nil {
			return nil, err
		}
		return []StorageSlot{NewValueSlot(w)}, nil

	case MultiSlotEntry:
		if len(e.Slots) != len(e.Values) {
			return nil, ErrInvalidMultiSlotEntry
		}
		slots := make([]StorageSlot, 0, len(e.Values))
		for _, rep := range e.Values {
			w, err := resolveWord(rep, values)
			if err != nil {
				return nil, err
			}
			slots = append(slots, NewValueSlot(w))
		}
		return slots, nil

	case MapEntry:
		items := make([]StorageMapItem, 0, len(e.Items))
		for _, item := range e.Items {
			k, err := resolveWord(item.Key, values)
			if err != nil {
				return nil, err
			}
			v, err := resolveWord(item.Value, values)
			if err != nil {
				return nil, err
			}
			items = append(items, StorageMapItem{Key: k, Value: v})
		}
		m, err := NewStorageMap(items)
		if err != nil {
			return nil, &StorageMapError{Entry: e.Name, Err: err}
		}
		return []StorageSlot{NewMapSlot(m)}, nil

	default:
		return nil, fmt.Errorf("accountpkg: unknown storage entry %T", entry)
	}
}

// entryPlaceholders lists the placeholders an entry depends on, in declaration order.
func entryPlaceholders(entry StorageEntry) []PlaceholderRequirement {
	var reqs []PlaceholderRequirement
	switch e := entry.(type) {
	case ValueEntry:
		reqs = wordPlaceholders(e.Value)

	case MultiSlotEntry:
		for _, rep := range e.Values {
			reqs = append(reqs, wordPlaceholders(rep)...)
		}

	case MapEntry:
		for _, item := range e.Items {
			reqs = append(reqs, wordPlaceholders(item.Key)...)
			reqs = append(reqs, wordPlaceholders(item.Value)...)
		}
	}

	for i := range reqs {
		reqs[i].Entry = entry.EntryName()
	}
	return reqs
}

// cloneEntry deep-copies the slices of an entry so metadata cannot be changed
// through the caller's references.
func cloneEntry(entry StorageEntry) StorageEntry {
	switch e := entry.(type) {
	case MultiSlotEntry:
		e.Slots = slices.Clone(e.Slots)
		e.Values = slices.Clone(e.Values)
		return e

	case MapEntry:
		e.Items = slices.Clone(e.Items)
		return e

	default:
		return entry
	}
}
