package accountpkg

import (
	"slices"
)

// SlotIndex identifies one account storage slot.
type SlotIndex uint8

// slotLayout collects the slot indices declared across storage entries and
// checks them against the layout rules.
type slotLayout struct {
	indices []SlotIndex          // All declared indices, in declaration order
	owners  map[SlotIndex]string // Slot -> name of the entry that declared it
}

// newSlotLayout creates an empty layout.
func newSlotLayout() *slotLayout {
	return &slotLayout{
		indices: make([]SlotIndex, 0, 16),
		owners:  make(map[SlotIndex]string),
	}
}

// add records the slots of entry. The first index seen twice is reported.
func (l *slotLayout) add(entry StorageEntry) error {
	if ms, ok := entry.(MultiSlotEntry); ok && len(ms.Slots) != len(ms.Values) {
		return ErrInvalidMultiSlotEntry
	}

	for _, slot := range entry.SlotIndices() {
		if _, exists := l.owners[slot]; exists {
			return &DuplicateSlotError{Slot: slot, Entry: entry.EntryName()}
		}
		l.owners[slot] = entry.EntryName()
		l.indices = append(l.indices, slot)
	}
	return nil
}

// check verifies the collected indices start at 0 and have no gaps.
func (l *slotLayout) check() error {
	sorted := slices.Clone(l.indices)
	slices.Sort(sorted)

	if len(sorted) > 0 && sorted[0] != 0 {
		return ErrIncorrectStorageFirstSlot
	}
	for i := 1; i < len(sorted); i++ {
		if int(sorted[i])-int(sorted[i-1]) != 1 {
			return ErrNonContiguousSlots
		}
	}
	return nil
}

// validateLayout runs the layout rules over entries in declaration order.
func validateLayout(entries []StorageEntry) error {
	layout := newSlotLayout()
	for _, entry := range entries {
		if err := layout.add(entry); err != nil {
			return err
		}
	}
	return layout.check()
}
