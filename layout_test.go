package accountpkg

import (
	"errors"
	"testing"
)

func valueAt(name string, slot SlotIndex) StorageEntry {
	return ValueEntry{Name: name, Slot: slot, Value: Literal(EmptyWord)}
}

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		name    string
		entries []StorageEntry
		wantErr error
	}{
		{
			name:    "empty storage",
			entries: nil,
		},
		{
			name:    "single slot",
			entries: []StorageEntry{valueAt("a", 0)},
		},
		{
			name: "declared out of order",
			entries: []StorageEntry{
				valueAt("c", 2),
				valueAt("a", 0),
				MapEntry{Name: "b", Slot: 1},
			},
		},
		{
			name: "multi-slot fills gap",
			entries: []StorageEntry{
				valueAt("a", 0),
				MultiSlotEntry{Name: "m", Slots: []SlotIndex{1, 2}, Values: []WordRepresentation{nil, nil}},
				valueAt("d", 3),
			},
		},
		{
			name:    "first slot not zero",
			entries: []StorageEntry{valueAt("a", 1)},
			wantErr: ErrIncorrectStorageFirstSlot,
		},
		{
			name:    "gap",
			entries: []StorageEntry{valueAt("a", 0), valueAt("b", 2)},
			wantErr: ErrNonContiguousSlots,
		},
		{
			name:    "duplicate across entries",
			entries: []StorageEntry{valueAt("a", 0), MapEntry{Name: "b", Slot: 0}},
			wantErr: ErrDuplicateSlots,
		},
		{
			name: "duplicate inside multi-slot",
			entries: []StorageEntry{
				MultiSlotEntry{Name: "m", Slots: []SlotIndex{0, 0}, Values: []WordRepresentation{nil, nil}},
			},
			wantErr: ErrDuplicateSlots,
		},
		{
			name: "multi-slot length mismatch",
			entries: []StorageEntry{
				MultiSlotEntry{Name: "m", Slots: []SlotIndex{0, 1}, Values: []WordRepresentation{nil}},
			},
			wantErr: ErrInvalidMultiSlotEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLayout(tt.entries)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateLayoutDuplicateDetails(t *testing.T) {
	entries := []StorageEntry{valueAt("a", 0), valueAt("b", 1), valueAt("c", 1)}

	err := validateLayout(entries)

	var dup *DuplicateSlotError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateSlotError, got %v", err)
	}
	if dup.Slot != 1 {
		t.Errorf("Expected slot 1, got %d", dup.Slot)
	}
	if dup.Entry != "c" {
		t.Errorf("Expected entry c, got %q", dup.Entry)
	}
}

func TestValidateLayoutDuplicateTakesPrecedence(t *testing.T) {
	// Slots 1, 1: both non-zero start and duplicate; duplicate is reported.
	entries := []StorageEntry{valueAt("a", 1), valueAt("b", 1)}

	err := validateLayout(entries)
	if !errors.Is(err, ErrDuplicateSlots) {
		t.Errorf("Expected ErrDuplicateSlots, got %v", err)
	}
}
