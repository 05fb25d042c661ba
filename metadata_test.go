package accountpkg

import (
	"errors"
	"slices"
	"testing"
)

func mustMetadata(t *testing.T, storage ...StorageEntry) *Metadata {
	t.Helper()
	m, err := NewMetadata(
		"Test Component",
		"component used in tests",
		MustParseVersion("1.0.0"),
		[]AccountType{RegularAccountUpdatableCode, RegularAccountImmutableCode},
		storage,
	)
	if err != nil {
		t.Fatalf("NewMetadata failed: %v", err)
	}
	return m
}

func TestNewMetadata(t *testing.T) {
	m := mustMetadata(t,
		ValueEntry{Name: "owner", Slot: 0, Value: Placeholder("public-key")},
		MultiSlotEntry{Name: "pair", Slots: []SlotIndex{1, 2}, Values: []WordRepresentation{Array(1, 0, 0, 0), Array(2, 0, 0, 0)}},
	)

	t.Run("fields", func(t *testing.T) {
		if m.Name() != "Test Component" {
			t.Errorf("Expected name Test Component, got %q", m.Name())
		}
		if m.Version().String() != "1.0.0" {
			t.Errorf("Expected version 1.0.0, got %s", m.Version())
		}
		if m.StorageSize() != 3 {
			t.Errorf("Expected storage size 3, got %d", m.StorageSize())
		}
		if len(m.StorageEntries()) != 2 {
			t.Errorf("Expected 2 entries, got %d", len(m.StorageEntries()))
		}
	})

	t.Run("targets sorted", func(t *testing.T) {
		want := []AccountType{RegularAccountImmutableCode, RegularAccountUpdatableCode}
		if !slices.Equal(m.Targets(), want) {
			t.Errorf("Expected %v, got %v", want, m.Targets())
		}
		if !m.SupportsType(RegularAccountUpdatableCode) {
			t.Error("Expected RegularAccountUpdatableCode to be supported")
		}
		if m.SupportsType(FungibleFaucet) {
			t.Error("Expected FungibleFaucet not to be supported")
		}
	})

	t.Run("validate is idempotent", func(t *testing.T) {
		before, err := m.MarshalTOML()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for i := 0; i < 3; i++ {
			if err := m.Validate(); err != nil {
				t.Fatalf("Validate failed on pass %d: %v", i, err)
			}
		}
		after, err := m.MarshalTOML()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if string(before) != string(after) {
			t.Error("Expected Validate not to change the metadata")
		}
	})
}

func TestNewMetadataRejectsInvalidLayouts(t *testing.T) {
	tests := []struct {
		name    string
		storage []StorageEntry
		wantErr error
	}{
		{
			name:    "non-contiguous",
			storage: []StorageEntry{valueAt("a", 0), valueAt("b", 2)},
			wantErr: ErrNonContiguousSlots,
		},
		{
			name:    "missing slot 0",
			storage: []StorageEntry{valueAt("a", 1), valueAt("b", 2)},
			wantErr: ErrIncorrectStorageFirstSlot,
		},
		{
			name:    "duplicate",
			storage: []StorageEntry{valueAt("a", 0), valueAt("b", 0)},
			wantErr: ErrDuplicateSlots,
		},
		{
			name: "multi-slot mismatch",
			storage: []StorageEntry{
				MultiSlotEntry{Name: "m", Slots: []SlotIndex{0}, Values: []WordRepresentation{nil, nil}},
			},
			wantErr: ErrInvalidMultiSlotEntry,
		},
		{
			name:    "non-canonical hex word",
			storage: []StorageEntry{ValueEntry{Name: "v", Slot: 0, Value: Literal(Word{Felt(Modulus), 0, 0, 0})}},
			wantErr: ErrInvalidWord,
		},
		{
			name:    "non-canonical array element",
			storage: []StorageEntry{ValueEntry{Name: "v", Slot: 0, Value: Array(0, 0, ^Felt(0), 0)}},
			wantErr: ErrInvalidFelt,
		},
		{
			name: "non-canonical multi-slot value",
			storage: []StorageEntry{
				MultiSlotEntry{Name: "m", Slots: []SlotIndex{0, 1}, Values: []WordRepresentation{nil, Literal(Word{0, Felt(Modulus), 0, 0})}},
			},
			wantErr: ErrInvalidWord,
		},
		{
			name: "non-canonical map key",
			storage: []StorageEntry{
				MapEntry{Name: "m", Slot: 0, Items: []MapItem{{Key: Literal(Word{0, 0, 0, Felt(Modulus)}), Value: Placeholder("v")}}},
			},
			wantErr: ErrInvalidWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMetadata("x", "", MustParseVersion("0.1.0"), nil, tt.storage)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("nil entry", func(t *testing.T) {
		_, err := NewMetadata("x", "", MustParseVersion("0.1.0"), nil, []StorageEntry{nil})
		if err == nil {
			t.Error("Expected error for nil entry")
		}
	})
}

func TestMetadataIsolation(t *testing.T) {
	slots := []SlotIndex{0, 1}
	storage := []StorageEntry{
		MultiSlotEntry{Name: "m", Slots: slots, Values: []WordRepresentation{nil, nil}},
	}
	m := mustMetadata(t, storage...)

	slots[1] = 5
	if err := m.Validate(); err != nil {
		t.Errorf("Expected metadata unaffected by caller mutation, got %v", err)
	}

	entries := m.StorageEntries()
	entries[0] = valueAt("replaced", 0)
	if m.StorageEntries()[0].EntryName() != "m" {
		t.Error("Expected StorageEntries to return a copy")
	}
}

func TestMetadataPlaceholderKeys(t *testing.T) {
	m := mustMetadata(t,
		ValueEntry{Name: "owner", Slot: 0, Value: Placeholder("public-key")},
		ValueEntry{Name: "config", Slot: 1, Value: ArrayWord{FeltPlaceholder{"decimals"}, FeltPlaceholder{"decimals"}, nil, nil}},
		MapEntry{Name: "m", Slot: 2, Items: []MapItem{{Key: Placeholder("public-key"), Value: Array(1, 0, 0, 0)}}},
	)

	reqs := m.PlaceholderKeys()
	if len(reqs) != 2 {
		t.Fatalf("Expected 2 requirements, got %d: %v", len(reqs), reqs)
	}
	if reqs[0].Key != "decimals" || reqs[0].Type != PlaceholderTypeFelt {
		t.Errorf("Expected decimals/felt first, got %s/%s", reqs[0].Key, reqs[0].Type)
	}
	if reqs[1].Key != "public-key" || reqs[1].Entry != "owner" {
		t.Errorf("Expected public-key from owner, got %s from %s", reqs[1].Key, reqs[1].Entry)
	}
}

func TestMetadataEqual(t *testing.T) {
	a := mustMetadata(t, valueAt("a", 0))
	b := mustMetadata(t, valueAt("a", 0))
	c := mustMetadata(t, valueAt("c", 0))

	if !a.Equal(b) {
		t.Error("Expected equal metadata")
	}
	if a.Equal(c) {
		t.Error("Expected different metadata")
	}
	if a.Equal(nil) {
		t.Error("Expected metadata not equal to nil")
	}
}
