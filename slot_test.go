package accountpkg

import (
	"testing"
)

func TestNewStorageMap(t *testing.T) {
	items := []StorageMapItem{
		{Key: Word{3, 0, 0, 0}, Value: Word{30, 0, 0, 0}},
		{Key: Word{1, 0, 0, 0}, Value: Word{10, 0, 0, 0}},
		{Key: Word{2, 0, 0, 0}, Value: Word{20, 0, 0, 0}},
	}

	m, err := NewStorageMap(items)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("items sorted by key", func(t *testing.T) {
		got := m.Items()
		for i, item := range got {
			want := Felt(i + 1)
			if item.Key[0] != want {
				t.Errorf("Item %d: expected key %d, got %d", i, want, item.Key[0])
			}
		}
	})

	t.Run("lookup", func(t *testing.T) {
		v, ok := m.Get(Word{2, 0, 0, 0})
		if !ok {
			t.Fatal("Expected key to be present")
		}
		if v != (Word{20, 0, 0, 0}) {
			t.Errorf("Expected [20 0 0 0], got %v", v)
		}
		if _, ok := m.Get(Word{4, 0, 0, 0}); ok {
			t.Error("Expected absent key to be missing")
		}
	})

	t.Run("root independent of insertion order", func(t *testing.T) {
		reversed := []StorageMapItem{items[2], items[1], items[0]}
		other, err := NewStorageMap(reversed)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if other.Digest() != m.Digest() {
			t.Errorf("Expected equal roots, got %s and %s", other.Digest(), m.Digest())
		}
	})

	t.Run("root depends on content", func(t *testing.T) {
		other, err := NewStorageMap(items[:2])
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if other.Root() == m.Root() {
			t.Error("Expected different roots for different content")
		}
	})
}

func TestNewStorageMapDuplicateKeys(t *testing.T) {
	items := []StorageMapItem{
		{Key: Word{1, 0, 0, 0}, Value: Word{1, 0, 0, 0}},
		{Key: Word{1, 0, 0, 0}, Value: Word{2, 0, 0, 0}},
	}

	if _, err := NewStorageMap(items); err == nil {
		t.Error("Expected error for duplicate keys")
	}
}

func TestEmptyStorageMap(t *testing.T) {
	m, err := NewStorageMap(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Expected empty map, got %d items", m.Len())
	}

	slot := NewMapSlot(m)
	if slot.Type() != StorageSlotMap {
		t.Errorf("Expected map slot, got %s", slot.Type())
	}
	if slot.Value() != m.Root() {
		t.Error("Expected slot value to be the map root")
	}
}
