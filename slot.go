package accountpkg

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/trie"
)

// StorageSlotType distinguishes plain value slots from map slots.
type StorageSlotType uint8

const (
	// StorageSlotValue holds a single word.
	StorageSlotValue StorageSlotType = iota

	// StorageSlotMap holds the commitment to a storage map.
	StorageSlotMap
)

// String returns the slot type name.
func (t StorageSlotType) String() string {
	switch t {
	case StorageSlotValue:
		return "value"
	case StorageSlotMap:
		return "map"
	default:
		return fmt.Sprintf("StorageSlotType(%d)", uint8(t))
	}
}

// StorageSlot is one concrete, fully resolved storage slot.
type StorageSlot struct {
	slotType   StorageSlotType
	value      Word
	storageMap *StorageMap
}

// NewValueSlot returns a slot holding w.
func NewValueSlot(w Word) StorageSlot {
	return StorageSlot{slotType: StorageSlotValue, value: w}
}

// NewMapSlot returns a slot holding the commitment to m.
func NewMapSlot(m *StorageMap) StorageSlot {
	return StorageSlot{slotType: StorageSlotMap, value: m.Root(), storageMap: m}
}

// Type returns the slot type.
func (s StorageSlot) Type() StorageSlotType {
	return s.slotType
}

// Value returns the slot's word. For map slots this is the map commitment.
func (s StorageSlot) Value() Word {
	return s.value
}

// Map returns the backing map of a map slot.
func (s StorageSlot) Map() (*StorageMap, bool) {
	return s.storageMap, s.slotType == StorageSlotMap
}

// StorageMapItem is one key/value pair of a storage map.
type StorageMapItem struct {
	Key   Word
	Value Word
}

// StorageMap is a content-addressed map of words, committed to by the root of
// a Merkle-Patricia trie over the canonical key and value bytes.
type StorageMap struct {
	items []StorageMapItem // sorted by key bytes
	index map[Word]int
	root  common.Hash
}

// NewStorageMap builds the map and its commitment. Items may be given in any
// order; duplicate keys are rejected by the trie.
func NewStorageMap(items []StorageMapItem) (*StorageMap, error) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b StorageMapItem) int {
		return bytes.Compare(a.Key.Bytes(), b.Key.Bytes())
	})

	st := trie.NewStackTrie(nil)
	index := make(map[Word]int, len(sorted))
	for i, item := range sorted {
		if err := st.Update(item.Key.Bytes(), item.Value.Bytes()); err != nil {
			return nil, fmt.Errorf("key %s: %w", item.Key.Hex(), err)
		}
		index[item.Key] = i
	}

	return &StorageMap{
		items: sorted,
		index: index,
		root:  st.Hash(),
	}, nil
}

// Root returns the map commitment as a Word.
func (m *StorageMap) Root() Word {
	return WordFromDigest(m.root)
}

// Digest returns the raw trie root.
func (m *StorageMap) Digest() common.Hash {
	return m.root
}

// Get returns the value stored under key.
func (m *StorageMap) Get(key Word) (Word, bool) {
	i, ok := m.index[key]
	if !ok {
		return Word{}, false
	}
	return m.items[i].Value, true
}

// Len returns the number of entries.
func (m *StorageMap) Len() int {
	return len(m.items)
}

// Items returns the entries sorted by key.
func (m *StorageMap) Items() []StorageMapItem {
	return slices.Clone(m.items)
}
