package accountpkg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Textual metadata form:
//
//	name = "Basic Wallet"
//	description = "..."
//	version = "0.1.0"
//	targets = ["RegularAccountUpdatableCode"]
//
//	[[storage]]
//	name = "auth public key"
//	slot = 0
//	value = "{{public-key}}"
//
//	[[storage]]
//	name = "pair"
//	slots = [1, 2]
//	values = ["0x...", ["1", "0x2", 3, "{{felt-key}}"]]
//
//	[[storage]]
//	name = "balances"
//	slot = 3
//	map = [{ key = "0x...", value = "{{initial}}" }]
//
// The variant of a storage record is chosen by its keys: "map" selects a map
// entry, "slots"/"values" a multi-slot entry, and "slot"/"value" a value entry.

// requiredMetadataKeys must be present at the top level.
var requiredMetadataKeys = []string{"name", "description", "version", "targets", "storage"}

type metadataTOML struct {
	Name        string             `toml:"name"`
	Description string             `toml:"description"`
	Version     Version            `toml:"version"`
	Targets     []AccountType      `toml:"targets"`
	Storage     []storageEntryTOML `toml:"storage"`
}

type storageEntryTOML struct {
	Name        *string       `toml:"name"`
	Description string        `toml:"description,omitempty"`
	Slot        *SlotIndex    `toml:"slot"`
	Value       *wordTOML     `toml:"value"`
	Slots       []SlotIndex   `toml:"slots"`
	Values      []wordTOML    `toml:"values"`
	Map         *mapItemsTOML `toml:"map"`
}

// wordTOML carries a WordRepresentation through the TOML codec.
type wordTOML struct {
	rep WordRepresentation
}

type mapItemTOML struct {
	Key   *wordTOML `toml:"key"`
	Value *wordTOML `toml:"value"`
}

type mapItemsTOML []mapItemTOML

// MarshalTOML returns the canonical textual description of m.
func (m *Metadata) MarshalTOML() ([]byte, error) {
	doc := metadataTOML{
		Name:        m.name,
		Description: m.description,
		Version:     m.version,
		Targets:     normalizeTargets(m.targets),
		Storage:     make([]storageEntryTOML, 0, len(m.storage)),
	}
	for _, entry := range m.storage {
		raw, err := entryToTOML(entry)
		if err != nil {
			return nil, err
		}
		doc.Storage = append(doc.Storage, raw)
	}
	return toml.Marshal(doc)
}

// MetadataFromTOML parses and validates a textual metadata description.
func MetadataFromTOML(text string) (*Metadata, error) {
	var doc metadataTOML
	md, err := toml.Decode(text, &doc)
	if err != nil {
		return nil, &DeserializationError{Err: err}
	}
	for _, key := range requiredMetadataKeys {
		if !md.IsDefined(key) {
			return nil, &DeserializationError{Err: fmt.Errorf("missing field %q", key)}
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &DeserializationError{Err: fmt.Errorf("unknown field %q", undecoded[0].String())}
	}

	entries := make([]StorageEntry, 0, len(doc.Storage))
	for i, raw := range doc.Storage {
		entry, err := raw.entry()
		if err != nil {
			return nil, &DeserializationError{Err: fmt.Errorf("storage[%d]: %w", i, err)}
		}
		entries = append(entries, entry)
	}

	return NewMetadata(doc.Name, doc.Description, doc.Version, doc.Targets, entries)
}

// ParseMetadata is MetadataFromTOML over raw bytes.
func ParseMetadata(data []byte) (*Metadata, error) {
	return MetadataFromTOML(string(data))
}

// entryToTOML converts an entry into its textual record.
func entryToTOML(entry StorageEntry) (storageEntryTOML, error) {
	switch e := entry.(type) {
	case ValueEntry:
		slot := e.Slot
		return storageEntryTOML{
			Name:        &e.Name,
			Description: e.Description,
			Slot:        &slot,
			Value:       &wordTOML{rep: e.Value},
		}, nil

	case MultiSlotEntry:
		// Non-nil slices so that empty lists are still written out.
		raw := storageEntryTOML{
			Name:        &e.Name,
			Description: e.Description,
			Slots:       make([]SlotIndex, len(e.Slots)),
			Values:      make([]wordTOML, len(e.Values)),
		}
		copy(raw.Slots, e.Slots)
		for i, rep := range e.Values {
			raw.Values[i] = wordTOML{rep: rep}
		}
		return raw, nil

	case MapEntry:
		slot := e.Slot
		items := make(mapItemsTOML, len(e.Items))
		for i, item := range e.Items {
			items[i] = mapItemTOML{Key: &wordTOML{rep: item.Key}, Value: &wordTOML{rep: item.Value}}
		}
		return storageEntryTOML{
			Name:        &e.Name,
			Description: e.Description,
			Slot:        &slot,
			Map:         &items,
		}, nil

	default:
		return storageEntryTOML{}, fmt.Errorf("accountpkg: unknown storage entry %T", entry)
	}
}

// entry selects the storage entry variant from the keys present in the record.
func (r storageEntryTOML) entry() (StorageEntry, error) {
	if r.Name == nil {
		return nil, errors.New("missing field \"name\"")
	}
	name := *r.Name

	switch {
	case r.Map != nil:
		if r.Value != nil || r.Slots != nil || r.Values != nil {
			return nil, fmt.Errorf("map entry %q must not declare value, slots or values", name)
		}
		if r.Slot == nil {
			return nil, fmt.Errorf("map entry %q: missing field \"slot\"", name)
		}
		items := make([]MapItem, len(*r.Map))
		for i, item := range *r.Map {
			if item.Key == nil || item.Value == nil {
				return nil, fmt.Errorf("map entry %q: item %d needs both key and value", name, i)
			}
			items[i] = MapItem{Key: item.Key.rep, Value: item.Value.rep}
		}
		return MapEntry{Name: name, Description: r.Description, Slot: *r.Slot, Items: items}, nil

	case r.Slots != nil || r.Values != nil:
		if r.Slot != nil || r.Value != nil {
			return nil, fmt.Errorf("multi-slot entry %q must not declare slot or value", name)
		}
		if r.Slots == nil || r.Values == nil {
			return nil, fmt.Errorf("multi-slot entry %q needs both slots and values", name)
		}
		values := make([]WordRepresentation, len(r.Values))
		for i, v := range r.Values {
			values[i] = v.rep
		}
		return MultiSlotEntry{Name: name, Description: r.Description, Slots: r.Slots, Values: values}, nil

	default:
		if r.Slot == nil || r.Value == nil {
			return nil, fmt.Errorf("value entry %q needs both slot and value", name)
		}
		return ValueEntry{Name: name, Description: r.Description, Slot: *r.Slot, Value: r.Value.rep}, nil
	}
}

// MarshalTOML implements toml.Marshaler.
func (w wordTOML) MarshalTOML() ([]byte, error) {
	switch r := w.rep.(type) {
	case HexWord:
		return []byte(strconv.Quote(r.Word.Hex())), nil

	case PlaceholderWord:
		if _, err := NewPlaceholderKey(string(r.Key)); err != nil {
			return nil, err
		}
		return []byte(strconv.Quote(r.Key.Token())), nil

	case ArrayWord:
		parts := make([]string, len(r))
		for i, elem := range r {
			s, err := feltText(elem)
			if err != nil {
				return nil, err
			}
			parts[i] = strconv.Quote(s)
		}
		return []byte("[" + strings.Join(parts, ", ") + "]"), nil

	case nil:
		return []byte(strconv.Quote(EmptyWord.Hex())), nil

	default:
		return nil, fmt.Errorf("%w: unknown representation %T", ErrInvalidWord, w.rep)
	}
}

// UnmarshalTOML implements toml.Unmarshaler. A string is a hex literal or a
// {{key}} placeholder; an array of four is an element-wise word.
func (w *wordTOML) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		key, isPlaceholder, err := parsePlaceholder(v)
		if err != nil {
			return err
		}
		if isPlaceholder {
			w.rep = PlaceholderWord{Key: key}
			return nil
		}
		word, err := ParseWord(v)
		if err != nil {
			return err
		}
		w.rep = HexWord{Word: word}
		return nil

	case []any:
		if len(v) != WordElements {
			return fmt.Errorf("%w: array must have %d elements, got %d", ErrInvalidWord, WordElements, len(v))
		}
		var arr ArrayWord
		for i, elem := range v {
			f, err := parseFeltTOML(elem)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			arr[i] = f
		}
		w.rep = arr
		return nil

	default:
		return fmt.Errorf("%w: expected string or array, got %T", ErrInvalidWord, data)
	}
}

// MarshalTOML implements toml.Marshaler, writing the items as inline tables so
// that an empty map is still present in the output.
func (items mapItemsTOML) MarshalTOML() ([]byte, error) {
	parts := make([]string, len(items))
	for i, item := range items {
		if item.Key == nil || item.Value == nil {
			return nil, errors.New("accountpkg: map item needs both key and value")
		}
		k, err := item.Key.MarshalTOML()
		if err != nil {
			return nil, err
		}
		v, err := item.Value.MarshalTOML()
		if err != nil {
			return nil, err
		}
		parts[i] = fmt.Sprintf("{ key = %s, value = %s }", k, v)
	}
	return []byte("[" + strings.Join(parts, ", ") + "]"), nil
}

// feltText returns the textual form of one array element.
func feltText(rep FeltRepresentation) (string, error) {
	switch r := rep.(type) {
	case FeltLiteral:
		return "0x" + strconv.FormatUint(uint64(r.Value), 16), nil
	case FeltPlaceholder:
		if _, err := NewPlaceholderKey(string(r.Key)); err != nil {
			return "", err
		}
		return r.Key.Token(), nil
	case nil:
		return "0x0", nil
	default:
		return "", fmt.Errorf("%w: unknown representation %T", ErrInvalidFelt, rep)
	}
}

// parseFeltTOML reads one array element: an integer, a numeric string or a placeholder.
func parseFeltTOML(data any) (FeltRepresentation, error) {
	switch v := data.(type) {
	case int64:
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d", ErrInvalidFelt, v)
		}
		return FeltLiteral{Value: Felt(v)}, nil

	case string:
		key, isPlaceholder, err := parsePlaceholder(v)
		if err != nil {
			return nil, err
		}
		if isPlaceholder {
			return FeltPlaceholder{Key: key}, nil
		}
		f, err := ParseFelt(v)
		if err != nil {
			return nil, err
		}
		return FeltLiteral{Value: f}, nil

	default:
		return nil, fmt.Errorf("%w: expected integer or string, got %T", ErrInvalidFelt, data)
	}
}
