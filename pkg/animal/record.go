package animal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Characteristic is a single key/value pair as it appeared in the document.
// Values are decoded JSON values (string, json.Number, bool, nil, []any or
// map[string]any).
type Characteristic struct {
	Key   string
	Value any
}

// Characteristics is an ordered attribute mapping. Keys keep the position of
// their first occurrence; a repeated key replaces the earlier value.
type Characteristics struct {
	entries []Characteristic
}

// NewCharacteristics builds a mapping from pairs in the given order.
func NewCharacteristics(pairs ...Characteristic) Characteristics {
	var c Characteristics
	for _, pair := range pairs {
		c.set(pair.Key, pair.Value)
	}
	return c
}

// Len returns the number of distinct keys.
func (c Characteristics) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the pairs in document order.
func (c Characteristics) Entries() []Characteristic {
	return append([]Characteristic(nil), c.entries...)
}

// Get performs an exact, case-sensitive key lookup.
func (c Characteristics) Get(key string) (any, bool) {
	for _, entry := range c.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// FindFold scans keys in document order and returns the first pair whose
// lowercase key equals the lowercase form of name. Later case variants of the
// same key are never consulted.
func (c Characteristics) FindFold(name string) (Characteristic, bool) {
	want := strings.ToLower(name)
	for _, entry := range c.entries {
		if strings.ToLower(entry.Key) == want {
			return entry, true
		}
	}
	return Characteristic{}, false
}

func (c *Characteristics) set(key string, value any) {
	for i := range c.entries {
		if c.entries[i].Key == key {
			c.entries[i].Value = value
			return
		}
	}
	c.entries = append(c.entries, Characteristic{Key: key, Value: value})
}

// UnmarshalJSON decodes a JSON object while keeping key order.
func (c *Characteristics) UnmarshalJSON(data []byte) error {
	dec := newDecoder(data)
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("animal: characteristics must be an object, got %v", tok)
	}

	out := Characteristics{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("animal: unexpected characteristics key %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		out.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// Record is one animal entry. Every field is optional.
type Record struct {
	name            any
	hasName         bool
	characteristics Characteristics
	locations       []any
}

// NewRecord builds a record from already-decoded values. A nil name is
// treated as absent.
func NewRecord(name any, characteristics Characteristics, locations []any) Record {
	return Record{
		name:            name,
		hasName:         name != nil,
		characteristics: characteristics,
		locations:       append([]any(nil), locations...),
	}
}

// Name returns the decoded name value and whether one was present. A JSON
// null counts as absent.
func (r Record) Name() (any, bool) {
	return r.name, r.hasName
}

// Characteristics returns the ordered attribute mapping. Missing or non-object
// characteristics decode to an empty mapping.
func (r Record) Characteristics() Characteristics {
	return r.characteristics
}

// Locations returns a copy of the location list. Missing or non-array
// locations decode to nil.
func (r Record) Locations() []any {
	return append([]any(nil), r.locations...)
}

// FirstLocation returns the first location, if any.
func (r Record) FirstLocation() (any, bool) {
	if len(r.locations) == 0 {
		return nil, false
	}
	return r.locations[0], true
}

// UnmarshalJSON decodes a JSON object, tolerating missing or mistyped fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	out := Record{}
	if raw, ok := fields["name"]; ok {
		value, err := decodeValue(raw)
		if err != nil {
			return fmt.Errorf("animal: decode name: %w", err)
		}
		out.name = value
		out.hasName = value != nil
	}
	if raw, ok := fields["characteristics"]; ok && leadingByte(raw) == '{' {
		if err := out.characteristics.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("animal: decode characteristics: %w", err)
		}
	}
	if raw, ok := fields["locations"]; ok && leadingByte(raw) == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("animal: decode locations: %w", err)
		}
		out.locations = make([]any, 0, len(items))
		for _, item := range items {
			value, err := decodeValue(item)
			if err != nil {
				return fmt.Errorf("animal: decode locations: %w", err)
			}
			out.locations = append(out.locations, value)
		}
	}

	*r = out
	return nil
}

// Shape records whether the document held one object or an array.
type Shape int

const (
	ShapeSingle Shape = iota + 1
	ShapeMany
)

func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeMany:
		return "many"
	}
	return "unknown"
}

// Entry is one position of a collection. Record is nil when the JSON value at
// that position was not an object.
type Entry struct {
	Record *Record
	Raw    json.RawMessage
}

// Collection is the decoded data document: either a single record or an
// ordered sequence, normalised into Entries.
type Collection struct {
	shape   Shape
	entries []Entry
}

// Single wraps one record as a collection.
func Single(record Record) Collection {
	rec := record
	return Collection{shape: ShapeSingle, entries: []Entry{{Record: &rec}}}
}

// Many wraps records, in order, as a collection.
func Many(records ...Record) Collection {
	entries := make([]Entry, 0, len(records))
	for i := range records {
		rec := records[i]
		entries = append(entries, Entry{Record: &rec})
	}
	return Collection{shape: ShapeMany, entries: entries}
}

// Shape reports the document shape.
func (c Collection) Shape() Shape {
	return c.shape
}

// Len counts every entry, including non-object ones.
func (c Collection) Len() int {
	return len(c.entries)
}

// Entries returns the entries in input order.
func (c Collection) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Records returns the object entries in input order, skipping the rest.
func (c Collection) Records() []Record {
	out := make([]Record, 0, len(c.entries))
	for _, entry := range c.entries {
		if entry.Record == nil {
			continue
		}
		out = append(out, *entry.Record)
	}
	return out
}

// UnmarshalJSON accepts either an object or an array at the top level. Any
// other JSON value becomes a single non-object entry.
func (c *Collection) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if leadingByte(trimmed) != '[' {
		entry, err := decodeEntry(trimmed)
		if err != nil {
			return err
		}
		*c = Collection{shape: ShapeSingle, entries: []Entry{entry}}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entry, err := decodeEntry(item)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	*c = Collection{shape: ShapeMany, entries: entries}
	return nil
}

// ParseCollection decodes a data document.
func ParseCollection(data []byte) (Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return Collection{}, err
	}
	return c, nil
}

// ParseRecord decodes a single JSON object into a Record.
func ParseRecord(data []byte) (Record, error) {
	if leadingByte(bytes.TrimSpace(data)) != '{' {
		return Record{}, errors.New("animal: record must be a JSON object")
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// MustParseRecord panics if the record cannot be decoded. Useful for tests.
func MustParseRecord(data string) Record {
	r, err := ParseRecord([]byte(data))
	if err != nil {
		panic(err)
	}
	return r
}

func decodeEntry(raw json.RawMessage) (Entry, error) {
	clone := append(json.RawMessage(nil), raw...)
	if leadingByte(raw) != '{' {
		return Entry{Raw: clone}, nil
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Entry{}, err
	}
	return Entry{Record: &rec, Raw: clone}, nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	var value any
	if err := newDecoder(raw).Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func newDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}

func leadingByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
