package render

import (
	"github.com/goliatone/go-animalpage/pkg/animal"
)

// Line labels, in emission order.
const (
	LabelDiet     = "Diet"
	LabelLocation = "Location"
	LabelType     = "Type"
)

const (
	dietKey = "diet"
	typeKey = "type"
)

// Line is one labelled attribute of a card.
type Line struct {
	Label string
	Value string
}

// Lines applies the field-selection policy to record and returns the
// qualifying lines in the order Diet, Location, Type.
func Lines(record animal.Record) []Line {
	lines := make([]Line, 0, 3)
	if diet, ok := Diet(record); ok {
		lines = append(lines, Line{Label: LabelDiet, Value: diet})
	}
	if location, ok := Location(record); ok {
		lines = append(lines, Line{Label: LabelLocation, Value: location})
	}
	if kind, ok := Type(record); ok {
		lines = append(lines, Line{Label: LabelType, Value: kind})
	}
	return lines
}

// Name returns the formatted name when the record has one.
func Name(record animal.Record) (string, bool) {
	value, ok := record.Name()
	if !ok {
		return "", false
	}
	return FormatValue(value), true
}

// Diet looks up the exact "diet" characteristic and reports it only when its
// value is truthy.
func Diet(record animal.Record) (string, bool) {
	value, ok := record.Characteristics().Get(dietKey)
	if !ok || !Truthy(value) {
		return "", false
	}
	return FormatValue(value), true
}

// Location returns the first location when the list is non-empty. The
// element itself is not checked for truthiness.
func Location(record animal.Record) (string, bool) {
	value, ok := record.FirstLocation()
	if !ok {
		return "", false
	}
	return FormatValue(value), true
}

// Type finds the first characteristic, in document order, whose lowercase key
// is "type" and reports its value when truthy. Later case variants are
// ignored even if the first one is empty.
func Type(record animal.Record) (string, bool) {
	entry, ok := record.Characteristics().FindFold(typeKey)
	if !ok || !Truthy(entry.Value) {
		return "", false
	}
	return FormatValue(entry.Value), true
}
