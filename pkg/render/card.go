package render

import (
	"strings"

	"github.com/goliatone/go-animalpage/pkg/animal"
)

// DefaultFallbackName is the heading for records that carry no name.
const DefaultFallbackName = "Unnamed Animal"

const (
	cardOpen = "\n        <li class=\"cards__item\">\n            <h2 class=\"card__title\">"
	cardBody = "</h2>\n            <div class=\"card__text\">\n        "
	cardEnd  = "            </div>\n        </li>"

	cardSeparator = "\n"
)

// CardRenderer renders the historical "cards__item" markup.
type CardRenderer struct {
	sanitizer    Sanitizer
	fallbackName string
}

var _ Renderer = (*CardRenderer)(nil)

// New constructs a CardRenderer.
func New(options ...Option) *CardRenderer {
	r := &CardRenderer{fallbackName: DefaultFallbackName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var defaultRenderer = New()

// Card renders record with the default renderer.
func Card(record animal.Record) string {
	return defaultRenderer.Card(record)
}

// Cards renders collection with the default renderer.
func Cards(collection animal.Collection) string {
	return defaultRenderer.Cards(collection)
}

// Card renders one record. Lines are emitted in the fixed order Diet,
// Location, Type, each only when the record qualifies for it.
func (r *CardRenderer) Card(record animal.Record) string {
	var b strings.Builder
	b.WriteString(cardOpen)
	b.WriteString(r.clean(r.headingFor(record)))
	b.WriteString(cardBody)

	for _, line := range Lines(record) {
		b.WriteString("<p><strong>")
		b.WriteString(line.Label)
		b.WriteString(":</strong> ")
		b.WriteString(r.clean(line.Value))
		b.WriteString("</p>\n")
	}

	b.WriteString(cardEnd)
	return b.String()
}

// Cards renders every object entry in input order and joins the cards with a
// newline. Non-object entries are skipped.
func (r *CardRenderer) Cards(collection animal.Collection) string {
	records := collection.Records()
	cards := make([]string, 0, len(records))
	for _, record := range records {
		cards = append(cards, r.Card(record))
	}
	return strings.Join(cards, cardSeparator)
}

func (r *CardRenderer) headingFor(record animal.Record) string {
	if name, ok := Name(record); ok {
		return name
	}
	return r.fallbackName
}

func (r *CardRenderer) clean(value string) string {
	if r.sanitizer == nil {
		return value
	}
	return r.sanitizer.Sanitize(value)
}
