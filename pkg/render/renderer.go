package render

import (
	"github.com/goliatone/go-animalpage/pkg/animal"
)

// Renderer converts animal records into HTML fragments. Rendering never fails;
// missing fields are omitted from the output.
type Renderer interface {
	Card(record animal.Record) string
	Cards(collection animal.Collection) string
}
