package pipeline

import (
	"github.com/goliatone/go-animalpage/pkg/animal"
)

// Reporter receives progress notifications as stages complete. Callbacks run
// on the caller's goroutine between stages.
type Reporter interface {
	Loaded(collection animal.Collection)
	Rendered(cards int)
	Written(path string)
}

type nopReporter struct{}

func (nopReporter) Loaded(animal.Collection) {}
func (nopReporter) Rendered(int)             {}
func (nopReporter) Written(string)           {}
