package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans a field value before it is embedded in a card.
type Sanitizer interface {
	Sanitize(value string) string
}

// SanitizerFunc adapts a function to the Sanitizer interface.
type SanitizerFunc func(string) string

// Sanitize calls f(value).
func (f SanitizerFunc) Sanitize(value string) string {
	return f(value)
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// StrictSanitizer strips all markup from values and escapes the remaining
// text. Card values are plain text, so no element is allowed through.
func StrictSanitizer() Sanitizer {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
