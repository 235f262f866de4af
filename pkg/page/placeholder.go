package page

import "strings"

// Placeholder marks where generated cards go in the template.
const Placeholder = "__REPLACE_ANIMALS_INFO__"

// Substitute replaces every occurrence of Placeholder in tmpl with fragment.
// A template without the token is returned unchanged.
func Substitute(tmpl, fragment string) string {
	return strings.ReplaceAll(tmpl, Placeholder, fragment)
}
