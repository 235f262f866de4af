// Package render turns animal records into HTML card fragments.
//
// Field values are embedded verbatim unless a Sanitizer is configured, which
// keeps output byte-identical to the historical pages. Do not feed untrusted
// data through the default renderer: raw values are an HTML injection vector.
package render
