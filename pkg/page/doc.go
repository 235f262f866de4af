// Package page substitutes rendered cards into a static HTML template and
// writes the finished page.
package page
