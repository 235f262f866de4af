// Package pipeline coordinates the load → render → assemble sequence that
// produces an animal page. Stages run synchronously and in order; any failure
// aborts the run before the page is written.
package pipeline
