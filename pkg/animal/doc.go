// Package animal exposes the data model and loader contracts for animal
// records. Records are decoded from JSON into an order-preserving form so the
// renderer can apply first-match rules deterministically. Loader
// implementations live under internal/animal.
package animal
