// Package table provides the in-memory ledger representation.
//
// A Table is an ordered sequence of Rows under a fixed header. Rows are
// value-like: cloning a row yields an independent copy, so any stage of the
// pipeline can mutate its copy without disturbing siblings.
//
// Cell values are a sealed scalar set (Text, Number, Missing) - see value.go.
// No float/int distinction is imposed on CSV input; untyped sources load as
// Text or Missing and keep their exact byte representation through the run.
//
// FlatMap is the row-multiplication primitive: it lifts a per-row function
// returning zero or more rows to a whole-table transformation that preserves
// input order. Rows are identified positionally during one lift, never by a
// synthetic identifier.
package table
