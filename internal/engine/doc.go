// Package engine implements the rule evaluation and row-transformation core.
//
// For every active rule, in file order, the engine lifts a per-row pipeline
// over the whole table (table.FlatMap):
//
//  1. BuildProperties - run the rule's extractors over the row and merge
//     the resulting property bags (default extractor always included).
//  2. Match - AND all field->pattern prefix conditions over the bag.
//  3. ApplyActions - fold the row through the rule's actions in document
//     order; each action consumes the previous action's output rows.
//
// The result of rule i is the complete input table of rule i+1, so a rule
// that expanded a row is visible to all subsequent rules.
//
// ERROR ISOLATION:
// Per-row failures never abort the fold. An ExtractionError or ActionError
// is logged and the original row passes through that rule untouched -
// actions are all-or-nothing per row, a mid-chain failure discards every
// partial mutation. Only structural rule-document problems
// (rules.DefinitionError, e.g. a condition with more than one pair) are
// fatal.
//
// Evaluation is single-threaded and synchronous. Property bags are built
// fresh per (row, rule) pair and never shared, so nothing here needs a
// lock; the FlatMap independence contract is what would permit a parallel
// row loop, not a requirement to have one.
package engine
