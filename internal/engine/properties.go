package engine

import (
	"slices"

	"github.com/csomaati/expensecat/internal/table"
)

// Properties is the bag of derived facts about one row, keyed by property
// name. Bags are built fresh per (row, rule) evaluation and never shared
// across rows, so extractors may be called concurrently in principle.
//
// Values are the string forms that matchers test and templates substitute.
type Properties map[string]string

// Extractor derives a property bag from a single row.
//
// Extractors are pure: they must not mutate the row and must not carry
// state between calls. A failed extractor returns an ExtractionError (or
// any error, which the caller wraps); partial bags from a failed extractor
// are discarded.
type Extractor func(table.Row) (Properties, error)

// DefaultExtractor is the registry name of the extractor that exposes
// every column of the row as a property, unchanged. It never fails and is
// implicitly prepended to every rule's extractor list.
const DefaultExtractor = "default"

// extractDefault returns every column of the row as a property.
func extractDefault(row table.Row) (Properties, error) {
	props := make(Properties, len(row))
	for col, val := range row {
		if val == nil {
			val = table.Missing{}
		}
		props[col] = val.Format()
	}
	return props, nil
}

// buildProperties applies the named extractors in order and merges their
// bags left-to-right, later extractors overwriting earlier keys.
//
// The default extractor is prepended when absent (never duplicated). Any
// single failure - unknown extractor name or extractor error - aborts the
// whole build: the matcher never sees a partial bag.
func (e *Engine) buildProperties(names []string, row table.Row) (Properties, error) {
	if !slices.Contains(names, DefaultExtractor) {
		names = append([]string{DefaultExtractor}, names...)
	}

	props := make(Properties)
	for _, name := range names {
		extract, ok := e.extractors[name]
		if !ok {
			return nil, &ExtractionError{Extractor: name, Message: "unknown extractor"}
		}
		bag, err := extract(row)
		if err != nil {
			if IsExtractionError(err) {
				return nil, err
			}
			return nil, &ExtractionError{Extractor: name, Message: "extractor failed", Err: err}
		}
		for k, v := range bag {
			props[k] = v
		}
	}
	return props, nil
}
