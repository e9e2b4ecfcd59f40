package engine

import (
	"fmt"
	"sort"

	"github.com/csomaati/expensecat/internal/table"
)

// Action applies one registered operation to a single row and returns the
// replacement set of rows.
//
// The contract deliberately does not assume 1:1 cardinality: an action may
// return zero rows (drop), one row (keep/mutate), or many (split). Input
// rows are read-only - mutating actions clone first.
type Action func(row table.Row, params map[string]string, props Properties) ([]table.Row, error)

// UpdateAction is the registry name of the column-update action.
const UpdateAction = "update"

// updateAction sets row columns from templates rendered against the
// property bag.
//
// Each parameter maps a column name to a template; columns absent from the
// row are silently skipped, so a rule written against a superset of
// columns still applies, and an update can never add a column. A template
// referencing an undefined property is an ActionError.
//
// Always 1:1 - returns a single mutated copy, the original is untouched.
func updateAction(row table.Row, params map[string]string, props Properties) ([]table.Row, error) {
	updated := row.Clone()
	cols := make([]string, 0, len(params))
	for col := range params {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		if !updated.Has(col) {
			continue
		}
		rendered, err := renderTemplate(params[col], props)
		if err != nil {
			return nil, &ActionError{
				Action:  UpdateAction,
				Message: fmt.Sprintf("render value for column %q", col),
				Err:     err,
			}
		}
		updated[col] = table.Text(rendered)
	}
	return []table.Row{updated}, nil
}
