package engine

import (
	"log/slog"

	"github.com/csomaati/expensecat/internal/rules"
	"github.com/csomaati/expensecat/internal/table"
)

// evaluateRow runs one rule against one row and returns the replacement
// row set for that row's slot in the table.
//
// Terminal outcomes:
//   - Unchanged: extraction failed (logged), matcher said no, or an action
//     failed (logged). The original row passes through as a single-element
//     set, byte-identical to the input.
//   - Transformed: the row set produced by the action chain (cardinality
//     zero or more).
//
// The only returned errors are fatal structural ones
// (rules.DefinitionError from the matcher); per-row failures are absorbed
// here so the table-wide fold never aborts on a bad row.
func (e *Engine) evaluateRow(rule rules.Rule, row table.Row) ([]table.Row, error) {
	props, err := e.buildProperties(rule.Properties, row)
	if err != nil {
		slog.Error("property extraction failed, row passed through",
			"rule", rule.Name,
			"error", err,
		)
		return []table.Row{row}, nil
	}

	matched, err := matches(rule.Matchers, props)
	if err != nil {
		return nil, err
	}
	if !matched {
		return []table.Row{row}, nil
	}

	return e.applyActions(rule, row, props), nil
}

// applyActions folds the matched row through the rule's actions in
// document order. Action N consumes the row set produced by action N-1,
// every row of which receives the action independently.
//
// All-or-nothing per row: any failure anywhere in the chain - unknown
// action type, template error - discards the partial result and reverts to
// the original single-row set. A half-updated row is never visible.
func (e *Engine) applyActions(rule rules.Rule, row table.Row, props Properties) []table.Row {
	current := []table.Row{row}

	for _, spec := range rule.Actions {
		apply, ok := e.actions[spec.Type]
		if !ok {
			err := &ActionError{Action: spec.Type, Message: "no action registered for type"}
			slog.Error("action failed, row reverted",
				"rule", rule.Name,
				"action", spec.Type,
				"error", err,
			)
			return []table.Row{row}
		}

		next := make([]table.Row, 0, len(current))
		for _, r := range current {
			out, err := apply(r, spec.Params, props)
			if err != nil {
				slog.Error("action failed, row reverted",
					"rule", rule.Name,
					"action", spec.Type,
					"error", err,
				)
				return []table.Row{row}
			}
			next = append(next, out...)
		}
		current = next
	}

	return current
}
