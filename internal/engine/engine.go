package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/csomaati/expensecat/internal/rules"
	"github.com/csomaati/expensecat/internal/table"
)

// Engine evaluates a rule list over a ledger table.
//
// Extractors and actions are registry-based: rule documents reference them
// by name, and lookup failure is a defined error kind (ExtractionError /
// ActionError), never a crash. The built-in registries cover "default" and
// "erste_comment" extractors and the "update" action; callers extend them
// with options.
//
// An Engine is read-only after construction and safe to reuse across runs.
type Engine struct {
	extractors map[string]Extractor
	actions    map[string]Action
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithExtractor registers (or replaces) a named property extractor.
func WithExtractor(name string, fn Extractor) Option {
	return func(e *Engine) {
		e.extractors[name] = fn
	}
}

// WithAction registers (or replaces) a named action executor.
func WithAction(name string, fn Action) Option {
	return func(e *Engine) {
		e.actions[name] = fn
	}
}

// New creates an Engine with the built-in registries plus any options.
func New(opts ...Option) *Engine {
	e := &Engine{
		extractors: map[string]Extractor{
			DefaultExtractor:      extractDefault,
			ErsteCommentExtractor: extractErsteComment,
		},
		actions: map[string]Action{
			UpdateAction: updateAction,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply folds the table through every active rule in file order and
// returns the final table.
//
// Inactive rules are skipped entirely - their matchers are never
// evaluated. The output of rule i is the complete input of rule i+1, so
// rows created by an expanding rule are visible to all subsequent rules.
//
// The input table is not modified; per-row failures are logged and
// isolated (see evaluateRow). The returned error is non-nil only for
// fatal structural problems or context cancellation.
func (e *Engine) Apply(ctx context.Context, tbl table.Table, list []rules.Rule) (table.Table, error) {
	active := rules.Active(list)
	slog.Info("applying rules", "rules", len(active), "rows", tbl.Len())

	for _, rule := range active {
		if err := ctx.Err(); err != nil {
			return table.Table{}, err
		}

		slog.Debug("checking rule", "rule", rule.Name, "rows", tbl.Len())

		next, err := tbl.FlatMap(func(row table.Row) ([]table.Row, error) {
			return e.evaluateRow(rule, row)
		})
		if err != nil {
			return table.Table{}, fmt.Errorf("apply rule %q: %w", rule.Name, err)
		}
		tbl = next
	}

	return tbl, nil
}
