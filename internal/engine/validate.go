package engine

import (
	"fmt"

	"github.com/csomaati/expensecat/internal/rules"
)

// ValidateRules checks a rule list against the engine's registries and the
// matcher's structural requirements, without touching any row.
//
// All problems are collected rather than stopping at the first, so a rule
// author sees every issue in one pass. Inactive rules are validated too -
// they are skipped at run time but a broken definition is still worth
// reporting.
func (e *Engine) ValidateRules(list []rules.Rule) []error {
	var errs []error

	report := func(rule, format string, args ...any) {
		errs = append(errs, &rules.DefinitionError{
			Rule:    rule,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, rule := range list {
		for _, name := range rule.Properties {
			if _, ok := e.extractors[name]; !ok {
				report(rule.Name, "unknown extractor %q", name)
			}
		}

		for i, cond := range rule.Matchers {
			if len(cond) != 1 {
				report(rule.Name, "matcher #%d must hold exactly one field: pattern pair, got %d", i+1, len(cond))
				continue
			}
			for field, pattern := range cond {
				if _, err := compilePrefix(pattern); err != nil {
					report(rule.Name, "matcher #%d: invalid pattern for field %q: %v", i+1, field, err)
				}
			}
		}

		for _, spec := range rule.Actions {
			if _, ok := e.actions[spec.Type]; !ok {
				report(rule.Name, "unknown action type %q", spec.Type)
			}
		}
	}

	return errs
}
