package engine

import (
	"fmt"
	"regexp"

	"github.com/csomaati/expensecat/internal/rules"
)

// matches reports whether all conditions hold against the property bag.
//
// Each condition names one property and a regex pattern; the condition
// holds iff the pattern matches a prefix of the property's value
// (match-at-start, not full-string). A condition naming a property absent
// from the bag is simply not satisfied - no error.
//
// An empty condition list matches unconditionally.
//
// The only errors are structural: a condition with other than exactly one
// pair, or an uncompilable pattern, is a rules.DefinitionError. These are
// fatal to the run, distinct from a normal non-match.
func matches(conds []rules.Condition, props Properties) (bool, error) {
	for _, cond := range conds {
		ok, err := checkCondition(cond, props)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// checkCondition evaluates a single field->pattern condition.
func checkCondition(cond rules.Condition, props Properties) (bool, error) {
	if len(cond) != 1 {
		return false, &rules.DefinitionError{
			Message: fmt.Sprintf("matcher condition must hold exactly one field: pattern pair, got %d", len(cond)),
		}
	}

	var field, pattern string
	for k, v := range cond {
		field, pattern = k, v
	}

	value, ok := props[field]
	if !ok {
		return false, nil
	}

	re, err := compilePrefix(pattern)
	if err != nil {
		return false, &rules.DefinitionError{
			Message: fmt.Sprintf("invalid matcher pattern for field %q", field),
			Err:     err,
		}
	}
	return re.MatchString(value), nil
}

// compilePrefix compiles pattern anchored to the start of the subject,
// giving match-at-start semantics regardless of how the pattern itself is
// written.
func compilePrefix(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)`)
}
