package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule is one declarative classification rule.
//
// Rules are evaluated in file order. A rule lists the property extractors
// it needs, the conditions that must all hold on the derived properties,
// and the ordered actions to apply to a matching row.
type Rule struct {
	// Name identifies the rule in logs and diagnostics. Required.
	Name string `yaml:"name"`

	// Active disables the rule entirely when false. Optional, default true.
	// An inactive rule is never evaluated, not even its matchers.
	Active *bool `yaml:"active"`

	// Properties lists extractor names to run before matching. The
	// "default" extractor is implied and prepended when absent.
	Properties []string `yaml:"properties"`

	// Matchers are single-pair field->pattern conditions, ANDed together.
	// An empty list matches unconditionally.
	Matchers []Condition `yaml:"matchers"`

	// Actions to apply on match, in document order.
	Actions ActionList `yaml:"actions"`
}

// IsActive reports whether the rule participates in evaluation.
func (r Rule) IsActive() bool {
	return r.Active == nil || *r.Active
}

// Condition is one matcher entry: a property name mapped to a regex
// pattern that must match a prefix of the property's value.
//
// A well-formed condition holds exactly one pair. The shape is not
// enforced at decode time - the matcher rejects malformed conditions with
// a DefinitionError when (and only when) the owning rule is evaluated.
type Condition map[string]string

// UnmarshalYAML decodes a condition mapping, keeping scalar values in
// their literal source form (so `amount: 10` yields pattern "10").
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("matcher condition must be a mapping, got %s", nodeKind(node))
	}
	cond := make(Condition, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("matcher pattern for %q must be a scalar", key.Value)
		}
		cond[key.Value] = val.Value
	}
	*c = cond
	return nil
}

// ActionSpec is one action invocation: a registered action type plus its
// parameters. For the update action the parameters map column names to
// value templates.
type ActionSpec struct {
	Type   string
	Params map[string]string
}

// ActionList holds a rule's actions in document order.
//
// YAML mappings decode into Go maps with no order, so the list is decoded
// through yaml.Node: the source document's key order is the execution
// order.
type ActionList []ActionSpec

// UnmarshalYAML decodes the actions mapping preserving document order.
func (a *ActionList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("actions must be a mapping, got %s", nodeKind(node))
	}
	list := make(ActionList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.MappingNode {
			return fmt.Errorf("action %q parameters must be a mapping", key.Value)
		}
		params := make(map[string]string, len(val.Content)/2)
		for j := 0; j+1 < len(val.Content); j += 2 {
			pk, pv := val.Content[j], val.Content[j+1]
			if pv.Kind != yaml.ScalarNode {
				return fmt.Errorf("action %q parameter %q must be a scalar", key.Value, pk.Value)
			}
			params[pk.Value] = pv.Value
		}
		list = append(list, ActionSpec{Type: key.Value, Params: params})
	}
	*a = list
	return nil
}

// nodeKind names a yaml node kind for error messages.
func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.DocumentNode:
		return "document"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
