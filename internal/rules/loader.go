package rules

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a rule document and returns every rule in file order,
// including inactive ones. Use Active to filter before evaluation.
//
// The document must carry a "rules" root key; its absence, a non-mapping
// root, or any malformed rule record is a fatal DefinitionError.
func Load(r io.Reader) ([]Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rule document: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DefinitionError{Message: "malformed YAML", Err: err}
	}

	rulesNode := lookupRoot(&doc, "rules")
	if rulesNode == nil {
		return nil, &DefinitionError{Message: `missing "rules" root key`}
	}

	var list []Rule
	if err := rulesNode.Decode(&list); err != nil {
		return nil, &DefinitionError{Message: "malformed rule list", Err: err}
	}

	for i, rule := range list {
		if rule.Name == "" {
			return nil, &DefinitionError{Message: fmt.Sprintf("rule #%d has no name", i+1)}
		}
		if len(rule.Actions) == 0 {
			return nil, &DefinitionError{Rule: rule.Name, Message: "rule has no actions"}
		}
	}

	slog.Info("rule document loaded", "rules", len(list), "active", len(Active(list)))
	return list, nil
}

// LoadFile loads a rule document from disk.
func LoadFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Active returns the rules with an unset or true active flag, preserving
// file order.
func Active(list []Rule) []Rule {
	out := make([]Rule, 0, len(list))
	for _, r := range list {
		if r.IsActive() {
			out = append(out, r)
		}
	}
	return out
}

// lookupRoot finds a top-level mapping key in a decoded YAML document.
func lookupRoot(doc *yaml.Node, key string) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			return root.Content[i+1]
		}
	}
	return nil
}
