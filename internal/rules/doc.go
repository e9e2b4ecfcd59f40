// Package rules defines the rule-document schema and its YAML loader.
//
// A rule document is a YAML file with a single required root key, "rules",
// holding an ordered list of rule records:
//
//	rules:
//	  - name: coffee
//	    active: true          # optional, default true
//	    properties: [erste_comment]
//	    matchers:
//	      - place: "^COFFEE"  # exactly one field: pattern pair per entry
//	    actions:
//	      update:
//	        Kategória: "coffee ({place})"
//
// Rules are loaded once and are read-only for the rest of the run. They are
// evaluated in file order, so the actions mapping is decoded through
// yaml.Node to preserve document order.
//
// Structural problems (missing root key, malformed actions mapping) surface
// as DefinitionError and are fatal: nothing is evaluated against a broken
// document. Condition-shape and pattern problems are also DefinitionError
// but are detected at match time, because an inactive rule must be allowed
// to carry a malformed matcher without aborting the run.
package rules
