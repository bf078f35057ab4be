package rules

import (
	_ "embed"
	"encoding/json"
	"strings"

	"jeopardai/internal/model"
)

//go:embed rules.json
var defaultRules []byte

// Table is the read-only special-rule table, keyed by category. It is
// loaded once at startup; a malformed definition keeps the process from
// starting. No mutation API exists past Load.
type Table struct {
	byCategory map[string][]SpecialRule
}

// Load parses and validates a rule definition document. Insertion order
// within a category is preserved for first-match-wins evaluation.
func Load(data []byte) (*Table, error) {
	var defs []SpecialRule
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, model.NewConfigError("malformed special-rule definition: %v", err)
	}

	t := &Table{byCategory: make(map[string][]SpecialRule, len(defs))}
	for i := range defs {
		if err := defs[i].validate(); err != nil {
			return nil, err
		}
		key := categoryKey(defs[i].Category)
		t.byCategory[key] = append(t.byCategory[key], defs[i])
	}
	return t, nil
}

// LoadDefault loads the rule definition embedded in the binary.
func LoadDefault() (*Table, error) {
	return Load(defaultRules)
}

// RulesFor returns the ordered rule sequence for a category; possibly empty.
func (t *Table) RulesFor(category string) []SpecialRule {
	return t.byCategory[categoryKey(category)]
}

// categoryKey normalizes category names: the archive data is inconsistent
// about case and surrounding whitespace.
func categoryKey(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}
