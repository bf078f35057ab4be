package rules

import (
	"strings"
	"unicode"

	"jeopardai/internal/model"
)

// Matcher evaluates category special rules against a submitted answer.
// It is pure and synchronous; it never calls the semantic evaluator.
type Matcher struct {
	table *Table
}

// NewMatcher creates a matcher over a loaded rule table.
func NewMatcher(table *Table) *Matcher {
	return &Matcher{table: table}
}

// Match evaluates the category's rules in insertion order. The first rule
// whose predicate is satisfied produces a correct Verdict immediately and
// later rules are not evaluated. If no rule is configured or none fires,
// Match returns (nil, false) and judging defers to the semantic evaluator.
func (m *Matcher) Match(category, userAnswer, correctAnswer string) (*model.Verdict, bool) {
	for _, rule := range m.table.RulesFor(category) {
		if rule.satisfied(userAnswer, correctAnswer) {
			return &model.Verdict{
				Correct:       true,
				UserAnswer:    userAnswer,
				CorrectAnswer: correctAnswer,
			}, true
		}
	}
	return nil, false
}

// Descriptions renders the evaluator-facing text of every rule configured
// for the category, for inclusion in the judgment context when no rule
// was dispositive.
func (m *Matcher) Descriptions(category string) []string {
	rs := m.table.RulesFor(category)
	if len(rs) == 0 {
		return nil
	}
	out := make([]string, 0, len(rs))
	for _, rule := range rs {
		out = append(out, rule.Describe())
	}
	return out
}

func (r *SpecialRule) satisfied(userAnswer, correctAnswer string) bool {
	switch r.Kind {
	case KindRhyme:
		target := r.Target
		if target == "" {
			target = correctAnswer
		}
		return Rhymes(userAnswer, target)
	case KindContainsLetter:
		want := unicode.ToLower([]rune(r.Letter)[0])
		return strings.ContainsRune(strings.ToLower(userAnswer), want)
	default:
		// CUSTOM_TEXT is advisory only.
		return false
	}
}
