package rules

import (
	"fmt"

	"jeopardai/internal/model"
)

// Kind enumerates the closed set of special-rule kinds. Definitions with an
// unknown kind are rejected at load time.
type Kind string

const (
	// KindRhyme accepts an answer that phonetically rhymes with the target
	// (the canonical answer unless the rule names its own target).
	KindRhyme Kind = "RHYME"

	// KindContainsLetter accepts an answer containing a required letter.
	KindContainsLetter Kind = "CONTAINS_LETTER"

	// KindCustomText never fires deterministically; its text is rendered
	// into the judgment context to steer the semantic evaluator.
	KindCustomText Kind = "CUSTOM_TEXT"
)

// SpecialRule is a deterministic override predicate for one category.
// Rules are immutable after load; evaluation order is insertion order and
// the first satisfied rule wins.
type SpecialRule struct {
	Category string `json:"category"`
	Kind     Kind   `json:"kind"`

	// Target overrides the rhyme target; defaults to the canonical answer.
	Target string `json:"target,omitempty"`

	// Letter is required for CONTAINS_LETTER.
	Letter string `json:"letter,omitempty"`

	// Text is required for CUSTOM_TEXT.
	Text string `json:"text,omitempty"`
}

// validate rejects unknown kinds and missing kind-specific parameters.
func (r *SpecialRule) validate() error {
	if r.Category == "" {
		return model.NewConfigError("special rule missing category")
	}
	switch r.Kind {
	case KindRhyme:
		// Target is optional.
	case KindContainsLetter:
		if len([]rune(r.Letter)) != 1 {
			return model.NewConfigError("CONTAINS_LETTER rule for %q needs a single letter, got %q", r.Category, r.Letter)
		}
	case KindCustomText:
		if r.Text == "" {
			return model.NewConfigError("CUSTOM_TEXT rule for %q needs text", r.Category)
		}
	default:
		return model.NewConfigError("unknown rule kind %q for category %q", r.Kind, r.Category)
	}
	return nil
}

// Describe renders the rule as evaluator-facing guidance.
func (r *SpecialRule) Describe() string {
	switch r.Kind {
	case KindRhyme:
		if r.Target != "" {
			return fmt.Sprintf("In this category the answer must rhyme with %q.", r.Target)
		}
		return "In this category the answer must rhyme with the correct answer."
	case KindContainsLetter:
		return fmt.Sprintf("In this category the answer must contain the letter %q.", r.Letter)
	default:
		return r.Text
	}
}
