package model

// Verdict is the final correctness decision for a submitted answer.
// Feedback is empty when the answer is correct. Exactly one adjudication
// path produces a verdict: a deterministic special rule or the semantic
// evaluator, never both.
type Verdict struct {
	Correct       bool   `json:"correct"`
	Feedback      string `json:"feedback"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// JudgmentContext is the per-request value object handed to the semantic
// evaluator. SpecialRules carries rendered descriptions of category rules
// that matched by category but were not dispositive, so the evaluator is
// informed even when no rule fired. Not persisted.
type JudgmentContext struct {
	Category      string
	ClueText      string
	Comments      string
	CorrectAnswer string
	UserAnswer    string
	SpecialRules  []string
}
