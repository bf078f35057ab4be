package service

import (
	_ "embed"
	"strings"
	"text/template"

	"jeopardai/internal/model"
	"jeopardai/internal/rules"
)

//go:embed judge_prompt.tmpl
var judgePromptSkeleton string

// loadPromptTemplate parses the fixed prompt skeleton at startup. A
// malformed skeleton is a configuration failure, not a runtime one.
func loadPromptTemplate() (*template.Template, error) {
	tmpl, err := template.New("judge").Parse(judgePromptSkeleton)
	if err != nil {
		return nil, model.NewConfigError("malformed judge prompt skeleton: %v", err)
	}
	return tmpl, nil
}

// BuildJudgmentContext assembles the evaluator context for a submission.
// Pure: no I/O. The matcher contributes rendered descriptions of category
// rules that were not dispositive, so the evaluator sees them even though
// none fired.
func BuildJudgmentContext(clue *model.Clue, userAnswer string, matcher *rules.Matcher) *model.JudgmentContext {
	return &model.JudgmentContext{
		Category:      clue.Category,
		ClueText:      clue.ClueText,
		Comments:      clue.Comments,
		CorrectAnswer: clue.CorrectAnswer,
		UserAnswer:    userAnswer,
		SpecialRules:  matcher.Descriptions(clue.Category),
	}
}

func renderPrompt(tmpl *template.Template, jc *model.JudgmentContext) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, jc); err != nil {
		return "", err
	}
	return sb.String(), nil
}
