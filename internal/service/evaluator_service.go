package service

import (
	"context"
	"encoding/json"
	"errors"
	"text/template"
	"time"

	"jeopardai/internal/config"
	"jeopardai/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// Evaluator is the semantic judgment contract. The engine consumes the
// verdict; evaluator failures surface as *model.EvaluatorError, never as a
// judged answer.
type Evaluator interface {
	Judge(ctx context.Context, jc *model.JudgmentContext) (*model.Verdict, error)
}

// EvaluatorService invokes the external AI evaluator over an
// OpenAI-compatible API. It is the only judging component that performs
// network I/O: one attempt per request, no retries, timeout from config.
type EvaluatorService struct {
	config *config.AIConfig
	client *openai.Client
	prompt *template.Template
}

// NewEvaluatorService creates an evaluator client. It validates the
// credential and parses the prompt skeleton up front so a misconfigured
// process never starts serving.
func NewEvaluatorService(cfg *config.AIConfig) (*EvaluatorService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := loadPromptTemplate()
	if err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &EvaluatorService{
		config: cfg,
		client: openai.NewClientWithConfig(clientConfig),
		prompt: tmpl,
	}, nil
}

// judgment is the structured response the evaluator must return.
// Correct is a pointer so a response missing the field is rejected as
// schema-nonconforming instead of silently judged incorrect.
type judgment struct {
	Correct  *bool  `json:"correct"`
	Feedback string `json:"feedback"`
}

// Judge renders the prompt for a judgment context and returns the
// evaluator's verdict.
func (s *EvaluatorService) Judge(ctx context.Context, jc *model.JudgmentContext) (*model.Verdict, error) {
	prompt, err := renderPrompt(s.prompt, jc)
	if err != nil {
		return nil, &model.EvaluatorError{Op: "render prompt", Err: err}
	}

	timeout := time.Duration(s.config.TimeoutMS) * time.Millisecond
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &model.EvaluatorError{
			Op:      "judge",
			Timeout: errors.Is(err, context.DeadlineExceeded),
			Err:     err,
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &model.EvaluatorError{Op: "judge", Err: errors.New("empty response from evaluator")}
	}

	var j judgment
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &j); err != nil {
		return nil, &model.EvaluatorError{Op: "parse verdict", Err: err}
	}
	if j.Correct == nil {
		return nil, &model.EvaluatorError{Op: "parse verdict", Err: errors.New("response missing correct field")}
	}

	verdict := &model.Verdict{
		Correct:       *j.Correct,
		Feedback:      j.Feedback,
		UserAnswer:    jc.UserAnswer,
		CorrectAnswer: jc.CorrectAnswer,
	}
	if verdict.Correct {
		// Feedback accompanies incorrect answers only.
		verdict.Feedback = ""
	}
	return verdict, nil
}
