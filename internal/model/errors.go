package model

import (
	"errors"
	"fmt"
)

// Not-found sentinels, surfaced to callers as 404s.
var (
	ErrClueNotFound     = errors.New("clue not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ValidationError marks malformed caller input (bad round value, empty
// answer). Surfaced as a 400, never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// EvaluatorError marks a failed external judgment call: network failure,
// timeout, or a response that does not conform to the verdict schema.
// It is a service failure, distinct from "answer judged incorrect", and is
// never converted into a Verdict.
type EvaluatorError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *EvaluatorError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("evaluator %s: timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("evaluator %s: %v", e.Op, e.Err)
}

func (e *EvaluatorError) Unwrap() error { return e.Err }

// ConfigError marks a malformed static definition (special rules, prompt
// skeleton) or missing credential. Fatal at startup; the process must not
// begin serving.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
