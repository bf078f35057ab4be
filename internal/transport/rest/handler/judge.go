package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jeopardai/internal/model"
	"jeopardai/internal/service"
)

// JudgeHandler handles answer judging endpoints
type JudgeHandler struct {
	judgeSvc *service.JudgeService
}

// NewJudgeHandler creates a new judge handler
func NewJudgeHandler(judgeSvc *service.JudgeService) *JudgeHandler {
	return &JudgeHandler{judgeSvc: judgeSvc}
}

// SubmitAnswerRequest is the request body for judging an answer
type SubmitAnswerRequest struct {
	ClueID     string `json:"clueId"`
	UserAnswer string `json:"userAnswer"`
}

// SubmitAnswer handles POST /v1/answers
func (h *JudgeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	verdict, err := h.judgeSvc.JudgeAnswer(r.Context(), req.ClueID, req.UserAnswer)
	if err != nil {
		writeJudgingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, verdict)
}

// writeJudgingError maps the error taxonomy onto HTTP statuses. An
// evaluator failure is a gateway failure, never an "incorrect" verdict.
func writeJudgingError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	var evaluatorErr *model.EvaluatorError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Msg)
	case errors.Is(err, model.ErrClueNotFound), errors.Is(err, model.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &evaluatorErr):
		log.Printf("evaluator failure: %v", err)
		writeError(w, http.StatusBadGateway, "answer evaluation is unavailable")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
