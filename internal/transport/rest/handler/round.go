package handler

import (
	"net/http"
	"strconv"

	"jeopardai/internal/service"

	"github.com/gorilla/mux"
)

// BoardHandler handles round board endpoints
type BoardHandler struct {
	boardSvc *service.BoardService
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardSvc *service.BoardService) *BoardHandler {
	return &BoardHandler{boardSvc: boardSvc}
}

// GetRound handles GET /v1/rounds/{round}?category=
func (h *BoardHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(mux.Vars(r)["round"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "round must be a number")
		return
	}

	category := r.URL.Query().Get("category")

	board, err := h.boardSvc.Board(r.Context(), round, category)
	if err != nil {
		writeJudgingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, board)
}
