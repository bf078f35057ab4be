package service

import (
	"context"
	"log"

	"jeopardai/internal/model"
	"jeopardai/internal/repository"
)

const (
	boardCategories = 6
	boardColumnSize = 5
)

// BoardService builds the categorized, value-sorted clue board for a round.
type BoardService struct {
	repo repository.ClueRepo
}

// NewBoardService creates a new board service.
func NewBoardService(repo repository.ClueRepo) *BoardService {
	return &BoardService{repo: repo}
}

// Board assembles a round's board: six random categories (five plus the
// pinned category when one is requested), each filled from the newest air
// date that yields a full value column.
//
// Errors: *model.ValidationError for a round outside {1, 2} and
// model.ErrCategoryNotFound for an unknown requested category or a round
// with no categories at all.
func (s *BoardService) Board(ctx context.Context, round int, category string) (model.Board, error) {
	if round != model.RoundSingle && round != model.RoundDouble {
		return nil, model.NewValidationError("round must be 1 (Single Jeopardy) or 2 (Double Jeopardy)")
	}

	want := boardCategories
	if category != "" {
		exists, err := s.repo.CategoryExists(ctx, category)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrCategoryNotFound
		}
		want = boardCategories - 1
	}

	categories, err := s.repo.RandomCategories(ctx, round, want)
	if err != nil {
		return nil, err
	}

	if category != "" {
		pinned := []string{category}
		for _, c := range categories {
			if c != category && len(pinned) < boardCategories {
				pinned = append(pinned, c)
			}
		}
		categories = pinned
	}

	if len(categories) == 0 {
		return nil, model.ErrCategoryNotFound
	}

	board := make(model.Board, len(categories))
	for _, cat := range categories {
		column, err := s.boardColumn(ctx, cat, round)
		if err != nil {
			return nil, err
		}
		board[cat] = column
	}
	return board, nil
}

// boardColumn walks a category's air dates, newest first, until one yields
// a full column of distinct values.
func (s *BoardService) boardColumn(ctx context.Context, category string, round int) ([]model.BoardClue, error) {
	airDates, err := s.repo.AirDates(ctx, category, round)
	if err != nil {
		return nil, err
	}

	var clues []*model.Clue
	for _, airDate := range airDates {
		clues, err = s.repo.BoardColumn(ctx, category, round, airDate)
		if err != nil {
			return nil, err
		}
		if len(clues) == boardColumnSize {
			break
		}
	}

	if len(clues) != boardColumnSize {
		log.Printf("could not fill a %d-clue column for category %q round %d; serving %d", boardColumnSize, category, round, len(clues))
	}

	column := make([]model.BoardClue, 0, len(clues))
	for _, clue := range clues {
		view := model.BoardClue{
			ID:            clue.ID,
			Value:         clue.Value,
			IsDailyDouble: clue.IsDailyDouble,
			ClueText:      clue.ClueText,
			CorrectAnswer: clue.CorrectAnswer,
			Notes:         clue.Notes,
		}
		if !clue.AirDate.IsZero() {
			view.AirDate = clue.AirDate.Format("2006-01-02")
		}
		column = append(column, view)
	}
	return column, nil
}
