package service

import (
	"context"
	"fmt"
	"testing"

	"jeopardai/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardRepo builds a repo with full five-value columns for the given
// categories in round 1.
func boardRepo(t *testing.T, categories ...string) *fakeRepo {
	t.Helper()
	repo := newFakeRepo()
	aired := airDate(2024, 5, 10)
	for ci, category := range categories {
		for vi, value := range []int{200, 400, 600, 800, 1000} {
			clue := &model.Clue{
				ID:            fmt.Sprintf("%s-%d", category, value),
				Round:         1,
				Value:         value,
				Category:      category,
				ClueText:      fmt.Sprintf("clue %d-%d", ci, vi),
				CorrectAnswer: fmt.Sprintf("answer %d-%d", ci, vi),
				AirDate:       aired,
			}
			require.NoError(t, repo.InsertMany(context.Background(), []*model.Clue{clue}))
		}
	}
	return repo
}

func TestBoard_InvalidRound(t *testing.T) {
	svc := NewBoardService(boardRepo(t, "HISTORY"))

	for _, round := range []int{0, 3, -1} {
		t.Run(fmt.Sprintf("round %d", round), func(t *testing.T) {
			board, err := svc.Board(context.Background(), round, "")
			assert.Nil(t, board, "invalid round must never yield an empty success board")

			var validationErr *model.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestBoard_ColumnsSortedByValue(t *testing.T) {
	svc := NewBoardService(boardRepo(t, "HISTORY", "SCIENCE"))

	board, err := svc.Board(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, board, 2)

	for category, column := range board {
		require.Len(t, column, 5, "category %s", category)
		values := make([]int, 0, len(column))
		for _, clue := range column {
			values = append(values, clue.Value)
		}
		assert.Equal(t, []int{200, 400, 600, 800, 1000}, values)
	}
}

func TestBoard_PinsRequestedCategory(t *testing.T) {
	svc := NewBoardService(boardRepo(t, "HISTORY", "SCIENCE", "OPERA"))

	board, err := svc.Board(context.Background(), 1, "OPERA")
	require.NoError(t, err)
	assert.Contains(t, board, "OPERA")
}

func TestBoard_UnknownRequestedCategory(t *testing.T) {
	svc := NewBoardService(boardRepo(t, "HISTORY"))

	_, err := svc.Board(context.Background(), 1, "UNDERWATER BASKET WEAVING")
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
}

func TestBoard_EmptyRound(t *testing.T) {
	svc := NewBoardService(newFakeRepo())

	_, err := svc.Board(context.Background(), 2, "")
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
}

func TestBoard_FallsBackToOlderAirDateWithFullColumn(t *testing.T) {
	repo := newFakeRepo()
	newest := airDate(2024, 6, 1)
	older := airDate(2020, 2, 2)

	// Newest air date has a partial column; the older one is complete.
	var clues []*model.Clue
	for _, value := range []int{200, 400} {
		clues = append(clues, &model.Clue{
			ID: fmt.Sprintf("new-%d", value), Round: 1, Value: value,
			Category: "HISTORY", AirDate: newest,
		})
	}
	for _, value := range []int{200, 400, 600, 800, 1000} {
		clues = append(clues, &model.Clue{
			ID: fmt.Sprintf("old-%d", value), Round: 1, Value: value,
			Category: "HISTORY", AirDate: older,
		})
	}
	require.NoError(t, repo.InsertMany(context.Background(), clues))

	svc := NewBoardService(repo)
	board, err := svc.Board(context.Background(), 1, "")
	require.NoError(t, err)

	column := board["HISTORY"]
	require.Len(t, column, 5)
	assert.Equal(t, older.Format("2006-01-02"), column[0].AirDate)
}

// Round-trip: every board clue judged with its own canonical answer comes
// back correct when its category has no adversarial special rule.
func TestBoard_RoundTripThroughJudging(t *testing.T) {
	repo := boardRepo(t, "HISTORY", "SCIENCE")
	boardSvc := NewBoardService(repo)
	evaluator := &fakeEvaluator{}
	judgeSvc := NewJudgeService(repo, nil, nil, testMatcher(t), evaluator)

	board, err := boardSvc.Board(context.Background(), 1, "")
	require.NoError(t, err)
	require.NotEmpty(t, board)

	for category, column := range board {
		for _, clue := range column {
			verdict, err := judgeSvc.JudgeAnswer(context.Background(), clue.ID, clue.CorrectAnswer)
			require.NoError(t, err, "category %s clue %s", category, clue.ID)
			assert.True(t, verdict.Correct, "category %s clue %s", category, clue.ID)
		}
	}
}
