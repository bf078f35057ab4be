package model

import "time"

// Round values for the two main game rounds.
const (
	RoundSingle = 1
	RoundDouble = 2
)

// Clue is a single trivia prompt with its canonical answer and metadata.
// Clues are immutable once loaded; the repository owns them.
type Clue struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Round         int       `json:"round" bson:"round"`
	Value         int       `json:"value" bson:"value"`
	IsDailyDouble bool      `json:"isDailyDouble" bson:"isDailyDouble"`
	Category      string    `json:"category" bson:"category"`
	Comments      string    `json:"comments,omitempty" bson:"comments,omitempty"`
	ClueText      string    `json:"clueText" bson:"clueText"`
	CorrectAnswer string    `json:"correctAnswer" bson:"correctAnswer"`
	AirDate       time.Time `json:"airDate" bson:"airDate"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

// BoardClue is the board-facing view of a clue, sorted by value within
// its category column.
type BoardClue struct {
	ID            string `json:"id"`
	Value         int    `json:"value"`
	IsDailyDouble bool   `json:"isDailyDouble"`
	ClueText      string `json:"clueText"`
	CorrectAnswer string `json:"correctAnswer"`
	AirDate       string `json:"airDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Board maps category name to its value-sorted clue column.
type Board map[string][]BoardClue
