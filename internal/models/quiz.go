package models

import "time"

type Direction string

const (
	DirectionDeEn Direction = "de_en"
	DirectionEnDe Direction = "en_de"
)

type AnswerResult struct {
	VocableID      int       `json:"vocable_id"`
	German         string    `json:"german"`
	English        string    `json:"english"`
	Direction      Direction `json:"direction"`
	UserAnswer     string    `json:"user_answer"`
	ExpectedAnswer string    `json:"expected_answer"`
	WasCorrect     bool      `json:"was_correct"`
}

type SessionRecord struct {
	Timestamp time.Time      `json:"timestamp"`
	Total     int            `json:"total"`
	Correct   int            `json:"correct"`
	Results   []AnswerResult `json:"results"`
}

// Question is the read-only view of the current quiz position.
type Question struct {
	Prompt    string
	Direction Direction
	VocableID int
	German    string
	English   string
	Index     int
	Total     int
}

type Feedback struct {
	WasCorrect     bool
	ExpectedAnswer string
	UserAnswer     string
}

type QuizResults struct {
	Total   int
	Correct int
	Results []AnswerResult
}
