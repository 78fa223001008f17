package models

import "time"

type Vocable struct {
	ID      int    `db:"id" json:"id"`
	German  string `db:"german" json:"de"`
	English string `db:"english" json:"en"`
}

type ScoreRecord struct {
	Score         int        `json:"score"`
	LastPracticed *time.Time `json:"last_practiced"`
	LastCorrect   *time.Time `json:"last_correct"`
}

// DefaultedScore returns the stored record for a vocable or the zero record
// if none exists yet. The map is never mutated.
func DefaultedScore(scores map[int]ScoreRecord, vocableID int) ScoreRecord {
	if record, ok := scores[vocableID]; ok {
		return record
	}
	return ScoreRecord{}
}

type VocableWithScore struct {
	Vocable
	ScoreRecord
}
