package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/idueppe/vokabel-bot/internal/models"
)

type SessionsR struct {
	db QueryI
}

func NewSessionsRepository(db QueryI) *SessionsR {
	return &SessionsR{db: db}
}

type sessionRow struct {
	CreatedAt time.Time `db:"created_at"`
	Total     int       `db:"total"`
	Correct   int       `db:"correct"`
	Results   []byte    `db:"results"`
}

// Sessions returns the history in append order, oldest first.
func (r *SessionsR) Sessions(ctx context.Context) ([]models.SessionRecord, error) {
	query := `SELECT created_at, total, correct, results FROM quiz_sessions ORDER BY id`

	rows := make([]sessionRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}

	sessions := make([]models.SessionRecord, 0, len(rows))
	for _, row := range rows {
		record := models.SessionRecord{
			Timestamp: row.CreatedAt,
			Total:     row.Total,
			Correct:   row.Correct,
		}
		if err := json.Unmarshal(row.Results, &record.Results); err != nil {
			return nil, fmt.Errorf("failed to decode session results: %w", err)
		}
		sessions = append(sessions, record)
	}

	return sessions, nil
}

func (r *SessionsR) AppendSession(ctx context.Context, record models.SessionRecord) error {
	results, err := json.Marshal(record.Results)
	if err != nil {
		return fmt.Errorf("failed to encode session results: %w", err)
	}

	query := `
		INSERT INTO quiz_sessions (created_at, total, correct, results)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, record.Timestamp, record.Total, record.Correct, results); err != nil {
		return fmt.Errorf("failed to append session: %w", err)
	}

	return nil
}
