package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/idueppe/vokabel-bot/internal/models"
	"github.com/lib/pq"
)

type ScoresR struct {
	db QueryI
}

func NewScoresRepository(db QueryI) *ScoresR {
	return &ScoresR{db: db}
}

type scoreRow struct {
	VocableID     int        `db:"vocable_id"`
	Score         int        `db:"score"`
	LastPracticed *time.Time `db:"last_practiced"`
	LastCorrect   *time.Time `db:"last_correct"`
}

func (r *ScoresR) Scores(ctx context.Context) (map[int]models.ScoreRecord, error) {
	query := `SELECT vocable_id, score, last_practiced, last_correct FROM scores`

	rows := make([]scoreRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	scores := make(map[int]models.ScoreRecord, len(rows))
	for _, row := range rows {
		scores[row.VocableID] = models.ScoreRecord{
			Score:         row.Score,
			LastPracticed: row.LastPracticed,
			LastCorrect:   row.LastCorrect,
		}
	}

	return scores, nil
}

// SaveScores replaces the stored score map. Records absent from the new map
// are deleted so vocable deletion cascades in one save.
func (r *ScoresR) SaveScores(ctx context.Context, scores map[int]models.ScoreRecord) error {
	ids := make([]int64, 0, len(scores))
	for id := range scores {
		ids = append(ids, int64(id))
	}

	deleteQuery := `DELETE FROM scores WHERE NOT (vocable_id = ANY($1))`
	if _, err := r.db.ExecContext(ctx, deleteQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to prune scores: %w", err)
	}

	upsertQuery := `
		INSERT INTO scores (vocable_id, score, last_practiced, last_correct)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vocable_id)
		DO UPDATE SET
			score = EXCLUDED.score,
			last_practiced = EXCLUDED.last_practiced,
			last_correct = EXCLUDED.last_correct
	`
	for id, record := range scores {
		if _, err := r.db.ExecContext(ctx, upsertQuery, id, record.Score, record.LastPracticed, record.LastCorrect); err != nil {
			return fmt.Errorf("failed to save score for vocable %d: %w", id, err)
		}
	}

	return nil
}
