package repository

import (
	"context"
	"fmt"

	"github.com/idueppe/vokabel-bot/internal/models"
	"github.com/lib/pq"
)

type VocablesR struct {
	db QueryI
}

func NewVocablesRepository(db QueryI) *VocablesR {
	return &VocablesR{db: db}
}

func (r *VocablesR) Vocables(ctx context.Context) ([]models.Vocable, error) {
	query := `SELECT id, german, english FROM vocables ORDER BY id`

	vocables := make([]models.Vocable, 0)
	if err := r.db.SelectContext(ctx, &vocables, query); err != nil {
		return nil, fmt.Errorf("failed to load vocables: %w", err)
	}

	return vocables, nil
}

// SaveVocables replaces the stored collection with the given one: rows
// missing from the new set are deleted, the rest upserted. Last writer wins.
func (r *VocablesR) SaveVocables(ctx context.Context, vocables []models.Vocable) error {
	ids := make([]int64, 0, len(vocables))
	for _, v := range vocables {
		ids = append(ids, int64(v.ID))
	}

	deleteQuery := `DELETE FROM vocables WHERE NOT (id = ANY($1))`
	if _, err := r.db.ExecContext(ctx, deleteQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to prune vocables: %w", err)
	}

	upsertQuery := `
		INSERT INTO vocables (id, german, english)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET german = EXCLUDED.german, english = EXCLUDED.english
	`
	for _, v := range vocables {
		if _, err := r.db.ExecContext(ctx, upsertQuery, v.ID, v.German, v.English); err != nil {
			return fmt.Errorf("failed to save vocable %d: %w", v.ID, err)
		}
	}

	return nil
}
