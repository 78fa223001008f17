package service

import (
	"context"
	"strings"

	"github.com/idueppe/vokabel-bot/internal/models"
	"go.uber.org/zap"
)

type VocableRI interface {
	Vocables(ctx context.Context) ([]models.Vocable, error)
	SaveVocables(ctx context.Context, vocables []models.Vocable) error
	Scores(ctx context.Context) (map[int]models.ScoreRecord, error)
	SaveScores(ctx context.Context, scores map[int]models.ScoreRecord) error
}

type VocableS struct {
	repo VocableRI
	log  *zap.Logger
}

func NewVocableService(repo VocableRI, log *zap.Logger) *VocableS {
	return &VocableS{
		repo: repo,
		log:  log,
	}
}

// AddVocable stores a new word pair and materializes its zero score record.
// Ids are monotonic: max of the existing ids plus one, or 1 for the first
// vocable.
func (v *VocableS) AddVocable(ctx context.Context, german, english string) (int, error) {
	german = strings.TrimSpace(german)
	english = strings.TrimSpace(english)
	if german == "" || english == "" {
		return 0, ErrInvalidVocable
	}

	vocables, err := v.repo.Vocables(ctx)
	if err != nil {
		v.log.Error("failed to load vocables", zap.Error(err))
		return 0, err
	}

	scores, err := v.repo.Scores(ctx)
	if err != nil {
		v.log.Error("failed to load scores", zap.Error(err))
		return 0, err
	}

	nextID := 1
	for _, vocable := range vocables {
		if vocable.ID >= nextID {
			nextID = vocable.ID + 1
		}
	}

	vocables = append(vocables, models.Vocable{
		ID:      nextID,
		German:  german,
		English: english,
	})

	updated := make(map[int]models.ScoreRecord, len(scores)+1)
	for id, record := range scores {
		updated[id] = record
	}
	updated[nextID] = models.DefaultedScore(updated, nextID)

	if err := v.repo.SaveVocables(ctx, vocables); err != nil {
		v.log.Error("failed to save vocables", zap.Error(err))
		return 0, err
	}

	if err := v.repo.SaveScores(ctx, updated); err != nil {
		v.log.Error("failed to save scores", zap.Error(err))
		return 0, err
	}

	v.log.Info("vocable added", zap.Int("id", nextID), zap.String("german", german))

	return nextID, nil
}

// DeleteVocable removes a vocable and its score record. A missing id is
// reported as ErrVocableNotFound, not treated as fatal.
func (v *VocableS) DeleteVocable(ctx context.Context, id int) error {
	vocables, err := v.repo.Vocables(ctx)
	if err != nil {
		v.log.Error("failed to load vocables", zap.Error(err))
		return err
	}

	remaining := make([]models.Vocable, 0, len(vocables))
	for _, vocable := range vocables {
		if vocable.ID != id {
			remaining = append(remaining, vocable)
		}
	}

	if len(remaining) == len(vocables) {
		return ErrVocableNotFound
	}

	scores, err := v.repo.Scores(ctx)
	if err != nil {
		v.log.Error("failed to load scores", zap.Error(err))
		return err
	}

	updated := make(map[int]models.ScoreRecord, len(scores))
	for scoreID, record := range scores {
		if scoreID != id {
			updated[scoreID] = record
		}
	}

	if err := v.repo.SaveVocables(ctx, remaining); err != nil {
		v.log.Error("failed to save vocables", zap.Error(err))
		return err
	}

	if err := v.repo.SaveScores(ctx, updated); err != nil {
		v.log.Error("failed to save scores", zap.Error(err))
		return err
	}

	v.log.Info("vocable deleted", zap.Int("id", id))

	return nil
}

func (v *VocableS) Vocables(ctx context.Context) ([]models.Vocable, error) {
	return v.repo.Vocables(ctx)
}

// VocablesWithScores lists all vocables enriched with their score records,
// defaulted where no record exists yet.
func (v *VocableS) VocablesWithScores(ctx context.Context) ([]models.VocableWithScore, error) {
	vocables, err := v.repo.Vocables(ctx)
	if err != nil {
		v.log.Error("failed to load vocables", zap.Error(err))
		return nil, err
	}

	scores, err := v.repo.Scores(ctx)
	if err != nil {
		v.log.Error("failed to load scores", zap.Error(err))
		return nil, err
	}

	enriched := make([]models.VocableWithScore, 0, len(vocables))
	for _, vocable := range vocables {
		enriched = append(enriched, models.VocableWithScore{
			Vocable:     vocable,
			ScoreRecord: models.DefaultedScore(scores, vocable.ID),
		})
	}

	return enriched, nil
}
