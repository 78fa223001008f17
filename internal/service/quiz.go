package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/idueppe/vokabel-bot/internal/models"
	"go.uber.org/zap"
)

type QuizRI interface {
	Vocables(ctx context.Context) ([]models.Vocable, error)
	Scores(ctx context.Context) (map[int]models.ScoreRecord, error)
	SaveScores(ctx context.Context, scores map[int]models.ScoreRecord) error
	Sessions(ctx context.Context) ([]models.SessionRecord, error)
	AppendSession(ctx context.Context, record models.SessionRecord) error
}

type QuizS struct {
	repo QuizRI
	rng  *rand.Rand
	log  *zap.Logger
}

func NewQuizService(repo QuizRI, rng *rand.Rand, log *zap.Logger) *QuizS {
	return &QuizS{
		repo: repo,
		rng:  rng,
		log:  log,
	}
}

// StartQuiz builds a session over the count highest-priority vocables.
// A count above the available vocabulary is clamped; a non-positive count is
// the caller's input error and never reaches the selector.
func (q *QuizS) StartQuiz(ctx context.Context, count int) (*Session, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	vocables, err := q.repo.Vocables(ctx)
	if err != nil {
		q.log.Error("failed to load vocables", zap.Error(err))
		return nil, err
	}

	scores, err := q.repo.Scores(ctx)
	if err != nil {
		q.log.Error("failed to load scores", zap.Error(err))
		return nil, err
	}

	if count > len(vocables) {
		q.log.Info("requested more vocables than available",
			zap.Int("requested", count),
			zap.Int("available", len(vocables)))
	}

	return NewSession(vocables, scores, count, q.rng), nil
}

// FinishQuiz finalizes a completed session and persists the updated scores
// and the history record. Call it exactly once per session.
func (q *QuizS) FinishQuiz(ctx context.Context, session *Session) (models.SessionRecord, error) {
	scores, err := q.repo.Scores(ctx)
	if err != nil {
		q.log.Error("failed to load scores", zap.Error(err))
		return models.SessionRecord{}, err
	}

	updated, record, err := session.Finalize(scores, time.Now())
	if err != nil {
		return models.SessionRecord{}, err
	}

	if err := q.repo.SaveScores(ctx, updated); err != nil {
		q.log.Error("failed to save scores", zap.Error(err))
		return models.SessionRecord{}, err
	}

	if err := q.repo.AppendSession(ctx, record); err != nil {
		q.log.Error("failed to append session history", zap.Error(err))
		return models.SessionRecord{}, err
	}

	return record, nil
}

// SessionHistory returns past quiz rounds, most recent first. A limit of 0
// returns everything.
func (q *QuizS) SessionHistory(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	sessions, err := q.repo.Sessions(ctx)
	if err != nil {
		q.log.Error("failed to load session history", zap.Error(err))
		return nil, err
	}

	history := make([]models.SessionRecord, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		history = append(history, sessions[i])
	}

	if limit > 0 && limit < len(history) {
		history = history[:limit]
	}

	return history, nil
}
