package service

import (
	"math/rand"
	"strings"
	"time"

	"github.com/idueppe/vokabel-bot/internal/models"
)

// Session walks a prioritized selection of vocables one question at a time.
// It is owned by a single caller; nothing in here locks. Score and history
// persistence only happens through Finalize, an abandoned session leaves
// both untouched.
type Session struct {
	selected  []models.Vocable
	cursor    int
	direction models.Direction
	results   []models.AnswerResult
	rng       *rand.Rand
}

func NewSession(vocables []models.Vocable, scores map[int]models.ScoreRecord, count int, rng *rand.Rand) *Session {
	s := &Session{
		selected: SelectByPriority(vocables, scores, count, rng),
		results:  []models.AnswerResult{},
		rng:      rng,
	}

	if len(s.selected) > 0 {
		s.prepareQuestion()
	}

	return s
}

// prepareQuestion draws a fresh direction, independently per question.
func (s *Session) prepareQuestion() {
	if s.rng.Intn(2) == 0 {
		s.direction = models.DirectionDeEn
	} else {
		s.direction = models.DirectionEnDe
	}
}

// CurrentQuestion returns nil once the session is complete.
func (s *Session) CurrentQuestion() *models.Question {
	if s.IsComplete() {
		return nil
	}

	vocable := s.selected[s.cursor]
	prompt := vocable.German
	if s.direction == models.DirectionEnDe {
		prompt = vocable.English
	}

	return &models.Question{
		Prompt:    prompt,
		Direction: s.direction,
		VocableID: vocable.ID,
		German:    vocable.German,
		English:   vocable.English,
		Index:     s.cursor,
		Total:     len(s.selected),
	}
}

// SubmitAnswer checks the answer against the hidden side of the current
// vocable, trimmed and case-sensitive, and records the result. The cursor
// stays put so the caller can show feedback before Advance.
func (s *Session) SubmitAnswer(answer string) (models.Feedback, error) {
	if s.IsComplete() {
		return models.Feedback{}, ErrQuizComplete
	}

	vocable := s.selected[s.cursor]
	expected := vocable.English
	if s.direction == models.DirectionEnDe {
		expected = vocable.German
	}

	trimmed := strings.TrimSpace(answer)
	wasCorrect := trimmed == expected

	s.results = append(s.results, models.AnswerResult{
		VocableID:      vocable.ID,
		German:         vocable.German,
		English:        vocable.English,
		Direction:      s.direction,
		UserAnswer:     trimmed,
		ExpectedAnswer: expected,
		WasCorrect:     wasCorrect,
	})

	return models.Feedback{
		WasCorrect:     wasCorrect,
		ExpectedAnswer: expected,
		UserAnswer:     trimmed,
	}, nil
}

func (s *Session) Advance() {
	s.cursor++
	if !s.IsComplete() {
		s.prepareQuestion()
	}
}

func (s *Session) IsComplete() bool {
	return s.cursor >= len(s.selected)
}

func (s *Session) Results() models.QuizResults {
	correct := 0
	for _, r := range s.results {
		if r.WasCorrect {
			correct++
		}
	}

	return models.QuizResults{
		Total:   len(s.results),
		Correct: correct,
		Results: s.results,
	}
}

// Finalize folds the answers back into the score map: every answered vocable
// gets LastPracticed set to now, correct ones additionally gain a point and
// LastCorrect. Returns the updated map and the history record; callers must
// persist them and call Finalize exactly once, a second call would count the
// same answers again.
func (s *Session) Finalize(scores map[int]models.ScoreRecord, now time.Time) (map[int]models.ScoreRecord, models.SessionRecord, error) {
	if !s.IsComplete() {
		return nil, models.SessionRecord{}, ErrQuizActive
	}

	updated := make(map[int]models.ScoreRecord, len(scores))
	for id, record := range scores {
		updated[id] = record
	}

	practicedAt := now
	for _, result := range s.results {
		record := models.DefaultedScore(updated, result.VocableID)
		record.LastPracticed = &practicedAt
		if result.WasCorrect {
			record.Score++
			record.LastCorrect = &practicedAt
		}
		updated[result.VocableID] = record
	}

	results := s.Results()
	record := models.SessionRecord{
		Timestamp: now,
		Total:     results.Total,
		Correct:   results.Correct,
		Results:   results.Results,
	}

	return updated, record, nil
}

// SessionState is the full serializable state of a session. Hosts that carry
// a quiz across separate request cycles can snapshot and restore it without
// losing anything.
type SessionState struct {
	Selected  []models.Vocable      `json:"selected"`
	Cursor    int                   `json:"cursor"`
	Direction models.Direction      `json:"direction"`
	Results   []models.AnswerResult `json:"results"`
}

func (s *Session) Snapshot() SessionState {
	return SessionState{
		Selected:  s.selected,
		Cursor:    s.cursor,
		Direction: s.direction,
		Results:   s.results,
	}
}

func RestoreSession(state SessionState, rng *rand.Rand) *Session {
	s := &Session{
		selected:  state.Selected,
		cursor:    state.Cursor,
		direction: state.Direction,
		results:   state.Results,
		rng:       rng,
	}
	if s.results == nil {
		s.results = []models.AnswerResult{}
	}
	return s
}
