package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/idueppe/vokabel-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerFor returns the expected side of the current question so tests can
// answer correctly regardless of the drawn direction.
func answerFor(q *models.Question) string {
	if q.Direction == models.DirectionDeEn {
		return q.English
	}
	return q.German
}

func TestSession_Walkthrough(t *testing.T) {
	t.Parallel()

	vocables := []models.Vocable{
		{ID: 1, German: "Haus", English: "house"},
		{ID: 2, German: "Baum", English: "tree"},
	}
	scores := map[int]models.ScoreRecord{}
	rng := rand.New(rand.NewSource(1))

	session := NewSession(vocables, scores, 2, rng)
	require.False(t, session.IsComplete())

	steps := 0
	for !session.IsComplete() {
		question := session.CurrentQuestion()
		require.NotNil(t, question)
		assert.Equal(t, steps, question.Index)
		assert.Equal(t, 2, question.Total)

		feedback, err := session.SubmitAnswer(answerFor(question))
		require.NoError(t, err)
		assert.True(t, feedback.WasCorrect)

		session.Advance()
		steps++
	}

	assert.Equal(t, 2, steps, "quiz must terminate after exactly len(selected) steps")
	assert.Nil(t, session.CurrentQuestion())

	now := time.Now()
	updated, record, err := session.Finalize(scores, now)
	require.NoError(t, err)

	assert.Equal(t, 2, record.Total)
	assert.Equal(t, 2, record.Correct)
	require.Len(t, record.Results, 2)

	for _, id := range []int{1, 2} {
		assert.Equal(t, 1, updated[id].Score)
		require.NotNil(t, updated[id].LastPracticed)
		require.NotNil(t, updated[id].LastCorrect)
		assert.Equal(t, now, *updated[id].LastPracticed)
		assert.Equal(t, now, *updated[id].LastCorrect)
	}
}

func TestSession_SubmitAnswer_Comparison(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
	}{
		{name: "exact match", answer: "house", wantCorrect: true},
		{name: "surrounding whitespace is trimmed", answer: "  house ", wantCorrect: true},
		{name: "case sensitive", answer: "House", wantCorrect: false},
		{name: "wrong word", answer: "tree", wantCorrect: false},
		{name: "empty answer", answer: "", wantCorrect: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session := RestoreSession(SessionState{
				Selected:  []models.Vocable{{ID: 1, German: "Haus", English: "house"}},
				Direction: models.DirectionDeEn,
			}, rand.New(rand.NewSource(1)))

			feedback, err := session.SubmitAnswer(tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCorrect, feedback.WasCorrect)
			assert.Equal(t, "house", feedback.ExpectedAnswer)
		})
	}
}

func TestSession_SubmitAnswer_ExpectedSideFollowsDirection(t *testing.T) {
	t.Parallel()

	vocable := models.Vocable{ID: 1, German: "Haus", English: "house"}

	tests := []struct {
		name         string
		direction    models.Direction
		wantPrompt   string
		wantExpected string
	}{
		{name: "german prompt asks for english", direction: models.DirectionDeEn, wantPrompt: "Haus", wantExpected: "house"},
		{name: "english prompt asks for german", direction: models.DirectionEnDe, wantPrompt: "house", wantExpected: "Haus"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session := RestoreSession(SessionState{
				Selected:  []models.Vocable{vocable},
				Direction: tt.direction,
			}, rand.New(rand.NewSource(1)))

			question := session.CurrentQuestion()
			require.NotNil(t, question)
			assert.Equal(t, tt.wantPrompt, question.Prompt)

			feedback, err := session.SubmitAnswer("anything")
			require.NoError(t, err)
			assert.Equal(t, tt.wantExpected, feedback.ExpectedAnswer)
		})
	}
}

func TestSession_SubmitAnswerAfterComplete(t *testing.T) {
	t.Parallel()

	session := NewSession(nil, map[int]models.ScoreRecord{}, 3, rand.New(rand.NewSource(1)))
	require.True(t, session.IsComplete())

	_, err := session.SubmitAnswer("house")
	assert.ErrorIs(t, err, ErrQuizComplete)
}

func TestSession_FinalizeBeforeComplete(t *testing.T) {
	t.Parallel()

	vocables := []models.Vocable{{ID: 1, German: "Haus", English: "house"}}
	session := NewSession(vocables, map[int]models.ScoreRecord{}, 1, rand.New(rand.NewSource(1)))
	require.False(t, session.IsComplete())

	_, _, err := session.Finalize(map[int]models.ScoreRecord{}, time.Now())
	assert.ErrorIs(t, err, ErrQuizActive)
}

func TestSession_ZeroCountIsImmediatelyComplete(t *testing.T) {
	t.Parallel()

	vocables := testVocables(3)
	session := NewSession(vocables, map[int]models.ScoreRecord{}, 0, rand.New(rand.NewSource(1)))

	assert.True(t, session.IsComplete())
	assert.Nil(t, session.CurrentQuestion())
	assert.Equal(t, 0, session.Results().Total)

	updated, record, err := session.Finalize(map[int]models.ScoreRecord{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, updated)
	assert.Equal(t, 0, record.Total)
}

func TestSession_Finalize_ScoreDelta(t *testing.T) {
	t.Parallel()

	vocables := testVocables(4)
	scores := map[int]models.ScoreRecord{
		1: {Score: 3},
		2: {Score: 1},
	}
	rng := rand.New(rand.NewSource(9))

	session := NewSession(vocables, scores, 4, rng)

	// Answer the first two questions correctly, the rest wrong.
	answered := 0
	for !session.IsComplete() {
		question := session.CurrentQuestion()
		answer := "definitely wrong"
		if answered < 2 {
			answer = answerFor(question)
		}
		_, err := session.SubmitAnswer(answer)
		require.NoError(t, err)
		session.Advance()
		answered++
	}

	sumBefore := 0
	for _, v := range vocables {
		sumBefore += models.DefaultedScore(scores, v.ID).Score
	}

	now := time.Now()
	updated, record, err := session.Finalize(scores, now)
	require.NoError(t, err)

	assert.Equal(t, 4, record.Total)
	assert.Equal(t, 2, record.Correct)

	sumAfter := 0
	for _, v := range vocables {
		sumAfter += models.DefaultedScore(updated, v.ID).Score
	}
	assert.Equal(t, sumBefore+2, sumAfter, "score sum must grow by the number of correct answers")

	for _, result := range record.Results {
		got := updated[result.VocableID]
		require.NotNil(t, got.LastPracticed, "every answered vocable gets LastPracticed")
		assert.Equal(t, now, *got.LastPracticed)
		if result.WasCorrect {
			require.NotNil(t, got.LastCorrect)
			assert.Equal(t, now, *got.LastCorrect)
		} else {
			assert.Nil(t, got.LastCorrect)
		}
	}

	// The original map stays untouched.
	assert.Equal(t, 3, scores[1].Score)
	assert.Len(t, scores, 2)
}

func TestSession_ResultsSoFar(t *testing.T) {
	t.Parallel()

	vocables := testVocables(3)
	session := NewSession(vocables, map[int]models.ScoreRecord{}, 3, rand.New(rand.NewSource(5)))

	assert.Equal(t, models.QuizResults{Total: 0, Correct: 0, Results: []models.AnswerResult{}}, session.Results())

	question := session.CurrentQuestion()
	_, err := session.SubmitAnswer(answerFor(question))
	require.NoError(t, err)

	partial := session.Results()
	assert.Equal(t, 1, partial.Total)
	assert.Equal(t, 1, partial.Correct)
}

func TestSession_SnapshotRestore(t *testing.T) {
	t.Parallel()

	vocables := testVocables(3)
	session := NewSession(vocables, map[int]models.ScoreRecord{}, 3, rand.New(rand.NewSource(2)))

	question := session.CurrentQuestion()
	_, err := session.SubmitAnswer(answerFor(question))
	require.NoError(t, err)
	session.Advance()

	state := session.Snapshot()
	restored := RestoreSession(state, rand.New(rand.NewSource(99)))

	assert.Equal(t, session.IsComplete(), restored.IsComplete())
	assert.Equal(t, session.CurrentQuestion(), restored.CurrentQuestion())
	assert.Equal(t, session.Results(), restored.Results())
}
