package bot

import (
	"math/rand"
	"testing"
	"time"

	mock_bot "github.com/idueppe/vokabel-bot/internal/bot/mock"
	"github.com/idueppe/vokabel-bot/internal/models"
	"github.com/idueppe/vokabel-bot/internal/service"
	"github.com/idueppe/vokabel-bot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*QuizT, *cache.Cache, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	c := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, c, mockService), c, mockBot
}

func testMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
		Text: text,
	}
}

// sessionFor builds a live session with a fixed question order and direction.
func sessionFor(vocables []models.Vocable, direction models.Direction) *service.Session {
	return service.RestoreSession(service.SessionState{
		Selected:  vocables,
		Direction: direction,
	}, rand.New(rand.NewSource(1)))
}

func TestQuizT_startQuiz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quiz, c, mockBot := newQuizTMock(t, ctrl, nil)

	quiz.startQuiz(testMessage(ButtonQuiz))

	state, exists := c.GetQuiz(123)
	require.True(t, exists)
	assert.True(t, state.AwaitingCount)
	assert.Nil(t, state.Session)

	require.Equal(t, 1, len(mockBot.SentMessages))
	msg := mockBot.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "🧠 Wie viele Vokabeln möchtest du üben?", msg.Text)
}

func TestQuizT_handleCountInput(t *testing.T) {
	t.Parallel()

	vocables := []models.Vocable{
		{ID: 1, German: "Haus", English: "house"},
		{ID: 2, German: "Baum", English: "tree"},
	}

	tests := []struct {
		name        string
		text        string
		f           func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc  func(*testing.T, *cache.Cache, *mock_bot.MockBot)
		wantSession bool
	}{
		{
			name: "success: sends first question",
			text: "2",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), 2).Return(sessionFor(vocables, models.DirectionDeEn), nil)
			},
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				state, exists := c.GetQuiz(123)
				require.True(t, exists)
				assert.False(t, state.AwaitingCount)
				require.NotNil(t, state.Session)

				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "Frage 1/2\n\n❓ Was heißt 'Haus' auf Englisch?", msg.Text)
			},
		},
		{
			name: "clamped count gets an informational notice",
			text: "10",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), 10).Return(sessionFor(vocables, models.DirectionDeEn), nil)
			},
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				notice := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "ℹ️ Es sind nur 2 Vokabeln verfügbar.", notice.Text)
				question := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, question.Text, "Frage 1/2")
			},
		},
		{
			name: "non-numeric input keeps waiting",
			text: "viele",
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				state, exists := c.GetQuiz(123)
				require.True(t, exists)
				assert.True(t, state.AwaitingCount)

				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Bitte gib eine positive Zahl ein.", msg.Text)
			},
		},
		{
			name: "non-positive input keeps waiting",
			text: "0",
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				state, exists := c.GetQuiz(123)
				require.True(t, exists)
				assert.True(t, state.AwaitingCount)

				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Bitte gib eine positive Zahl ein.", msg.Text)
			},
		},
		{
			name: "empty vocabulary aborts the quiz",
			text: "3",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), 3).Return(sessionFor(nil, models.DirectionDeEn), nil)
			},
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				_, exists := c.GetQuiz(123)
				assert.False(t, exists)

				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "📭 Du hast noch keine Vokabeln. Leg erst welche an!", msg.Text)
			},
		},
		{
			name: "error: StartQuiz fails",
			text: "2",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), 2).Return(nil, assert.AnError)
			},
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				_, exists := c.GetQuiz(123)
				assert.False(t, exists)

				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Quiz konnte nicht gestartet werden. Versuch es später.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quiz, c, mockBot := newQuizTMock(t, ctrl, tt.f)
			c.SetQuiz(123, cache.QuizState{AwaitingCount: true})

			quiz.handleCountInput(testMessage(tt.text))

			tt.assertFunc(t, c, mockBot)
		})
	}
}

func TestQuizT_handleAnswer(t *testing.T) {
	t.Parallel()

	vocables := []models.Vocable{
		{ID: 1, German: "Haus", English: "house"},
		{ID: 2, German: "Baum", English: "tree"},
	}

	tests := []struct {
		name       string
		session    func() *service.Session
		text       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *cache.Cache, *mock_bot.MockBot)
	}{
		{
			name:    "correct answer advances to the next question",
			session: func() *service.Session { return sessionFor(vocables, models.DirectionDeEn) },
			text:    "house",
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				feedback := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "✅ Richtig!", feedback.Text)
				question := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, question.Text, "Frage 2/2")

				_, exists := c.GetQuiz(123)
				assert.True(t, exists, "session stays cached until the last answer")
			},
		},
		{
			name:    "wrong answer shows the expected one",
			session: func() *service.Session { return sessionFor(vocables, models.DirectionDeEn) },
			text:    "tree",
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				feedback := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Falsch. Richtige Antwort: house", feedback.Text)
			},
		},
		{
			name:    "last answer finishes the quiz",
			session: func() *service.Session { return sessionFor(vocables[:1], models.DirectionDeEn) },
			text:    "house",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().FinishQuiz(gomock.Any(), gomock.Any()).Return(models.SessionRecord{
					Timestamp: time.Now(),
					Total:     1,
					Correct:   1,
				}, nil)
			},
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				_, exists := c.GetQuiz(123)
				assert.False(t, exists)

				require.Equal(t, 2, len(mb.SentMessages))
				results := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Equal(t, "🏁 Quiz beendet!\n\nDu hattest 1 von 1 richtig.", results.Text)
				assert.NotNil(t, results.ReplyMarkup)
			},
		},
		{
			name:    "error: FinishQuiz fails",
			session: func() *service.Session { return sessionFor(vocables[:1], models.DirectionDeEn) },
			text:    "house",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().FinishQuiz(gomock.Any(), gomock.Any()).Return(models.SessionRecord{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, c *cache.Cache, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				msg := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Das Ergebnis konnte nicht gespeichert werden.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quiz, c, mockBot := newQuizTMock(t, ctrl, tt.f)

			state := cache.QuizState{Session: tt.session()}
			c.SetQuiz(123, state)

			quiz.handleAnswer(testMessage(tt.text), state)

			tt.assertFunc(t, c, mockBot)
		})
	}
}

func TestQuizT_sendHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: lists recent rounds",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SessionHistory(gomock.Any(), 5).Return([]models.SessionRecord{
					{Timestamp: time.Date(2024, 3, 2, 18, 30, 0, 0, time.UTC), Total: 5, Correct: 4},
					{Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), Total: 3, Correct: 1},
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "02.03.2024 18:30 — 4/5 richtig")
				assert.Contains(t, msg.Text, "01.03.2024 09:00 — 1/3 richtig")
			},
		},
		{
			name: "empty history",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SessionHistory(gomock.Any(), 5).Return([]models.SessionRecord{}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "🕘 Noch keine Quiz-Runden gespielt.", msg.Text)
			},
		},
		{
			name: "error: history load fails",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SessionHistory(gomock.Any(), 5).Return(nil, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Verlauf konnte nicht geladen werden.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quiz, _, mockBot := newQuizTMock(t, ctrl, tt.f)

			quiz.sendHistory(testMessage(ButtonHistory))

			tt.assertFunc(t, mockBot)
		})
	}
}
