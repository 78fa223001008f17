package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/idueppe/vokabel-bot/internal/models"
	"github.com/idueppe/vokabel-bot/internal/service"
	"github.com/idueppe/vokabel-bot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	StartQuiz(ctx context.Context, count int) (*service.Session, error)
	FinishQuiz(ctx context.Context, session *service.Session) (models.SessionRecord, error)
	SessionHistory(ctx context.Context, limit int) ([]models.SessionRecord, error)
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *QuizT) startQuiz(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	t.cache.DeletePendingAdd(chatID)
	t.cache.SetQuiz(chatID, cache.QuizState{AwaitingCount: true})

	msg := tgbotapi.NewMessage(chatID, "🧠 Wie viele Vokabeln möchtest du üben?")
	sendMessage(t.bot, msg)
}

func (t *QuizT) handleQuizMessage(message *tgbotapi.Message, state cache.QuizState) {
	if state.AwaitingCount {
		t.handleCountInput(message)
		return
	}
	t.handleAnswer(message, state)
}

func (t *QuizT) handleCountInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	count, err := strconv.Atoi(strings.TrimSpace(message.Text))
	if err != nil || count <= 0 {
		msg := tgbotapi.NewMessage(chatID, "❌ Bitte gib eine positive Zahl ein.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := t.service.StartQuiz(ctx, count)
	if err != nil {
		log.Printf("failed to start quiz for chat %d: %v", chatID, err)
		t.cache.DeleteQuiz(chatID)
		msg := tgbotapi.NewMessage(chatID, "❌ Quiz konnte nicht gestartet werden. Versuch es später.")
		sendMessage(t.bot, msg)
		return
	}

	if session.IsComplete() {
		t.cache.DeleteQuiz(chatID)
		msg := tgbotapi.NewMessage(chatID, "📭 Du hast noch keine Vokabeln. Leg erst welche an!")
		sendMessage(t.bot, msg)
		return
	}

	total := session.CurrentQuestion().Total
	if count > total {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("ℹ️ Es sind nur %d Vokabeln verfügbar.", total))
		sendMessage(t.bot, msg)
	}

	t.cache.SetQuiz(chatID, cache.QuizState{Session: session})
	t.sendQuestion(chatID, session)
}

func (t *QuizT) sendQuestion(chatID int64, session *service.Session) {
	question := session.CurrentQuestion()
	if question == nil {
		log.Printf("no current question for chat %d", chatID)
		return
	}

	phrasing := "Englisch"
	if question.Direction == models.DirectionEnDe {
		phrasing = "Deutsch"
	}

	text := fmt.Sprintf("Frage %d/%d\n\n❓ Was heißt '%s' auf %s?",
		question.Index+1, question.Total, question.Prompt, phrasing)

	msg := tgbotapi.NewMessage(chatID, text)
	sendMessage(t.bot, msg)
}

func (t *QuizT) handleAnswer(message *tgbotapi.Message, state cache.QuizState) {
	chatID := message.Chat.ID

	feedback, err := state.Session.SubmitAnswer(message.Text)
	if err != nil {
		if errors.Is(err, service.ErrQuizComplete) {
			t.cache.DeleteQuiz(chatID)
		}
		log.Printf("failed to submit answer for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Die Antwort konnte nicht verarbeitet werden.")
		sendMessage(t.bot, msg)
		return
	}

	feedbackText := "✅ Richtig!"
	if !feedback.WasCorrect {
		feedbackText = "❌ Falsch. Richtige Antwort: " + feedback.ExpectedAnswer
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, feedbackText))

	state.Session.Advance()

	if state.Session.IsComplete() {
		t.finishQuiz(chatID, state.Session)
		return
	}

	t.sendQuestion(chatID, state.Session)
}

func (t *QuizT) finishQuiz(chatID int64, session *service.Session) {
	t.cache.DeleteQuiz(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record, err := t.service.FinishQuiz(ctx, session)
	if err != nil {
		log.Printf("failed to finish quiz for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Das Ergebnis konnte nicht gespeichert werden.")
		sendMessage(t.bot, msg)
		return
	}

	text := fmt.Sprintf("🏁 Quiz beendet!\n\nDu hattest %d von %d richtig.", record.Correct, record.Total)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🧠 Neues Quiz", "new_quiz"),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Hauptmenü", "main_menu"),
		},
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) sendHistory(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	history, err := t.service.SessionHistory(ctx, 5)
	if err != nil {
		log.Printf("failed to load history for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Verlauf konnte nicht geladen werden.")
		sendMessage(t.bot, msg)
		return
	}

	if len(history) == 0 {
		msg := tgbotapi.NewMessage(chatID, "🕘 Noch keine Quiz-Runden gespielt.")
		sendMessage(t.bot, msg)
		return
	}

	var sb strings.Builder
	sb.WriteString("🕘 Letzte Runden:\n\n")
	for _, record := range history {
		sb.WriteString(fmt.Sprintf("%s — %d/%d richtig\n",
			record.Timestamp.Format("02.01.2006 15:04"), record.Correct, record.Total))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	sendMessage(t.bot, msg)
}
