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

type VocableSI interface {
	AddVocable(ctx context.Context, german, english string) (int, error)
	DeleteVocable(ctx context.Context, id int) error
	VocablesWithScores(ctx context.Context) ([]models.VocableWithScore, error)
}

type StatsSI interface {
	Progress(ctx context.Context) (models.Statistics, error)
}

type VocableT struct {
	bot     BotSender
	cache   *cache.Cache
	service VocableSI
	stats   StatsSI
}

func NewVocableTAPI(bot BotSender, cache *cache.Cache, service VocableSI, stats StatsSI) *VocableT {
	return &VocableT{
		bot:     bot,
		cache:   cache,
		service: service,
		stats:   stats,
	}
}

func (t *VocableT) startAdd(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	t.cache.DeleteQuiz(chatID)
	t.cache.SetPendingAdd(chatID)

	msg := tgbotapi.NewMessage(chatID, "➕ Schick mir die neue Vokabel als 'deutsch = englisch'")
	sendMessage(t.bot, msg)
}

func (t *VocableT) handleAddInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	parts := strings.SplitN(message.Text, "=", 2)
	if len(parts) != 2 {
		msg := tgbotapi.NewMessage(chatID, "❌ Format: deutsch = englisch")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	german := strings.TrimSpace(parts[0])
	english := strings.TrimSpace(parts[1])

	id, err := t.service.AddVocable(ctx, german, english)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVocable) {
			msg := tgbotapi.NewMessage(chatID, "❌ Beide Seiten dürfen nicht leer sein. Format: deutsch = englisch")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to add vocable for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Vokabel konnte nicht gespeichert werden.")
		sendMessage(t.bot, msg)
		return
	}

	t.cache.DeletePendingAdd(chatID)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Vokabel #%d gespeichert: %s = %s", id, german, english))
	sendMessage(t.bot, msg)
}

func (t *VocableT) showVocables(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	vocables, err := t.service.VocablesWithScores(ctx)
	if err != nil {
		log.Printf("failed to load vocables for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Vokabeln konnten nicht geladen werden.")
		sendMessage(t.bot, msg)
		return
	}

	if len(vocables) == 0 {
		msg := tgbotapi.NewMessage(chatID, "📭 Du hast noch keine Vokabeln. Leg erst welche an!")
		sendMessage(t.bot, msg)
		return
	}

	var sb strings.Builder
	sb.WriteString("📖 Deine Vokabeln:\n\n")
	for _, v := range vocables {
		sb.WriteString(fmt.Sprintf("#%d %s = %s — Score %d", v.ID, v.German, v.English, v.Score))
		if v.LastPracticed != nil {
			sb.WriteString(", zuletzt geübt " + v.LastPracticed.Format("02.01.2006"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nLöschen mit /delete <id>")

	msg := tgbotapi.NewMessage(chatID, sb.String())
	sendMessage(t.bot, msg)
}

func (t *VocableT) deleteVocable(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	id, err := strconv.Atoi(strings.TrimSpace(message.CommandArguments()))
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, "❌ Benutzung: /delete <id>")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := t.service.DeleteVocable(ctx, id); err != nil {
		if errors.Is(err, service.ErrVocableNotFound) {
			msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("❌ Vokabel #%d nicht gefunden.", id))
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to delete vocable %d for chat %d: %v", id, chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Vokabel konnte nicht gelöscht werden.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🗑 Vokabel #%d gelöscht.", id))
	sendMessage(t.bot, msg)
}

func (t *VocableT) sendProgress(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := t.stats.Progress(ctx)
	if err != nil {
		log.Printf("failed to get progress for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Fortschritt konnte nicht geladen werden.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, service.FormatStatistics(stats))
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg)
}
