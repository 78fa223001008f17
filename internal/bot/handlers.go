package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonQuiz       = "🧠 Quiz"
	ButtonAddVocable = "➕ Neue Vokabel"
	ButtonVocables   = "📖 Meine Vokabeln"
	ButtonProgress   = "📊 Fortschritt"
	ButtonHistory    = "🕘 Verlauf"
	ButtonMainMenu   = "🏠 Hauptmenü"
	ButtonHelp       = "ℹ️ Hilfe"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "delete":
		t.vocable.deleteVocable(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unbekannter Befehl. Benutze /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hallo! Ich bin dein Vokabeltrainer!\n\n" +
		"✨ Was ich kann:\n" +
		"• 🧠 Quiz mit deinen schwächsten Vokabeln\n" +
		"• ➕ Neue Vokabeln speichern\n" +
		"• 📊 Deinen Fortschritt zeigen\n" +
		"• 🕘 Vergangene Runden auflisten\n\n" +
		"Drück einen Knopf, um loszulegen!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Hauptmenü:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
			tgbotapi.NewKeyboardButton(ButtonAddVocable),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonVocables),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHistory),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Verfügbare Befehle:
/start — Bot starten
/help — diese Nachricht
/delete <id> — Vokabel löschen

🎯 Benutze die Knöpfe:
• "Quiz" — übe deine schwächsten Vokabeln
• "Neue Vokabel" — Wortpaar speichern
• "Meine Vokabeln" — alle Vokabeln mit Score
• "Fortschritt" — Statistik nach Lernstand
• "Verlauf" — letzte Quiz-Runden
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	chatID := message.Chat.ID
	text := message.Text

	switch {
	case text == ButtonQuiz:
		t.quiz.startQuiz(message)
	case text == ButtonAddVocable:
		t.vocable.startAdd(message)
	case text == ButtonVocables:
		t.vocable.showVocables(message)
	case text == ButtonProgress:
		t.vocable.sendProgress(message)
	case text == ButtonHistory:
		t.quiz.sendHistory(message)
	case text == ButtonMainMenu:
		t.cache.DeleteQuiz(chatID)
		t.cache.DeletePendingAdd(chatID)
		t.showMainMenu(message)
	case text == ButtonHelp:
		t.handleHelpCommand(message)

	case t.cache.IsPendingAdd(chatID):
		t.vocable.handleAddInput(message)

	default:
		if state, exists := t.cache.GetQuiz(chatID); exists {
			t.quiz.handleQuizMessage(message, state)
			return
		}

		msg := tgbotapi.NewMessage(chatID, "Das habe ich nicht verstanden. Benutze die Knöpfe unten.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	switch query.Data {
	case "new_quiz":
		t.quiz.startQuiz(query.Message)

	case "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", query.Data, query.From.ID)
	}
}
