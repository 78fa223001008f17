package cache

import (
	"sync"

	"github.com/idueppe/vokabel-bot/internal/service"
)

// QuizState is the per-chat quiz progress carried between Telegram updates.
// AwaitingCount is set while the bot waits for the user to answer "how many
// vocables"; once the session starts it holds the live Session.
type QuizState struct {
	AwaitingCount bool
	Session       *service.Session
}

type Cache struct {
	mu      sync.Mutex
	quizzes map[int64]QuizState
	adds    map[int64]bool
}

func NewCache() *Cache {
	return &Cache{
		quizzes: make(map[int64]QuizState),
		adds:    make(map[int64]bool),
	}
}

func (c *Cache) SetQuiz(chatID int64, state QuizState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quizzes[chatID] = state
}

func (c *Cache) GetQuiz(chatID int64) (QuizState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, exists := c.quizzes[chatID]
	return state, exists
}

func (c *Cache) DeleteQuiz(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quizzes, chatID)
}

func (c *Cache) SetPendingAdd(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adds[chatID] = true
}

func (c *Cache) IsPendingAdd(chatID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adds[chatID]
}

func (c *Cache) DeletePendingAdd(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.adds, chatID)
}
