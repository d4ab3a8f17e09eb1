package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/voice"
	pkgLog "voice-task-management/pkg/log"
)

// Messenger sends replies back to a Telegram chat. *pkg/telegram.Bot satisfies it.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config tunes the handler.
type Config struct {
	// SecretToken, when set, must match the secret header of every update.
	SecretToken string
	// Location renders due dates in replies. Defaults to UTC.
	Location *time.Location
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc voice.UseCase, bot Messenger, cfg Config) Handler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: cfg.SecretToken,
		loc:         loc,
		dispatch:    func(fn func()) { go fn() },
	}
}
