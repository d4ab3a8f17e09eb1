package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
	pkgLog "voice-task-management/pkg/log"
	pkgResponse "voice-task-management/pkg/response"
	pkgTelegram "voice-task-management/pkg/telegram"
	"voice-task-management/pkg/voiceparser"
)

const (
	processTimeout = 30 * time.Second

	startText = "👋 Welcome to *Voice Task Management*!\n\n" +
		"Tell me what you need to do and I will turn it into a task, for example:\n" +
		"_\"remind me to call the bank tomorrow morning\"_\n" +
		"_\"urgent: finish the report by friday\"_"
	helpText = "*How to use:*\n\n" +
		"Send one task per message in plain English. I pick up:\n" +
		"• due dates: _tomorrow at 5pm_, _in 3 days_, _next monday_\n" +
		"• priority: _urgent_, _important_, _low priority_\n" +
		"• status: _working on_, _done_"
	voiceHint  = "🎙 I can't listen to voice notes yet. Please send the task as text."
	emptyHint  = "⚠️ I didn't catch a task in that message. Please try again."
	failedText = "Something went wrong while saving your task. Please try again."
)

type handler struct {
	l           pkgLog.Logger
	uc          voice.UseCase
	bot         Messenger
	secretToken string
	loc         *time.Location
	dispatch    func(func())
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in the
// background so Telegram never waits on storage or calendar calls.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with wrong secret")
			pkgResponse.Error(c, errWrongSecret)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, errWrongUpdate)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := *update.Message
	requestID := pkgLog.RequestIDFrom(ctx)

	h.dispatch(func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), requestID), processTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, &msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, failedText)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	// Media messages (voice notes, photos) carry their text in the caption.
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		text = strings.TrimSpace(msg.Caption)
	}
	if text == "" {
		if msg.Voice != nil {
			return h.bot.SendMessage(ctx, msg.Chat.ID, voiceHint)
		}
		return nil
	}

	switch commandOf(text) {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, startText, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, "Markdown")
	}

	output, err := h.uc.Capture(ctx, voice.CaptureInput{
		Transcript: text,
		Source:     model.SourceTelegram,
	})
	if err != nil {
		if errors.Is(err, voice.ErrEmptyTranscript) {
			return h.bot.SendMessage(ctx, msg.Chat.ID, emptyHint)
		}
		return err
	}

	h.l.Infof(ctx, "telegram handler: chat %d captured task %s", msg.Chat.ID, output.Task.ID)
	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, summary(output, h.loc), "Markdown")
}

// commandOf returns the bot command at the start of text, without any @botname suffix.
func commandOf(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

// summary renders the stored task as a Markdown reply.
func summary(out voice.CaptureOutput, loc *time.Location) string {
	t := out.Task

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Task saved: *%s*\n", escapeMarkdown(t.Title))
	fmt.Fprintf(&b, "Priority: %s\n", t.Priority)
	fmt.Fprintf(&b, "Status: %s\n", t.Status)
	if t.DueDate != nil {
		fmt.Fprintf(&b, "Due: %s", t.DueDate.In(loc).Format("Mon, 02 Jan 2006 15:04 MST"))
	} else {
		b.WriteString("Due: none")
	}
	if t.CalendarLink != "" {
		fmt.Fprintf(&b, "\n📅 [Open in Calendar](%s)", t.CalendarLink)
	}
	if out.Draft.Title == voiceparser.UntitledTask {
		b.WriteString("\n_No title found, edit it later._")
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
