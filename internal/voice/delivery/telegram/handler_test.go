package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
	pkgTelegram "voice-task-management/pkg/telegram"
	"voice-task-management/pkg/voiceparser"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockVoiceUseCase struct {
	captured []voice.CaptureInput
	err      error
}

func (m *mockVoiceUseCase) Parse(ctx context.Context, in voice.ParseInput) (voice.ParseOutput, error) {
	return voice.ParseOutput{}, nil
}

func (m *mockVoiceUseCase) Capture(ctx context.Context, in voice.CaptureInput) (voice.CaptureOutput, error) {
	m.captured = append(m.captured, in)
	if m.err != nil {
		return voice.CaptureOutput{}, m.err
	}
	due := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	return voice.CaptureOutput{
		Draft: voiceparser.InterpretedTask{Title: "call the bank morning"},
		Task: model.Task{ID: "t1", Title: "call the bank morning", Status: model.TaskStatusToDo,
			Priority: model.TaskPriorityMedium, DueDate: &due},
	}, nil
}

type sentMessage struct {
	chatID    int64
	text      string
	parseMode string
}

type mockMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (m *mockMessenger) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.SendMessageWithMode(ctx, chatID, text, "")
}

func (m *mockMessenger) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text, parseMode: parseMode})
	return nil
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func setup(uc *mockVoiceUseCase, secret string) (*gin.Engine, *mockMessenger) {
	gin.SetMode(gin.TestMode)
	bot := &mockMessenger{}
	h := New(log.NewNop(), uc, bot, Config{SecretToken: secret}).(*handler)
	h.dispatch = func(fn func()) { fn() }

	r := gin.New()
	RegisterRoutes(r.Group("/webhook"), h)
	return r, bot
}

func send(r *gin.Engine, body, secret string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(pkgTelegram.SecretTokenHeader, secret)
	}
	r.ServeHTTP(w, req)
	return w
}

func textUpdate(text string) string {
	return `{"update_id":1,"message":{"message_id":7,"from":{"id":42,"username":"sam"},"chat":{"id":42,"type":"private"},"text":"` + text + `"}}`
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		ucErr       error
		wantCode    int
		wantCapture string
		wantReply   string
	}{
		{
			name:        "text message is captured",
			body:        textUpdate("remind me to call the bank tomorrow morning"),
			wantCode:    http.StatusOK,
			wantCapture: "remind me to call the bank tomorrow morning",
			wantReply:   "Task saved: *call the bank morning*",
		},
		{
			name:      "start command",
			body:      textUpdate("/start"),
			wantCode:  http.StatusOK,
			wantReply: "Welcome",
		},
		{
			name:      "help command with bot suffix",
			body:      textUpdate("/help@voice_task_bot"),
			wantCode:  http.StatusOK,
			wantReply: "How to use",
		},
		{
			name:      "voice note without caption",
			body:      `{"update_id":2,"message":{"message_id":8,"chat":{"id":42},"voice":{"file_id":"abc","duration":3}}}`,
			wantCode:  http.StatusOK,
			wantReply: "voice notes",
		},
		{
			name:        "voice note with caption",
			body:        `{"update_id":3,"message":{"message_id":9,"chat":{"id":42},"caption":"buy milk","voice":{"file_id":"abc","duration":3}}}`,
			wantCode:    http.StatusOK,
			wantCapture: "buy milk",
			wantReply:   "Task saved",
		},
		{
			name:        "photo with caption",
			body:        `{"update_id":5,"message":{"message_id":10,"chat":{"id":42},"caption":"renew the passport next week"}}`,
			wantCode:    http.StatusOK,
			wantCapture: "renew the passport next week",
			wantReply:   "Task saved",
		},
		{
			name:     "sticker without text is ignored",
			body:     `{"update_id":6,"message":{"message_id":11,"chat":{"id":42}}}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "non-message update is ignored",
			body:     `{"update_id":4}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed payload",
			body:     `{"update_id":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:        "capture failure notifies user",
			body:        textUpdate("buy milk"),
			ucErr:       errors.New("db down"),
			wantCode:    http.StatusOK,
			wantCapture: "buy milk",
			wantReply:   "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockVoiceUseCase{err: tt.ucErr}
			r, bot := setup(uc, "")

			w := send(r, tt.body, "")
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}

			if tt.wantCapture == "" && len(uc.captured) != 0 {
				t.Errorf("unexpected capture: %+v", uc.captured)
			}
			if tt.wantCapture != "" {
				if len(uc.captured) != 1 {
					t.Fatalf("captured %d transcripts, want 1", len(uc.captured))
				}
				if uc.captured[0].Transcript != tt.wantCapture || uc.captured[0].Source != model.SourceTelegram {
					t.Errorf("captured = %+v", uc.captured[0])
				}
			}

			if tt.wantReply == "" {
				if len(bot.sent) != 0 {
					t.Errorf("unexpected replies: %+v", bot.sent)
				}
				return
			}
			if len(bot.sent) != 1 {
				t.Fatalf("sent %d replies, want 1: %+v", len(bot.sent), bot.sent)
			}
			if bot.sent[0].chatID != 42 || !strings.Contains(bot.sent[0].text, tt.wantReply) {
				t.Errorf("reply = %+v, want it to contain %q", bot.sent[0], tt.wantReply)
			}
		})
	}
}

func TestHandleWebhook_SecretToken(t *testing.T) {
	uc := &mockVoiceUseCase{}
	r, bot := setup(uc, "s3cret")

	if w := send(r, textUpdate("buy milk"), "wrong"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: status = %d", w.Code)
	}
	if w := send(r, textUpdate("buy milk"), ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing secret: status = %d", w.Code)
	}
	if len(uc.captured) != 0 || len(bot.sent) != 0 {
		t.Fatalf("rejected updates must not be processed")
	}

	if w := send(r, textUpdate("buy milk"), "s3cret"); w.Code != http.StatusOK {
		t.Fatalf("valid secret: status = %d", w.Code)
	}
	if len(uc.captured) != 1 {
		t.Errorf("captured %d, want 1", len(uc.captured))
	}
}

func TestSummary(t *testing.T) {
	due := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	loc := time.FixedZone("CEST", 2*60*60)

	got := summary(voice.CaptureOutput{
		Draft: voiceparser.InterpretedTask{Title: voiceparser.UntitledTask},
		Task: model.Task{Title: "fix *bold* bug", Priority: model.TaskPriorityHigh,
			Status: model.TaskStatusInProgress, DueDate: &due, CalendarLink: "https://cal/e1"},
	}, loc)

	for _, want := range []string{
		`*fix \*bold\* bug*`,
		"Priority: High",
		"Status: In Progress",
		"Due: Thu, 02 May 2024 11:00 CEST",
		"(https://cal/e1)",
		"No title found",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	noDue := summary(voice.CaptureOutput{Task: model.Task{Title: "x"}}, time.UTC)
	if !strings.Contains(noDue, "Due: none") {
		t.Errorf("summary without due date:\n%s", noDue)
	}
}

func TestCommandOf(t *testing.T) {
	tests := map[string]string{
		"/start":           "/start",
		"/Help@my_bot now": "/help",
		"buy milk":         "",
		"":                 "",
	}
	for in, want := range tests {
		if got := commandOf(in); got != want {
			t.Errorf("commandOf(%q) = %q, want %q", in, got, want)
		}
	}
}
