package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/voiceparser"
)

type mockUseCase struct {
	parseIn   voice.ParseInput
	captureIn voice.CaptureInput
	err       error
}

var due = time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)

func (m *mockUseCase) draft(transcript string) voiceparser.InterpretedTask {
	return voiceparser.InterpretedTask{
		Title:      "call the bank morning",
		Status:     voiceparser.StatusToDo,
		Priority:   voiceparser.PriorityMedium,
		DueDate:    &due,
		Transcript: transcript,
	}
}

func (m *mockUseCase) Parse(ctx context.Context, in voice.ParseInput) (voice.ParseOutput, error) {
	m.parseIn = in
	if m.err != nil {
		return voice.ParseOutput{}, m.err
	}
	if strings.TrimSpace(in.Transcript) == "" {
		return voice.ParseOutput{}, voice.ErrEmptyTranscript
	}
	return voice.ParseOutput{Draft: m.draft(in.Transcript)}, nil
}

func (m *mockUseCase) Capture(ctx context.Context, in voice.CaptureInput) (voice.CaptureOutput, error) {
	m.captureIn = in
	if m.err != nil {
		return voice.CaptureOutput{}, m.err
	}
	if strings.TrimSpace(in.Transcript) == "" {
		return voice.CaptureOutput{}, voice.ErrEmptyTranscript
	}
	d := m.draft(in.Transcript)
	return voice.CaptureOutput{
		Draft: d,
		Task: model.Task{ID: "t1", Title: d.Title, Status: model.TaskStatusToDo,
			Priority: model.TaskPriorityMedium, DueDate: d.DueDate, Source: model.SourceAPI,
			Transcript: d.Transcript, CreatedAt: due, UpdatedAt: due},
	}, nil
}

func setupRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return env
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
		wantMsg  string
		wantData string
	}{
		{
			name:     "draft",
			body:     `{"transcript":"remind me to call the bank tomorrow morning"}`,
			wantCode: http.StatusOK,
			wantData: `{"title":"call the bank morning","description":null,"status":"To Do","priority":"Medium","dueDate":"2024-05-02T09:00:00.000Z","transcript":"remind me to call the bank tomorrow morning"}`,
		},
		{
			name:     "empty transcript",
			body:     `{"transcript":"   "}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Transcript is required",
		},
		{
			name:     "missing transcript",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Transcript is required",
		},
		{
			name:     "malformed body",
			body:     `{"transcript":`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid request body",
		},
		{
			name:     "unexpected failure",
			body:     `{"transcript":"buy milk"}`,
			ucErr:    errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockUseCase{err: tt.ucErr})
			w := post(r, "/api/parse", tt.body)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}
			env := decode(t, w)
			if tt.wantMsg != "" && env.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMsg)
			}
			if tt.wantData != "" && string(env.Data) != tt.wantData {
				t.Errorf("data = %s\nwant %s", env.Data, tt.wantData)
			}
		})
	}
}

func TestCapture(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setupRouter(uc)
		w := post(r, "/api/voice/tasks", `{"transcript":"remind me to call the bank tomorrow morning"}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
		}
		if uc.captureIn.Transcript != "remind me to call the bank tomorrow morning" {
			t.Errorf("transcript = %q", uc.captureIn.Transcript)
		}

		var data struct {
			Draft map[string]any `json:"draft"`
			Task  map[string]any `json:"task"`
		}
		if err := json.Unmarshal(decode(t, w).Data, &data); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if data.Draft["title"] != "call the bank morning" {
			t.Errorf("draft = %v", data.Draft)
		}
		if data.Task["id"] != "t1" || data.Task["dueDate"] != "2024-05-02T09:00:00.000Z" {
			t.Errorf("task = %v", data.Task)
		}
	})

	t.Run("empty transcript", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w := post(r, "/api/voice/tasks", `{"transcript":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})
}
