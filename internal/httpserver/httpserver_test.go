package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voice-task-management/config"
	taskRepo "voice-task-management/internal/task/repository/sqlite"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/log"
	"voice-task-management/pkg/sqlitedb"
	"voice-task-management/pkg/voiceparser"
)

// Wednesday 2024-05-01 15:30 UTC.
var now = time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*HTTPServer, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlitedb.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := taskRepo.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}

	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		DB:          db,
		DateMath:    dm,
		Interpreter: voiceparser.New(log.NewNop(), voiceparser.FixedClock(now), nil, dm),
		ParsePerMin: 600,
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, db
}

func call(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: "test", Port: 8080}); err == nil {
		t.Error("expected error without db")
	}
	if _, err := New(nil, Config{}); err == nil {
		t.Error("expected error without logger")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, db := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := call(srv, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("GET %s: missing request id", path)
		}
	}

	db.Close()
	if w := call(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /ready with closed db = %d, want 503", w.Code)
	}
	if w := call(srv, http.MethodGet, "/live", ""); w.Code != http.StatusOK {
		t.Errorf("GET /live with closed db = %d, want 200", w.Code)
	}
}

func TestVoiceToTaskFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	// Parse stores nothing.
	w := call(srv, http.MethodPost, "/api/parse", `{"transcript":"remind me to call the bank tomorrow morning"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("parse = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"dueDate":"2024-05-02T09:00:00.000Z"`) {
		t.Errorf("parse body = %s", w.Body.String())
	}

	// Capture stores the draft.
	w = call(srv, http.MethodPost, "/api/voice/tasks", `{"transcript":"urgent: finish the report"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("capture = %d: %s", w.Code, w.Body.String())
	}
	var captured struct {
		Data struct {
			Task struct {
				ID       string `json:"id"`
				Title    string `json:"title"`
				Priority string `json:"priority"`
				Source   string `json:"source"`
			} `json:"task"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &captured); err != nil {
		t.Fatalf("decode capture: %v", err)
	}
	got := captured.Data.Task
	if got.ID == "" || got.Title != "finish the report" || got.Priority != "Critical" || got.Source != "api" {
		t.Errorf("captured task = %+v", got)
	}

	// The stored task is listed and can be fetched, updated and deleted.
	w = call(srv, http.MethodGet, "/api/tasks?priority=Critical", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total":1`) {
		t.Fatalf("list = %d: %s", w.Code, w.Body.String())
	}

	w = call(srv, http.MethodPatch, "/api/tasks/"+got.ID, `{"status":"Done"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"Done"`) {
		t.Fatalf("update = %d: %s", w.Code, w.Body.String())
	}

	if w = call(srv, http.MethodDelete, "/api/tasks/"+got.ID, ""); w.Code != http.StatusOK {
		t.Fatalf("delete = %d: %s", w.Code, w.Body.String())
	}
	if w = call(srv, http.MethodGet, "/api/tasks/"+got.ID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("detail after delete = %d", w.Code)
	}
}

func TestTelegramRouteOnlyWhenConfigured(t *testing.T) {
	srv, _ := newTestServer(t)

	w := call(srv, http.MethodPost, "/webhook/telegram", `{"update_id":1}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("webhook without bot = %d, want 404", w.Code)
	}
}
