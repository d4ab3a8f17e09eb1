package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"voice-task-management/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("got %s", b)
	}
}

func TestTimestampMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	tm := time.Date(2024, 5, 2, 9, 0, 0, 0, loc)

	b, err := json.Marshal(response.Timestamp(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Timestamp: %v", err)
	}
	if string(b) != `"2024-05-02T02:00:00.000Z"` {
		t.Errorf("expected UTC ISO timestamp, got %s", b)
	}
}

func TestNewTimestamp(t *testing.T) {
	b, _ := json.Marshal(struct {
		DueDate *response.Timestamp `json:"dueDate"`
	}{DueDate: response.NewTimestamp(nil)})
	if string(b) != `{"dueDate":null}` {
		t.Errorf("expected null due date, got %s", b)
	}

	tm := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
	b, _ = json.Marshal(response.NewTimestamp(&tm))
	if string(b) != `"2024-05-04T00:00:00.000Z"` {
		t.Errorf("got %s", b)
	}
}
