package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo keeps tasks in a map and records the last list options.
type mockRepo struct {
	tasks    map[string]model.Task
	seq      int
	lastList repo.ListTasksOptions
	fail     bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[string]model.Task{}}
}

func (m *mockRepo) Ping(ctx context.Context) error { return nil }

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, repo.ErrFailedToInsert
	}
	m.seq++
	t := model.Task{
		ID: string(rune('a' + m.seq - 1)), Title: opt.Title, Description: opt.Description,
		Status: opt.Status, Priority: opt.Priority, DueDate: opt.DueDate,
		Source: opt.Source, Transcript: opt.Transcript,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, repo.ErrFailedToGet
	}
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	m.lastList = opt
	if m.fail {
		return nil, 0, repo.ErrFailedToList
	}
	out := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Title, t.Description, t.Status, t.Priority, t.DueDate = opt.Title, opt.Description, opt.Status, opt.Priority, opt.DueDate
	t.CalendarEventID, t.CalendarLink = opt.CalendarEventID, opt.CalendarLink
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

type mockCalendar struct {
	created     []gcalendar.CreateEventRequest
	rescheduled []gcalendar.RescheduleEventRequest
	deleted     []string
	createErr   error
	moveErr     error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "evt-new", HtmlLink: "https://calendar.example/evt-new"}, nil
}

func (m *mockCalendar) RescheduleEvent(ctx context.Context, req gcalendar.RescheduleEventRequest) (*gcalendar.Event, error) {
	if m.moveErr != nil {
		return nil, m.moveErr
	}
	m.rescheduled = append(m.rescheduled, req)
	return &gcalendar.Event{ID: req.EventID, HtmlLink: "https://calendar.example/" + req.EventID}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

// Wednesday 2024-05-01 15:30 UTC.
var now = time.Date(2024, time.May, 1, 15, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, r *mockRepo, cal Calendar) *implUseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(&mockLogger{}, r, dm, cal, CalendarConfig{CalendarID: "primary", EventDuration: time.Hour})
	uc.now = func() time.Time { return now }
	return uc
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	due := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		input        task.CreateInput
		calendar     *mockCalendar
		wantErr      error
		wantStatus   model.TaskStatus
		wantPriority model.TaskPriority
		wantEvent    string
	}{
		{
			name:         "defaults",
			input:        task.CreateInput{Title: "  water the plants  "},
			wantStatus:   model.TaskStatusToDo,
			wantPriority: model.TaskPriorityMedium,
		},
		{
			name:         "explicit values",
			input:        task.CreateInput{Title: "deploy", Status: model.TaskStatusInProgress, Priority: model.TaskPriorityLow},
			wantStatus:   model.TaskStatusInProgress,
			wantPriority: model.TaskPriorityLow,
		},
		{
			name:    "empty title",
			input:   task.CreateInput{Title: "   "},
			wantErr: task.ErrInvalidInput,
		},
		{
			name:    "unknown status",
			input:   task.CreateInput{Title: "x", Status: "Blocked"},
			wantErr: task.ErrInvalidInput,
		},
		{
			name:    "unknown priority",
			input:   task.CreateInput{Title: "x", Priority: "Urgent"},
			wantErr: task.ErrInvalidInput,
		},
		{
			name:         "due date synced to calendar",
			input:        task.CreateInput{Title: "call the bank", DueDate: &due},
			calendar:     &mockCalendar{},
			wantStatus:   model.TaskStatusToDo,
			wantPriority: model.TaskPriorityMedium,
			wantEvent:    "evt-new",
		},
		{
			name:         "calendar failure is not fatal",
			input:        task.CreateInput{Title: "call the bank", DueDate: &due},
			calendar:     &mockCalendar{createErr: errors.New("quota")},
			wantStatus:   model.TaskStatusToDo,
			wantPriority: model.TaskPriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cal Calendar
			if tt.calendar != nil {
				cal = tt.calendar
			}
			uc := newTestUseCase(t, newMockRepo(), cal)

			out, err := uc.Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if out.Task.Status != tt.wantStatus || out.Task.Priority != tt.wantPriority {
				t.Errorf("status/priority = %q/%q", out.Task.Status, out.Task.Priority)
			}
			if out.Task.Title != "water the plants" && tt.name == "defaults" {
				t.Errorf("Title = %q, want trimmed", out.Task.Title)
			}
			if out.Task.Source != model.SourceManual {
				t.Errorf("Source = %q, want manual", out.Task.Source)
			}
			if out.Task.CalendarEventID != tt.wantEvent {
				t.Errorf("CalendarEventID = %q, want %q", out.Task.CalendarEventID, tt.wantEvent)
			}
			if tt.wantEvent != "" {
				req := tt.calendar.created[0]
				if !req.StartTime.Equal(due) || req.EndTime.Sub(req.StartTime) != time.Hour {
					t.Errorf("event window = %v..%v", req.StartTime, req.EndTime)
				}
			}
		})
	}
}

func TestCreate_RepoFailure(t *testing.T) {
	r := newMockRepo()
	r.fail = true
	uc := newTestUseCase(t, r, nil)

	if _, err := uc.Create(context.Background(), task.CreateInput{Title: "x"}); !errors.Is(err, repo.ErrFailedToInsert) {
		t.Errorf("err = %v, want ErrFailedToInsert", err)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name      string
		input     task.ListInput
		wantErr   error
		wantLimit int
		wantFrom  *time.Time
	}{
		{name: "default limit", input: task.ListInput{}, wantLimit: 20},
		{name: "clamped limit", input: task.ListInput{Limit: 500}, wantLimit: 100},
		{name: "negative offset", input: task.ListInput{Offset: -1}, wantErr: task.ErrInvalidPagination},
		{name: "unknown status", input: task.ListInput{Status: "Blocked"}, wantErr: task.ErrInvalidInput},
		{name: "unknown priority", input: task.ListInput{Priority: "Meh"}, wantErr: task.ErrInvalidInput},
		{
			name:      "relative due",
			input:     task.ListInput{Due: "tomorrow"},
			wantLimit: 20,
			wantFrom:  ptrTime(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:      "absolute due",
			input:     task.ListInput{Due: "2024-06-10", Limit: 5},
			wantLimit: 5,
			wantFrom:  ptrTime(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:      "next weekday due",
			input:     task.ListInput{Due: "next friday"},
			wantLimit: 20,
			wantFrom:  ptrTime(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)),
		},
		{name: "bad due", input: task.ListInput{Due: "someday"}, wantErr: task.ErrInvalidDueFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockRepo()
			uc := newTestUseCase(t, r, nil)

			out, err := uc.List(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if out.Limit != tt.wantLimit || r.lastList.Limit != tt.wantLimit {
				t.Errorf("limit = %d (repo %d), want %d", out.Limit, r.lastList.Limit, tt.wantLimit)
			}
			if tt.wantFrom == nil {
				if r.lastList.DueFrom != nil {
					t.Errorf("DueFrom = %v, want nil", r.lastList.DueFrom)
				}
				return
			}
			if r.lastList.DueFrom == nil || !r.lastList.DueFrom.Equal(*tt.wantFrom) {
				t.Errorf("DueFrom = %v, want %v", r.lastList.DueFrom, *tt.wantFrom)
			}
			if r.lastList.DueTo == nil || r.lastList.DueTo.Sub(*r.lastList.DueFrom) != 24*time.Hour-time.Second {
				t.Errorf("DueTo = %v", r.lastList.DueTo)
			}
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestDetail(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)
	created, _ := uc.Create(context.Background(), task.CreateInput{Title: "buy milk"})

	out, err := uc.Detail(context.Background(), created.Task.ID)
	if err != nil || out.Task.Title != "buy milk" {
		t.Errorf("Detail = %+v, %v", out, err)
	}

	for _, id := range []string{"missing", "", "  "} {
		if _, err := uc.Detail(context.Background(), id); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("Detail(%q) err = %v, want ErrTaskNotFound", id, err)
		}
	}
}

func TestUpdate(t *testing.T) {
	due := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	later := due.Add(48 * time.Hour)
	done := model.TaskStatusDone

	t.Run("no fields", func(t *testing.T) {
		uc := newTestUseCase(t, newMockRepo(), nil)
		if _, err := uc.Update(context.Background(), task.UpdateInput{ID: "a"}); !errors.Is(err, task.ErrNoFieldsToUpdate) {
			t.Errorf("err = %v, want ErrNoFieldsToUpdate", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(t, newMockRepo(), nil)
		_, err := uc.Update(context.Background(), task.UpdateInput{ID: "zzz", Status: &done})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("partial keeps other fields", func(t *testing.T) {
		uc := newTestUseCase(t, newMockRepo(), nil)
		created, _ := uc.Create(context.Background(), task.CreateInput{
			Title: "call the bank", Description: strPtr("mortgage"), Priority: model.TaskPriorityHigh, DueDate: &due,
		})

		out, err := uc.Update(context.Background(), task.UpdateInput{ID: created.Task.ID, Status: &done})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		got := out.Task
		if got.Status != done || got.Title != "call the bank" || got.Priority != model.TaskPriorityHigh {
			t.Errorf("got %+v", got)
		}
		if got.Description == nil || *got.Description != "mortgage" || got.DueDate == nil {
			t.Errorf("description/due lost: %+v", got)
		}
	})

	t.Run("clear description and due date", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, newMockRepo(), cal)
		created, _ := uc.Create(context.Background(), task.CreateInput{Title: "x", Description: strPtr("d"), DueDate: &due})

		out, err := uc.Update(context.Background(), task.UpdateInput{
			ID: created.Task.ID, ClearDescription: true, ClearDueDate: true,
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.Task.Description != nil || out.Task.DueDate != nil {
			t.Errorf("not cleared: %+v", out.Task)
		}
		if len(cal.deleted) != 1 || out.Task.CalendarEventID != "" {
			t.Errorf("event not removed: deleted=%v task=%+v", cal.deleted, out.Task)
		}
	})

	t.Run("moving the due date reschedules", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, newMockRepo(), cal)
		created, _ := uc.Create(context.Background(), task.CreateInput{Title: "x", DueDate: &due})

		if _, err := uc.Update(context.Background(), task.UpdateInput{ID: created.Task.ID, DueDate: &later}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(cal.rescheduled) != 1 || !cal.rescheduled[0].StartTime.Equal(later) {
			t.Errorf("rescheduled = %+v", cal.rescheduled)
		}
	})

	t.Run("event deleted remotely is recreated", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, newMockRepo(), cal)
		created, _ := uc.Create(context.Background(), task.CreateInput{Title: "x", DueDate: &due})
		cal.moveErr = gcalendar.ErrEventNotFound

		out, err := uc.Update(context.Background(), task.UpdateInput{ID: created.Task.ID, DueDate: &later})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if len(cal.created) != 2 || out.Task.CalendarEventID != "evt-new" {
			t.Errorf("created = %d, task = %+v", len(cal.created), out.Task)
		}
	})

	t.Run("invalid title", func(t *testing.T) {
		uc := newTestUseCase(t, newMockRepo(), nil)
		created, _ := uc.Create(context.Background(), task.CreateInput{Title: "x"})
		if _, err := uc.Update(context.Background(), task.UpdateInput{ID: created.Task.ID, Title: strPtr(" ")}); !errors.Is(err, task.ErrInvalidInput) {
			t.Errorf("err = %v, want ErrInvalidInput", err)
		}
	})
}

func TestDelete(t *testing.T) {
	due := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	cal := &mockCalendar{}
	r := newMockRepo()
	uc := newTestUseCase(t, r, cal)

	created, _ := uc.Create(context.Background(), task.CreateInput{Title: "x", DueDate: &due})
	if err := uc.Delete(context.Background(), created.Task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(r.tasks) != 0 {
		t.Errorf("task not removed")
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != "evt-new" {
		t.Errorf("deleted events = %v", cal.deleted)
	}

	if err := uc.Delete(context.Background(), created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second Delete err = %v, want ErrTaskNotFound", err)
	}
}
