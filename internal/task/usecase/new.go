package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/gcalendar"
	pkgLog "voice-task-management/pkg/log"
)

// Calendar is the subset of the Google Calendar client the task use case needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	RescheduleEvent(ctx context.Context, req gcalendar.RescheduleEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarConfig controls how due dates are mirrored to the calendar.
type CalendarConfig struct {
	CalendarID    string
	EventDuration time.Duration
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	validate *validator.Validate

	calendar    Calendar // nil disables calendar sync
	calendarCfg CalendarConfig

	now func() time.Time
}

// New creates a new task UseCase implementation. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	calendar Calendar,
	calendarCfg CalendarConfig,
) *implUseCase {
	if calendarCfg.EventDuration <= 0 {
		calendarCfg.EventDuration = 30 * time.Minute
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		dateMath:    dateMath,
		validate:    newValidator(),
		calendar:    calendar,
		calendarCfg: calendarCfg,
		now:         time.Now,
	}
}
