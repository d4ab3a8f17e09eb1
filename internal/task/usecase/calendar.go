package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-task-management/internal/model"
	repo "voice-task-management/internal/task/repository"
	"voice-task-management/pkg/gcalendar"
)

// syncCalendar makes the calendar match the task's due date: it creates,
// moves or removes the event as needed and stores the resulting link.
// Failures are logged and never fail the caller.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) model.Task {
	if uc.calendar == nil {
		return t
	}

	eventID, link := t.CalendarEventID, t.CalendarLink

	switch {
	case !t.HasDueDate() && eventID != "":
		uc.removeCalendarEvent(ctx, t)
		eventID, link = "", ""

	case t.HasDueDate() && eventID != "":
		ev, err := uc.calendar.RescheduleEvent(ctx, gcalendar.RescheduleEventRequest{
			CalendarID: uc.calendarCfg.CalendarID,
			EventID:    eventID,
			Summary:    t.Title,
			StartTime:  t.DueDate.In(uc.dateMath.Location()),
			EndTime:    t.DueDate.In(uc.dateMath.Location()).Add(uc.calendarCfg.EventDuration),
			Timezone:   uc.dateMath.Location().String(),
		})
		switch {
		case errors.Is(err, gcalendar.ErrEventNotFound):
			// Deleted on the calendar side; create a fresh one below.
			eventID, link = uc.createCalendarEvent(ctx, t)
		case err != nil:
			uc.l.Warnf(ctx, "uc.syncCalendar: reschedule failed for task %s (non-fatal): %v", t.ID, err)
			return t
		default:
			link = ev.HtmlLink
		}

	case t.HasDueDate():
		eventID, link = uc.createCalendarEvent(ctx, t)

	default:
		return t
	}

	if eventID == t.CalendarEventID && link == t.CalendarLink {
		return t
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		Priority:        t.Priority,
		DueDate:         t.DueDate,
		CalendarEventID: eventID,
		CalendarLink:    link,
	})
	if err != nil || updated.ID == "" {
		uc.l.Warnf(ctx, "uc.syncCalendar: failed to store calendar link for task %s: %v", t.ID, err)
		return t
	}
	return updated
}

func (uc *implUseCase) createCalendarEvent(ctx context.Context, t model.Task) (string, string) {
	start := t.DueDate.In(uc.dateMath.Location())
	ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarCfg.CalendarID,
		Summary:     t.Title,
		Description: eventDescription(t),
		StartTime:   start,
		EndTime:     start.Add(uc.calendarCfg.EventDuration),
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return "", ""
	}
	return ev.ID, ev.HtmlLink
}

func (uc *implUseCase) removeCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarCfg.CalendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar: failed to delete event %s (non-fatal): %v", t.CalendarEventID, err)
	}
}

func eventDescription(t model.Task) string {
	desc := fmt.Sprintf("Priority: %s\nStatus: %s", t.Priority, t.Status)
	if t.Description != nil && *t.Description != "" {
		desc = *t.Description + "\n\n" + desc
	}
	if t.Transcript != "" {
		desc += fmt.Sprintf("\n\nCaptured from: %q", t.Transcript)
	}
	return desc
}

func dueChanged(before, after *time.Time) bool {
	switch {
	case before == nil && after == nil:
		return false
	case before == nil || after == nil:
		return true
	default:
		return !before.Equal(*after)
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}
