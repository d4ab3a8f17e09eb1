package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"voice-task-management/internal/model"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t                    model.Task
		description, dueDate sql.NullString
		status, priority     string
		source               string
		createdAt, updatedAt string
	)

	err := s.Scan(
		&t.ID, &t.Title, &description, &status, &priority, &dueDate, &source, &t.Transcript,
		&t.CalendarEventID, &t.CalendarLink, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Status = model.TaskStatus(status)
	t.Priority = model.TaskPriority(priority)
	t.Source = model.CaptureSource(source)
	if description.Valid {
		d := description.String
		t.Description = &d
	}
	if dueDate.Valid {
		due, err := parseTime(dueDate.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("due_date: %w", err)
		}
		t.DueDate = &due
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Task{}, fmt.Errorf("created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("updated_at: %w", err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(TimestampFormat, s)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil || t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}
