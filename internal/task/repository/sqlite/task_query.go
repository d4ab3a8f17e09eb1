package sqlite

import (
	"fmt"
	"strings"

	repo "voice-task-management/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.CalendarEventID != "" {
		conditions = append(conditions, "calendar_event_id = ?")
		args = append(args, opt.CalendarEventID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildWhere builds the filter conditions shared by the count and page queries.
func (r *implRepository) buildWhere(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(opt.Priority))
	}
	if s := strings.TrimSpace(opt.Search); s != "" {
		pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
		conditions = append(conditions,
			`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if opt.DueFrom != nil {
		conditions = append(conditions, "due_date >= ?")
		args = append(args, formatTime(*opt.DueFrom))
	}
	if opt.DueTo != nil {
		conditions = append(conditions, "due_date <= ?")
		args = append(args, formatTime(*opt.DueTo))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildWhere(opt)
	parts := []string{"WHERE " + where}

	// Sorting; rowid breaks ties between rows created in the same millisecond.
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC, rowid DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination. SQLite needs a LIMIT before OFFSET; -1 means no limit.
	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}
	parts = append(parts, "LIMIT ?")
	args = append(args, limit)
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
