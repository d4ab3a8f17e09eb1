package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task"
	taskHTTP "voice-task-management/internal/task/delivery/http"
	taskRepo "voice-task-management/internal/task/repository/sqlite"
	taskUC "voice-task-management/internal/task/usecase"
)

// setupTaskDomain wires repository, use case and handler for /api/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) (task.UseCase, error) {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, srv.dateMath, srv.calendar, srv.calendarCfg)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: /api/tasks
	taskHTTP.RegisterRoutes(api, h)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Task domain registered with calendar sync to %q", srv.calendarCfg.CalendarID)
	} else {
		srv.l.Infof(ctx, "Task domain registered")
	}
	return uc, nil
}
