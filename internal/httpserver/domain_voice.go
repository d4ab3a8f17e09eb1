package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/middleware"
	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	voiceHTTP "voice-task-management/internal/voice/delivery/http"
	tgDelivery "voice-task-management/internal/voice/delivery/telegram"
	voiceUC "voice-task-management/internal/voice/usecase"
)

// setupVoiceDomain registers /api/parse and /api/voice/tasks behind the rate limiter.
func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, taskUC task.UseCase) (voice.UseCase, error) {
	uc := voiceUC.New(srv.l, srv.interpreter, taskUC)
	h := voiceHTTP.New(srv.l, uc)

	voiceHTTP.RegisterRoutes(api.Group("", mw.RateLimit(srv.parsePerMin)), h)

	srv.l.Infof(ctx, "Voice domain registered, rate limit %d/min per client", srv.parsePerMin)
	return uc, nil
}

// setupTelegramWebhook registers POST /webhook/telegram.
func (srv HTTPServer) setupTelegramWebhook(ctx context.Context, uc voice.UseCase) {
	h := tgDelivery.New(srv.l, uc, srv.telegramBot, tgDelivery.Config{
		SecretToken: srv.telegramSecret,
		Location:    srv.dateMath.Location(),
	})
	tgDelivery.RegisterRoutes(srv.gin.Group("/webhook"), h)

	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
