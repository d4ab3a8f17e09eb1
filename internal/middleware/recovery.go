package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/pkg/response"
)

// Recovery turns a handler panic into a 500 envelope and logs it.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = errors.New(fmt.Sprint(recovered))
		}
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, err)
		c.Abort()
	})
}

// AccessLog writes one line per request through the structured logger.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s, %s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond), c.ClientIP())
	}
}
