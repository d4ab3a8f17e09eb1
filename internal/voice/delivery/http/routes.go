package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the transcript endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/parse", h.Parse)
	rg.POST("/voice/tasks", h.Capture)
}
