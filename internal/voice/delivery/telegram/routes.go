package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook endpoint under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/telegram", h.HandleWebhook)
}
