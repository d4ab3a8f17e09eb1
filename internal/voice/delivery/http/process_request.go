package http

import "github.com/gin-gonic/gin"

func (h *handler) processTranscriptReq(c *gin.Context) (transcriptReq, error) {
	var req transcriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "voice.delivery.http: bind failed: %v", err)
		return transcriptReq{}, errWrongBody
	}
	return req, nil
}
