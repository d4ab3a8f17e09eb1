package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-management/pkg/response"
)

// Parse godoc
// @Summary     Interpret a transcript
// @Description Turns a spoken sentence into a task draft (title, status, priority, due date). Nothing is stored.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body     transcriptReq true "Transcript"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toParseInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, parseResp(output.Draft))
}

// Capture godoc
// @Summary     Capture a task from a transcript
// @Description Interprets the transcript and stores the draft as a new task.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body     transcriptReq true "Transcript"
// @Success     201  {object} captureResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/voice/tasks [POST]
func (h *handler) Capture(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Capture(ctx, req.toCaptureInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Created(c, h.newCaptureResp(output))
}
