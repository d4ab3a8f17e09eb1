package http

import (
	taskHTTP "voice-task-management/internal/task/delivery/http"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/voiceparser"
)

type transcriptReq struct {
	Transcript string `json:"transcript" example:"remind me to call the bank tomorrow morning"`
}

func (r transcriptReq) toParseInput() voice.ParseInput {
	return voice.ParseInput{Transcript: r.Transcript}
}

func (r transcriptReq) toCaptureInput() voice.CaptureInput {
	return voice.CaptureInput{Transcript: r.Transcript}
}

// parseResp is the bare draft: title, description, status, priority, dueDate, transcript.
type parseResp = voiceparser.InterpretedTask

type captureResp struct {
	Draft voiceparser.InterpretedTask `json:"draft"`
	Task  taskHTTP.TaskResp           `json:"task"`
}

func (h *handler) newCaptureResp(out voice.CaptureOutput) captureResp {
	return captureResp{
		Draft: out.Draft,
		Task:  taskHTTP.NewTaskResp(out.Task),
	}
}
