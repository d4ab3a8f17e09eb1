package voice

import (
	"voice-task-management/internal/model"
	"voice-task-management/pkg/voiceparser"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Transcript string
}

// CaptureInput is a transcript arriving from a capture channel.
// An empty Source is recorded as api.
type CaptureInput struct {
	Transcript string
	Source     model.CaptureSource
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Draft voiceparser.InterpretedTask
}

type CaptureOutput struct {
	Draft voiceparser.InterpretedTask
	Task  model.Task
}
