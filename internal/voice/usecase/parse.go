package usecase

import (
	"context"
	"strings"

	"voice-task-management/internal/voice"
	"voice-task-management/pkg/voiceparser"
)

// Parse interprets the transcript and returns the draft. Nothing is stored.
func (uc *implUseCase) Parse(ctx context.Context, input voice.ParseInput) (voice.ParseOutput, error) {
	draft, err := uc.interpret(ctx, input.Transcript)
	if err != nil {
		return voice.ParseOutput{}, err
	}
	return voice.ParseOutput{Draft: draft}, nil
}

func (uc *implUseCase) interpret(ctx context.Context, transcript string) (voiceparser.InterpretedTask, error) {
	if strings.TrimSpace(transcript) == "" {
		return voiceparser.InterpretedTask{}, voice.ErrEmptyTranscript
	}

	draft := uc.interpreter.Interpret(ctx, transcript)
	uc.l.Debugf(ctx, "voice.usecase: interpreted %q as title=%q priority=%s status=%s due=%v",
		transcript, draft.Title, draft.Priority, draft.Status, draft.DueDate != nil)
	return draft, nil
}
