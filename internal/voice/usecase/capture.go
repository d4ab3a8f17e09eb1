package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/voiceparser"
)

// Capture interprets the transcript and stores the draft as a new task.
func (uc *implUseCase) Capture(ctx context.Context, input voice.CaptureInput) (voice.CaptureOutput, error) {
	draft, err := uc.interpret(ctx, input.Transcript)
	if err != nil {
		return voice.CaptureOutput{}, err
	}

	source := input.Source
	if source == "" {
		source = model.SourceAPI
	}

	created, err := uc.taskUC.Create(ctx, toCreateInput(draft, source))
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.Capture: create task failed: %v", err)
		return voice.CaptureOutput{}, fmt.Errorf("capture: %w", err)
	}

	uc.l.Infof(ctx, "voice.usecase.Capture: stored task %s from %s", created.Task.ID, source)
	return voice.CaptureOutput{Draft: draft, Task: created.Task}, nil
}

func toCreateInput(draft voiceparser.InterpretedTask, source model.CaptureSource) task.CreateInput {
	return task.CreateInput{
		Title:       clipTitle(draft.Title, task.MaxTitleLength),
		Description: draft.Description,
		Status:      model.TaskStatus(draft.Status),
		Priority:    model.TaskPriority(draft.Priority),
		DueDate:     draft.DueDate,
		Source:      source,
		Transcript:  draft.Transcript,
	}
}

// clipTitle cuts title to at most max characters, preferring the last word
// boundary. The full wording stays in the stored transcript.
func clipTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	cut := runes[:max]
	if !unicode.IsSpace(runes[max]) {
		if i := lastSpace(cut); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace)
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}
