package usecase

import (
	"context"

	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	pkgLog "voice-task-management/pkg/log"
	"voice-task-management/pkg/voiceparser"
)

// Interpreter turns a transcript into a draft task.
type Interpreter interface {
	Interpret(ctx context.Context, transcript string) voiceparser.InterpretedTask
}

type implUseCase struct {
	l           pkgLog.Logger
	interpreter Interpreter
	taskUC      task.UseCase
}

// New creates the voice use case. Captured drafts are stored through taskUC.
func New(l pkgLog.Logger, interpreter Interpreter, taskUC task.UseCase) voice.UseCase {
	return &implUseCase{
		l:           l,
		interpreter: interpreter,
		taskUC:      taskUC,
	}
}
