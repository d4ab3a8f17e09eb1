package voiceparser

import (
	"context"
	"strings"

	"voice-task-management/pkg/datemath"
	pkgLog "voice-task-management/pkg/log"
)

// Interpreter turns a free-form transcript into an InterpretedTask.
// It holds no mutable state and is safe for concurrent use.
type Interpreter struct {
	l     pkgLog.Logger
	clock Clock
	dates dueDateResolver
}

// New creates an Interpreter. A nil primary parser disables it; a nil clock
// uses the system clock; a nil fallback resolves relative dates in UTC.
func New(l pkgLog.Logger, clock Clock, primary DatePhraseParser, fallback *datemath.Parser) *Interpreter {
	if l == nil {
		l = pkgLog.NewNop()
	}
	if clock == nil {
		clock = SystemClock()
	}
	if primary == nil {
		primary = NopParser{}
	}
	if fallback == nil {
		fallback, _ = datemath.NewParser("UTC")
	}

	return &Interpreter{
		l:     l,
		clock: clock,
		dates: dueDateResolver{l: l, primary: primary, fallback: fallback},
	}
}

// Interpret runs the title, due date, priority and status extractors over the
// transcript and merges their results. It never fails; every field has a default.
// The transcript is assumed to be non-empty; validating that is up to the caller.
func (i *Interpreter) Interpret(ctx context.Context, transcript string) InterpretedTask {
	u := utterance{original: transcript, lower: strings.ToLower(transcript)}

	title := strings.TrimSpace(extractTitle(u))
	if title == "" {
		title = UntitledTask
	}

	return InterpretedTask{
		Title:       title,
		Description: nil,
		Status:      classifyStatus(u),
		Priority:    classifyPriority(u),
		DueDate:     i.dates.resolve(ctx, u, i.clock.Now()),
		Transcript:  transcript,
	}
}
