package voice

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse interprets a transcript without persisting anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	// Capture interprets a transcript and stores the result as a task.
	Capture(ctx context.Context, input CaptureInput) (CaptureOutput, error)
}
