package voice

import "errors"

var (
	ErrEmptyTranscript = errors.New("transcript is required")
)
