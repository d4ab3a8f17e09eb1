package model

import "time"

// CaptureSource is the channel a transcript arrived through.
type CaptureSource string

const (
	SourceAPI      CaptureSource = "api"
	SourceTelegram CaptureSource = "telegram"
	SourceManual   CaptureSource = "manual"
)

// VoiceEvent is one inbound transcript waiting to be turned into a task.
type VoiceEvent struct {
	Source     CaptureSource // Platform source
	Transcript string        // Text as spoken or typed
	ChatID     int64         // Telegram chat to reply to (telegram only)
	Sender     string        // Display name of the sender, if known
	ReceivedAt time.Time     // When the event was received
}
